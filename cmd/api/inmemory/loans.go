package inmemory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/loan"
	"github.com/library-service/cmd/api/query"
)

type AdaptedLoan struct {
	ID            string
	Customer      string
	CustomerEmail string
	BookID        string
	LoanDate      time.Time
	Returned      *bool
}

func adaptLoanIdToString(loanEntry loan.Loan) AdaptedLoan {
	return AdaptedLoan{
		ID:            loanEntry.ID.String(),
		Customer:      loanEntry.Customer,
		CustomerEmail: loanEntry.CustomerEmail,
		BookID:        loanEntry.Book.ID.String(),
		LoanDate:      loanEntry.LoanDate,
		Returned:      copyFlag(loanEntry.Returned),
	}
}

/* Stored records are never shared with callers, so flags are copied in and out. */
func copyFlag(flag *bool) *bool {
	if flag == nil {
		return nil
	}
	v := *flag
	return &v
}

/* Rebuilds a domain loan, resolving its book inside the same transaction. A deleted book leaves only its id. */
func hydrateLoan(txn *memdb.Txn, adptLoan AdaptedLoan) (loan.Loan, error) {
	loanBook := book.Book{ID: uuid.MustParse(adptLoan.BookID)}
	raw, err := txn.First(tableBook, indexID, adptLoan.BookID)
	if err != nil {
		return loan.Loan{}, err
	}
	if raw != nil {
		loanBook = adaptBookIdToUUID(raw.(AdaptedBook))
	}

	return loan.Loan{
		ID:            uuid.MustParse(adptLoan.ID),
		Customer:      adptLoan.Customer,
		CustomerEmail: adptLoan.CustomerEmail,
		Book:          loanBook,
		LoanDate:      adptLoan.LoanDate,
		Returned:      copyFlag(adptLoan.Returned),
	}, nil
}

/* Reports whether the book has an outstanding loan other than the one identified by exceptID. */
func hasOutstandingLoan(txn *memdb.Txn, bookID string, exceptID string) (bool, error) {
	it, err := txn.Get(tableLoan, indexBookOutstanding, bookID, true)
	if err != nil {
		return false, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if obj.(AdaptedLoan).ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

/* Stores a new loan unless its book is already loaned. The check and the insert share one write transaction. */
func (store *InMemoryStore) CreateLoan(ctx context.Context, loanEntry loan.Loan) (loan.Loan, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	if loanEntry.Outstanding() {
		loaned, err := hasOutstandingLoan(txn, loanEntry.Book.ID.String(), "")
		if err != nil {
			return loan.Loan{}, fmt.Errorf("storing loan on db: %w", err)
		}
		if loaned {
			return loan.Loan{}, fmt.Errorf("storing loan on db: %w", loan.ErrResponseBookAlreadyLoaned)
		}
	}

	if loanEntry.ID == uuid.Nil {
		loanEntry.ID = uuid.New()
	}
	adptLoan := adaptLoanIdToString(loanEntry)
	err := txn.Insert(tableLoan, adptLoan)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("storing loan on db: %w", err)
	}

	stored, err := hydrateLoan(txn, adptLoan)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("storing loan on db: %w", err)
	}

	txn.Commit()
	return stored, nil
}

func (store *InMemoryStore) GetLoanByID(ctx context.Context, id uuid.UUID) (loan.Loan, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableLoan, indexID, id.String())
	if err != nil {
		return loan.Loan{}, fmt.Errorf("searching loan by ID: %w", err)
	}
	if raw == nil {
		return loan.Loan{}, fmt.Errorf("searching loan by ID: %w", loan.ErrResponseLoanNotFound)
	}

	l, err := hydrateLoan(txn, raw.(AdaptedLoan))
	if err != nil {
		return loan.Loan{}, fmt.Errorf("searching loan by ID: %w", err)
	}
	return l, nil
}

/* Replaces a stored loan. An empty book or loan date keeps the stored one. */
func (store *InMemoryStore) UpdateLoan(ctx context.Context, loanEntry loan.Loan) (loan.Loan, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableLoan, indexID, loanEntry.ID.String())
	if err != nil {
		return loan.Loan{}, fmt.Errorf("updating loan on db: %w", err)
	}
	if raw == nil {
		return loan.Loan{}, fmt.Errorf("updating loan on db: %w", loan.ErrResponseLoanNotFound)
	}
	current := raw.(AdaptedLoan)

	updated := adaptLoanIdToString(loanEntry)
	if loanEntry.Book.ID == uuid.Nil {
		updated.BookID = current.BookID
	}
	if loanEntry.LoanDate.IsZero() {
		updated.LoanDate = current.LoanDate
	}

	if loanEntry.Outstanding() {
		loaned, err := hasOutstandingLoan(txn, updated.BookID, updated.ID)
		if err != nil {
			return loan.Loan{}, fmt.Errorf("updating loan on db: %w", err)
		}
		if loaned {
			return loan.Loan{}, fmt.Errorf("updating loan on db: %w", loan.ErrResponseBookAlreadyLoaned)
		}
	}

	err = txn.Insert(tableLoan, updated)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("updating loan on db: %w", err)
	}

	stored, err := hydrateLoan(txn, updated)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("updating loan on db: %w", err)
	}

	txn.Commit()
	return stored, nil
}

func (store *InMemoryStore) FindLoans(ctx context.Context, filter query.Example, page query.PageRequest) (query.Page[loan.Loan], error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	loans, err := collectLoans(txn, func(l loan.Loan) bool {
		return filter.Matches(l.Column)
	})
	if err != nil {
		return query.Page[loan.Loan]{}, fmt.Errorf("finding loans on db: %w", err)
	}
	return query.Paginate(loans, page), nil
}

func (store *InMemoryStore) ExistsOutstandingLoanForBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	loaned, err := hasOutstandingLoan(txn, bookID.String(), "")
	if err != nil {
		return false, fmt.Errorf("checking outstanding loans: %w", err)
	}
	return loaned, nil
}

/* Lists the outstanding loans dated on or before threshold. */
func (store *InMemoryStore) ListOverdueLoans(ctx context.Context, threshold time.Time) ([]loan.Loan, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	limit := loan.DateOf(threshold)
	loans, err := collectLoans(txn, func(l loan.Loan) bool {
		return l.Outstanding() && !l.LoanDate.After(limit)
	})
	if err != nil {
		return nil, fmt.Errorf("listing overdue loans: %w", err)
	}
	return loans, nil
}

/* Returns every loan accepted by keep, ordered by loan date. */
func collectLoans(txn *memdb.Txn, keep func(loan.Loan) bool) ([]loan.Loan, error) {
	it, err := txn.Get(tableLoan, indexID)
	if err != nil {
		return nil, err
	}

	loans := []loan.Loan{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		l, err := hydrateLoan(txn, obj.(AdaptedLoan))
		if err != nil {
			return nil, err
		}
		if !keep(l) {
			continue
		}
		loans = append(loans, l)
	}

	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].LoanDate.Before(loans[j].LoanDate)
	})
	return loans, nil
}
