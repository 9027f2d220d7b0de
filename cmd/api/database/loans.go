package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/loan"
	"github.com/library-service/cmd/api/query"
)

// Partial unique index keeping a single outstanding loan per book.
const outstandingLoanIndex = "loans_outstanding_book_idx"

const selectLoan = `SELECT l.id, l.customer, l.customer_email, l.book_id, l.loan_date, l.returned,
	b.title, b.author, b.isbn`

type loanRow struct {
	ID            uuid.UUID      `db:"id"`
	Customer      string         `db:"customer"`
	CustomerEmail string         `db:"customer_email"`
	BookID        uuid.UUID      `db:"book_id"`
	LoanDate      time.Time      `db:"loan_date"`
	Returned      sql.NullBool   `db:"returned"`
	Title         sql.NullString `db:"title"`
	Author        sql.NullString `db:"author"`
	Isbn          sql.NullString `db:"isbn"`
}

func (r loanRow) toLoan() loan.Loan {
	l := loan.Loan{
		ID:            r.ID,
		Customer:      r.Customer,
		CustomerEmail: r.CustomerEmail,
		Book: book.Book{
			ID:     r.BookID,
			Title:  r.Title.String,
			Author: r.Author.String,
			Isbn:   r.Isbn.String,
		},
		LoanDate: loan.DateOf(r.LoanDate),
	}
	if r.Returned.Valid {
		returned := r.Returned.Bool
		l.Returned = &returned
	}
	return l
}

// An unset returned flag reads as false, so returned=false matches every outstanding loan.
var loanColumns = map[string]column{
	loan.ColumnCustomer:      goqu.T("l").Col("customer"),
	loan.ColumnCustomerEmail: goqu.T("l").Col("customer_email"),
	loan.ColumnBookID:        goqu.T("l").Col("book_id"),
	loan.ColumnBookIsbn:      goqu.T("b").Col("isbn"),
	loan.ColumnReturned:      goqu.COALESCE(goqu.T("l").Col("returned"), false),
}

func nullableBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullableDate(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.DateOnly), Valid: true}
}

func nullableUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func isOutstandingLoanConflict(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		pqErr.Code.Name() == "unique_violation" &&
		pqErr.Constraint == outstandingLoanIndex
}

/* Stores a new loan. A second outstanding loan for the same book violates the partial unique index. */
func (store *Store) CreateLoan(ctx context.Context, loanEntry loan.Loan) (loan.Loan, error) {
	if loanEntry.ID == uuid.Nil {
		loanEntry.ID = uuid.New()
	}

	sqlStatement := `
	WITH l AS (
		INSERT INTO loans (id, customer, customer_email, book_id, loan_date, returned)
		VALUES ($1, $2, $3, $4, $5::date, $6)
		RETURNING *
	)
	` + selectLoan + `
	FROM l LEFT JOIN books b ON b.id = l.book_id`
	var created loanRow
	err := sqlx.GetContext(ctx, store.exc, &created, sqlStatement,
		loanEntry.ID, loanEntry.Customer, loanEntry.CustomerEmail, loanEntry.Book.ID,
		loanEntry.LoanDate.Format(time.DateOnly), nullableBool(loanEntry.Returned))
	if err != nil {
		switch {
		case isOutstandingLoanConflict(err):
			return loan.Loan{}, fmt.Errorf("storing loan on db: %w", loan.ErrResponseBookAlreadyLoaned)
		default:
			return loan.Loan{}, fmt.Errorf("storing loan on db: %w", err)
		}
	}

	return created.toLoan(), nil
}

func (store *Store) GetLoanByID(ctx context.Context, id uuid.UUID) (loan.Loan, error) {
	sqlStatement := selectLoan + `
	FROM loans l LEFT JOIN books b ON b.id = l.book_id
	WHERE l.id = $1`
	var found loanRow
	err := sqlx.GetContext(ctx, store.exc, &found, sqlStatement, id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return loan.Loan{}, fmt.Errorf("searching loan by ID: %w", loan.ErrResponseLoanNotFound)
		default:
			return loan.Loan{}, fmt.Errorf("searching loan by ID: %w", err)
		}
	}

	return found.toLoan(), nil
}

/* Replaces a stored loan. An empty book or loan date keeps the stored one. */
func (store *Store) UpdateLoan(ctx context.Context, loanEntry loan.Loan) (loan.Loan, error) {
	sqlStatement := `
	WITH l AS (
		UPDATE loans
		SET customer = $2,
			customer_email = $3,
			book_id = COALESCE($4::uuid, book_id),
			loan_date = COALESCE($5::date, loan_date),
			returned = $6
		WHERE id = $1
		RETURNING *
	)
	` + selectLoan + `
	FROM l LEFT JOIN books b ON b.id = l.book_id`
	var updated loanRow
	err := sqlx.GetContext(ctx, store.exc, &updated, sqlStatement,
		loanEntry.ID, loanEntry.Customer, loanEntry.CustomerEmail, nullableUUID(loanEntry.Book.ID),
		nullableDate(loanEntry.LoanDate), nullableBool(loanEntry.Returned))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return loan.Loan{}, fmt.Errorf("updating loan on db: %w", loan.ErrResponseLoanNotFound)
		case isOutstandingLoanConflict(err):
			return loan.Loan{}, fmt.Errorf("updating loan on db: %w", loan.ErrResponseBookAlreadyLoaned)
		default:
			return loan.Loan{}, fmt.Errorf("updating loan on db: %w", err)
		}
	}

	return updated.toLoan(), nil
}

func (store *Store) FindLoans(ctx context.Context, filter query.Example, page query.PageRequest) (query.Page[loan.Loan], error) {
	where := whereExample(filter, loanColumns)
	from := dialect.From(goqu.T("loans").As("l")).
		LeftJoin(goqu.T("books").As("b"), goqu.On(goqu.T("b").Col("id").Eq(goqu.T("l").Col("book_id")))).
		Where(where...)

	countSQL, countArgs, err := from.
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return query.Page[loan.Loan]{}, fmt.Errorf("building loan count query: %w", err)
	}

	pageSQL, pageArgs, err := from.
		Select(
			goqu.T("l").Col("id"), goqu.T("l").Col("customer"), goqu.T("l").Col("customer_email"),
			goqu.T("l").Col("book_id"), goqu.T("l").Col("loan_date"), goqu.T("l").Col("returned"),
			goqu.T("b").Col("title"), goqu.T("b").Col("author"), goqu.T("b").Col("isbn"),
		).
		Order(goqu.T("l").Col("loan_date").Asc(), goqu.T("l").Col("id").Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return query.Page[loan.Loan]{}, fmt.Errorf("building loan search query: %w", err)
	}

	var total int
	var rows []loanRow
	err = store.inTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *Store) error {
		err := sqlx.GetContext(ctx, tx.exc, &total, countSQL, countArgs...)
		if err != nil {
			return err
		}
		return sqlx.SelectContext(ctx, tx.exc, &rows, pageSQL, pageArgs...)
	})
	if err != nil {
		return query.Page[loan.Loan]{}, fmt.Errorf("finding loans on db: %w", err)
	}

	loans := make([]loan.Loan, 0, len(rows))
	for _, r := range rows {
		loans = append(loans, r.toLoan())
	}
	return query.NewPage(loans, page, total), nil
}

func (store *Store) ExistsOutstandingLoanForBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	sqlStatement := `SELECT EXISTS (
		SELECT 1 FROM loans
		WHERE book_id = $1 AND returned IS NOT TRUE
	)`
	var exists bool
	err := sqlx.GetContext(ctx, store.exc, &exists, sqlStatement, bookID)
	if err != nil {
		return false, fmt.Errorf("checking outstanding loans: %w", err)
	}
	return exists, nil
}

/* Lists the outstanding loans dated on or before threshold. */
func (store *Store) ListOverdueLoans(ctx context.Context, threshold time.Time) ([]loan.Loan, error) {
	sqlStatement := selectLoan + `
	FROM loans l LEFT JOIN books b ON b.id = l.book_id
	WHERE l.loan_date <= $1::date AND l.returned IS NOT TRUE
	ORDER BY l.loan_date, l.id`
	var rows []loanRow
	err := sqlx.SelectContext(ctx, store.exc, &rows, sqlStatement, threshold.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("listing overdue loans: %w", err)
	}

	loans := make([]loan.Loan, 0, len(rows))
	for _, r := range rows {
		loans = append(loans, r.toLoan())
	}
	return loans, nil
}
