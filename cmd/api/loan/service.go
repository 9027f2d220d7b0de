package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/query"
)

//go:generate mockgen -source=service.go -destination=mocks/repository.go -package=mocks

// DefaultOverdueDays is the grace period after which an outstanding loan is overdue.
const DefaultOverdueDays = 4

type Repository interface {
	// CreateLoan must refuse, atomically, a loan for a book that already has an outstanding one.
	CreateLoan(ctx context.Context, loanEntry Loan) (Loan, error)
	GetLoanByID(ctx context.Context, id uuid.UUID) (Loan, error)
	UpdateLoan(ctx context.Context, loanEntry Loan) (Loan, error)
	FindLoans(ctx context.Context, filter query.Example, page query.PageRequest) (query.Page[Loan], error)
	ExistsOutstandingLoanForBook(ctx context.Context, bookID uuid.UUID) (bool, error)
	ListOverdueLoans(ctx context.Context, threshold time.Time) ([]Loan, error)
}

type BookFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (book.Book, error)
}

type Service struct {
	repo        Repository
	books       BookFinder
	overdueDays int
	now         func() time.Time
}

type Option func(*Service)

func WithOverdueDays(days int) Option {
	return func(s *Service) {
		s.overdueDays = days
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, books BookFinder, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		books:       books,
		overdueDays: DefaultOverdueDays,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

/*
Stores a new outstanding loan. The book must already be resolved by the caller;
a book with an outstanding loan cannot be loaned again.
*/
func (s *Service) Save(ctx context.Context, loanEntry Loan) (Loan, error) {
	if loanEntry.Book.ID == uuid.Nil {
		return Loan{}, ErrResponseLoanBookRequired
	}

	loaned, err := s.repo.ExistsOutstandingLoanForBook(ctx, loanEntry.Book.ID)
	if err != nil {
		return Loan{}, repoError("Save", err)
	}
	if loaned {
		return Loan{}, ErrResponseBookAlreadyLoaned
	}

	loanEntry.ID = uuid.Nil
	if loanEntry.LoanDate.IsZero() {
		loanEntry.LoanDate = s.today()
	} else {
		loanEntry.LoanDate = DateOf(loanEntry.LoanDate)
	}
	loanEntry.Returned = toPointer(false)

	created, err := s.repo.CreateLoan(ctx, loanEntry)
	if err != nil {
		return Loan{}, repoError("Save", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Loan, error) {
	l, err := s.repo.GetLoanByID(ctx, id)
	if err != nil {
		return Loan{}, repoError("GetByID", err)
	}
	return l, nil
}

/* Replaces the stored loan as is, including its returned flag. */
func (s *Service) Update(ctx context.Context, loanEntry Loan) (Loan, error) {
	if loanEntry.ID == uuid.Nil {
		return Loan{}, ErrResponseLoanIDRequired
	}
	updated, err := s.repo.UpdateLoan(ctx, loanEntry)
	if err != nil {
		return Loan{}, repoError("Update", err)
	}
	return updated, nil
}

/* Marks an outstanding loan as returned, refusing loans that are already returned. */
func (s *Service) Return(ctx context.Context, id uuid.UUID) (Loan, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return Loan{}, err
	}
	l, err = l.Return()
	if err != nil {
		return Loan{}, err
	}
	return s.Update(ctx, l)
}

func (s *Service) Find(ctx context.Context, filter Loan, page query.PageRequest) (query.Page[Loan], error) {
	err := page.Validate()
	if err != nil {
		return query.Page[Loan]{}, err
	}
	loans, err := s.repo.FindLoans(ctx, filter.Example(), page)
	if err != nil {
		return query.Page[Loan]{}, repoError("Find", err)
	}
	return loans, nil
}

/* Returns every outstanding loan dated on or before today minus the overdue grace period. */
func (s *Service) GetAllLateLoans(ctx context.Context) ([]Loan, error) {
	threshold := s.today().AddDate(0, 0, -s.overdueDays)
	loans, err := s.repo.ListOverdueLoans(ctx, threshold)
	if err != nil {
		return nil, repoError("GetAllLateLoans", err)
	}
	return loans, nil
}

/* Lists the loans of a book, failing with not found when the book does not exist. */
func (s *Service) GetLoansByBook(ctx context.Context, b book.Book, page query.PageRequest) (query.Page[Loan], error) {
	found, err := s.books.GetByID(ctx, b.ID)
	if err != nil {
		return query.Page[Loan]{}, fmt.Errorf("GetLoansByBook: %w", err)
	}
	return s.Find(ctx, Loan{Book: found}, page)
}

func (s *Service) today() time.Time {
	return DateOf(s.now())
}

func repoError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timeout on call to %s: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
