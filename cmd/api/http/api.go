package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/loan"
	"github.com/library-service/cmd/api/query"
)

//go:generate mockgen -source=api.go -destination=mocks/api.go -package=mocks

type BookServiceAPI interface {
	Create(ctx context.Context, bookEntry book.Book) (book.Book, error)
	ListAll(ctx context.Context) ([]book.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (book.Book, error)
	GetByIsbn(ctx context.Context, isbn string) (book.Book, error)
	Update(ctx context.Context, bookEntry book.Book) (book.Book, error)
	Delete(ctx context.Context, bookEntry book.Book) error
	Find(ctx context.Context, filter book.Book, page query.PageRequest) (query.Page[book.Book], error)
}

type LoanServiceAPI interface {
	Save(ctx context.Context, loanEntry loan.Loan) (loan.Loan, error)
	GetByID(ctx context.Context, id uuid.UUID) (loan.Loan, error)
	Update(ctx context.Context, loanEntry loan.Loan) (loan.Loan, error)
	Return(ctx context.Context, id uuid.UUID) (loan.Loan, error)
	Find(ctx context.Context, filter loan.Loan, page query.PageRequest) (query.Page[loan.Loan], error)
	GetLoansByBook(ctx context.Context, b book.Book, page query.PageRequest) (query.Page[loan.Loan], error)
}
