package loan

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/query"
)

type Loan struct {
	ID            uuid.UUID
	Customer      string
	CustomerEmail string
	Book          book.Book
	LoanDate      time.Time
	Returned      *bool // nil and false both mean outstanding
}

// Columns a loan can be filtered by.
const (
	ColumnCustomer      = "customer"
	ColumnCustomerEmail = "customer_email"
	ColumnBookID        = "book_id"
	ColumnBookIsbn      = "book_isbn"
	ColumnReturned      = "returned"
)

/* A loan is outstanding until it is explicitly marked as returned. */
func (l Loan) Outstanding() bool {
	return l.Returned == nil || !*l.Returned
}

/* Moves an outstanding loan to returned. A returned loan cannot be returned again. */
func (l Loan) Return() (Loan, error) {
	if !l.Outstanding() {
		return Loan{}, ErrResponseLoanAlreadyReturned
	}
	l.Returned = toPointer(true)
	return l, nil
}

func (l Loan) Example() query.Example {
	bookID := ""
	if l.Book.ID != uuid.Nil {
		bookID = l.Book.ID.String()
	}
	returned := ""
	if l.Returned != nil {
		returned = strconv.FormatBool(*l.Returned)
	}
	return query.NewExample(
		query.Contains(ColumnCustomer, l.Customer),
		query.Contains(ColumnCustomerEmail, l.CustomerEmail),
		query.Equals(ColumnBookID, bookID),
		query.Contains(ColumnBookIsbn, l.Book.Isbn),
		query.Equals(ColumnReturned, returned),
	)
}

func (l Loan) Column(name string) string {
	switch name {
	case ColumnCustomer:
		return l.Customer
	case ColumnCustomerEmail:
		return l.CustomerEmail
	case ColumnBookID:
		return l.Book.ID.String()
	case ColumnBookIsbn:
		return l.Book.Isbn
	case ColumnReturned:
		return strconv.FormatBool(!l.Outstanding())
	}
	return ""
}

/* Truncates a point in time to its calendar date, expressed as midnight UTC. */
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toPointer[T any](v T) *T {
	return &v
}
