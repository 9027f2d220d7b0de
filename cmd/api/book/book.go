package book

import (
	"github.com/google/uuid"
	"github.com/library-service/cmd/api/query"
)

type Book struct {
	ID     uuid.UUID
	Title  string
	Author string
	Isbn   string
}

// Columns a book can be filtered by.
const (
	ColumnID     = "id"
	ColumnTitle  = "title"
	ColumnAuthor = "author"
	ColumnIsbn   = "isbn"
)

/* Builds the partial-match filter described by the book: text fields match as substrings, the id matches exactly. */
func (b Book) Example() query.Example {
	id := ""
	if b.ID != uuid.Nil {
		id = b.ID.String()
	}
	return query.NewExample(
		query.Equals(ColumnID, id),
		query.Contains(ColumnTitle, b.Title),
		query.Contains(ColumnAuthor, b.Author),
		query.Contains(ColumnIsbn, b.Isbn),
	)
}

/* Returns the value of a filterable column. */
func (b Book) Column(name string) string {
	switch name {
	case ColumnID:
		return b.ID.String()
	case ColumnTitle:
		return b.Title
	case ColumnAuthor:
		return b.Author
	case ColumnIsbn:
		return b.Isbn
	}
	return ""
}
