package inmemory

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const (
	tableBook = "book"
	tableLoan = "loan"

	indexID              = "id"
	indexIsbn            = "isbn"
	indexBookID          = "book_id"
	indexBookOutstanding = "book_outstanding"
)

// InMemoryStore keeps books and loans in a go-memdb database. memdb allows a single
// writer at a time, so every check-then-write done inside one write transaction is atomic.
type InMemoryStore struct {
	db *memdb.MemDB
}

func NewInMemoryStore() (*InMemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableBook: {
				Name: tableBook,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexIsbn: { // not unique: the isbn is only checked when a book is created
						Name:         indexIsbn,
						Unique:       false,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Isbn"},
					},
				},
			},
			tableLoan: {
				Name: tableLoan,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexBookID: {
						Name:    indexBookID,
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "BookID"},
					},
					indexBookOutstanding: { // Composite index for the "one outstanding loan per book" lookup
						Name:   indexBookOutstanding,
						Unique: false,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "BookID"},
								&memdb.ConditionalIndex{Conditional: isOutstanding},
							},
						},
					},
				},
			},
		},
	}

	err := schema.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating in-memory schema: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db}, nil
}

func isOutstanding(obj interface{}) (bool, error) {
	l, ok := obj.(AdaptedLoan)
	if !ok {
		return false, fmt.Errorf("unexpected object %T in loan table", obj)
	}
	return l.Returned == nil || !*l.Returned, nil
}
