package inmemory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/query"
)

type AdaptedBook struct {
	ID     string
	Title  string
	Author string
	Isbn   string
}

func adaptBookIdToString(bookEntry book.Book) AdaptedBook {
	return AdaptedBook{
		ID:     bookEntry.ID.String(),
		Title:  bookEntry.Title,
		Author: bookEntry.Author,
		Isbn:   bookEntry.Isbn,
	}
}

func adaptBookIdToUUID(adptBook AdaptedBook) book.Book {
	return book.Book{
		ID:     uuid.MustParse(adptBook.ID),
		Title:  adptBook.Title,
		Author: adptBook.Author,
		Isbn:   adptBook.Isbn,
	}
}

/* Stores a new book unless its isbn is already registered. The check and the insert share one write transaction. */
func (store *InMemoryStore) CreateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableBook, indexIsbn, bookEntry.Isbn)
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if raw != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", book.ErrResponseIsbnAlreadyRegistered)
	}

	if bookEntry.ID == uuid.Nil {
		bookEntry.ID = uuid.New()
	}
	err = txn.Insert(tableBook, adaptBookIdToString(bookEntry))
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	txn.Commit()
	return bookEntry, nil
}

func (store *InMemoryStore) GetBookByID(ctx context.Context, id uuid.UUID) (book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableBook, indexID, id.String())
	if err != nil {
		return book.Book{}, fmt.Errorf("searching by ID: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("searching by ID: %w", book.ErrResponseBookNotFound)
	}
	return adaptBookIdToUUID(raw.(AdaptedBook)), nil
}

func (store *InMemoryStore) GetBookByIsbn(ctx context.Context, isbn string) (book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableBook, indexIsbn, isbn)
	if err != nil {
		return book.Book{}, fmt.Errorf("searching by isbn: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("searching by isbn: %w", book.ErrResponseBookNotFound)
	}
	return adaptBookIdToUUID(raw.(AdaptedBook)), nil
}

func (store *InMemoryStore) ExistsBookByIsbn(ctx context.Context, isbn string) (bool, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableBook, indexIsbn, isbn)
	if err != nil {
		return false, fmt.Errorf("checking isbn: %w", err)
	}
	return raw != nil, nil
}

func (store *InMemoryStore) ListAllBooks(ctx context.Context) ([]book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	books, err := collectBooks(txn, query.NewExample())
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}
	return books, nil
}

func (store *InMemoryStore) FindBooks(ctx context.Context, filter query.Example, page query.PageRequest) (query.Page[book.Book], error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	books, err := collectBooks(txn, filter)
	if err != nil {
		return query.Page[book.Book]{}, fmt.Errorf("finding books on db: %w", err)
	}
	return query.Paginate(books, page), nil
}

/* Returns every book matching the filter, ordered by title. */
func collectBooks(txn *memdb.Txn, filter query.Example) ([]book.Book, error) {
	it, err := txn.Get(tableBook, indexID)
	if err != nil {
		return nil, err
	}

	books := []book.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b := adaptBookIdToUUID(obj.(AdaptedBook))
		if !filter.Matches(b.Column) {
			continue
		}
		books = append(books, b)
	}

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
	return books, nil
}

/* Replaces every field of a stored book but its identity. */
func (store *InMemoryStore) UpdateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableBook, indexID, bookEntry.ID.String())
	if err != nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", book.ErrResponseBookNotFound)
	}

	err = txn.Insert(tableBook, adaptBookIdToString(bookEntry))
	if err != nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", err)
	}

	txn.Commit()
	return bookEntry, nil
}

/* Removes a book. Its loans are left untouched. */
func (store *InMemoryStore) DeleteBook(ctx context.Context, id uuid.UUID) error {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableBook, indexID, id.String())
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("deleting book from db: %w", book.ErrResponseBookNotFound)
	}

	err = txn.Delete(tableBook, raw)
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}

	txn.Commit()
	return nil
}
