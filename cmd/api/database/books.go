package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/query"
)

type bookRow struct {
	ID     uuid.UUID `db:"id"`
	Title  string    `db:"title"`
	Author string    `db:"author"`
	Isbn   string    `db:"isbn"`
}

func (r bookRow) toBook() book.Book {
	return book.Book{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		Isbn:   r.Isbn,
	}
}

var bookColumns = map[string]column{
	book.ColumnID:     goqu.C("id"),
	book.ColumnTitle:  goqu.C("title"),
	book.ColumnAuthor: goqu.C("author"),
	book.ColumnIsbn:   goqu.C("isbn"),
}

/* Stores the book unless its isbn is already registered. Creations of the same isbn are serialized by an advisory lock. */
func (store *Store) CreateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	if bookEntry.ID == uuid.Nil {
		bookEntry.ID = uuid.New()
	}

	var created bookRow
	err := store.inTx(ctx, nil, func(tx *Store) error {
		_, err := tx.exc.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, bookEntry.Isbn)
		if err != nil {
			return err
		}

		sqlStatement := `
		INSERT INTO books (id, title, author, isbn)
		SELECT $1::uuid, $2::text, $3::text, $4::text
		WHERE NOT EXISTS (SELECT 1 FROM books WHERE isbn = $4::text)
		RETURNING id, title, author, isbn`
		return sqlx.GetContext(ctx, tx.exc, &created, sqlStatement, bookEntry.ID, bookEntry.Title, bookEntry.Author, bookEntry.Isbn)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return book.Book{}, fmt.Errorf("storing book on db: %w", book.ErrResponseIsbnAlreadyRegistered)
		}
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	return created.toBook(), nil
}

/* Searches a book in database based on ID and returns it if succeed. */
func (store *Store) GetBookByID(ctx context.Context, id uuid.UUID) (book.Book, error) {
	sqlStatement := `SELECT id, title, author, isbn
	FROM books
	WHERE id=$1;`
	var found bookRow
	err := sqlx.GetContext(ctx, store.exc, &found, sqlStatement, id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return book.Book{}, fmt.Errorf("searching by ID: %w", book.ErrResponseBookNotFound)
		default:
			return book.Book{}, fmt.Errorf("searching by ID: %w", err)
		}
	}

	return found.toBook(), nil
}

func (store *Store) GetBookByIsbn(ctx context.Context, isbn string) (book.Book, error) {
	sqlStatement := `SELECT id, title, author, isbn
	FROM books
	WHERE isbn=$1
	ORDER BY id
	LIMIT 1;`
	var found bookRow
	err := sqlx.GetContext(ctx, store.exc, &found, sqlStatement, isbn)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return book.Book{}, fmt.Errorf("searching by isbn: %w", book.ErrResponseBookNotFound)
		default:
			return book.Book{}, fmt.Errorf("searching by isbn: %w", err)
		}
	}

	return found.toBook(), nil
}

func (store *Store) ExistsBookByIsbn(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, store.exc, &exists, `SELECT EXISTS (SELECT 1 FROM books WHERE isbn=$1)`, isbn)
	if err != nil {
		return false, fmt.Errorf("checking isbn: %w", err)
	}
	return exists, nil
}

func (store *Store) ListAllBooks(ctx context.Context) ([]book.Book, error) {
	var rows []bookRow
	err := sqlx.SelectContext(ctx, store.exc, &rows, `SELECT id, title, author, isbn FROM books ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	books := make([]book.Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.toBook())
	}
	return books, nil
}

/* Returns one page of the books matching the filter. Count and content are read from the same snapshot. */
func (store *Store) FindBooks(ctx context.Context, filter query.Example, page query.PageRequest) (query.Page[book.Book], error) {
	where := whereExample(filter, bookColumns)

	countSQL, countArgs, err := dialect.From("books").
		Select(goqu.COUNT(goqu.Star())).
		Where(where...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return query.Page[book.Book]{}, fmt.Errorf("building book count query: %w", err)
	}

	pageSQL, pageArgs, err := dialect.From("books").
		Select("id", "title", "author", "isbn").
		Where(where...).
		Order(goqu.C("title").Asc(), goqu.C("id").Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return query.Page[book.Book]{}, fmt.Errorf("building book search query: %w", err)
	}

	var total int
	var rows []bookRow
	err = store.inTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *Store) error {
		err := sqlx.GetContext(ctx, tx.exc, &total, countSQL, countArgs...)
		if err != nil {
			return err
		}
		return sqlx.SelectContext(ctx, tx.exc, &rows, pageSQL, pageArgs...)
	})
	if err != nil {
		return query.Page[book.Book]{}, fmt.Errorf("finding books on db: %w", err)
	}

	books := make([]book.Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.toBook())
	}
	return query.NewPage(books, page, total), nil
}

/* Replaces every field of a stored book but its identity. The isbn is not checked for duplicates. */
func (store *Store) UpdateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	sqlStatement := `
	UPDATE books
	SET title = $2, author = $3, isbn = $4
	WHERE id = $1
	RETURNING id, title, author, isbn`
	var updated bookRow
	err := sqlx.GetContext(ctx, store.exc, &updated, sqlStatement, bookEntry.ID, bookEntry.Title, bookEntry.Author, bookEntry.Isbn)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return book.Book{}, fmt.Errorf("updating on db: %w", book.ErrResponseBookNotFound)
		default:
			return book.Book{}, fmt.Errorf("updating on db: %w", err)
		}
	}

	return updated.toBook(), nil
}

func (store *Store) DeleteBook(ctx context.Context, id uuid.UUID) error {
	result, err := store.exc.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("deleting book from db: %w", book.ErrResponseBookNotFound)
	}
	return nil
}
