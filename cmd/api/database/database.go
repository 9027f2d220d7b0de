package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx.
type DBTX interface {
	sqlx.ExtContext
}

// Store implements the book and loan repositories over postgres.
type Store struct {
	db  *sqlx.DB
	exc DBTX
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:  db,
		exc: db,
	}
}

/* Returns a copy of the store whose statements run inside a new transaction. */
func (store *Store) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Store, *sqlx.Tx, error) {
	tx, err := store.db.BeginTxx(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}

	txStore := &Store{
		db:  store.db,
		exc: tx,
	}
	return txStore, tx, nil
}

/* Runs fn inside a transaction, committing only when fn succeeds. */
func (store *Store) inTx(ctx context.Context, opts *sql.TxOptions, fn func(txStore *Store) error) error {
	txStore, tx, err := store.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = fn(txStore)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

/* Connects to the database through a connection string and returns a pointer to a valid DB object (*sqlx.DB). */
func ConnectDb(ctx context.Context, connStr string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, opening: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to db, pinging: %w", err)
	}

	slog.Info("connected to database")
	return db, nil
}

func newMigrate(db *sqlx.DB, path string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return nil, err
	}

	return migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
}

/* Applies every pending migration found under path. Being up to date is not an error. */
func MigrationUp(db *sqlx.DB, path string) error {
	m, err := newMigrate(db, path)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("database schema up to date", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	slog.Info("migrations applied", "path", path)
	return nil
}

func MigrationDown(db *sqlx.DB, path string) error {
	m, err := newMigrate(db, path)
	if err != nil {
		return fmt.Errorf("migrating down: %w", err)
	}

	err = m.Down()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating down: %w", err)
	}
	return nil
}
