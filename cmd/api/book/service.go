package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/query"
)

//go:generate mockgen -source=service.go -destination=mocks/repository.go -package=mocks

type Repository interface {
	CreateBook(ctx context.Context, bookEntry Book) (Book, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (Book, error)
	GetBookByIsbn(ctx context.Context, isbn string) (Book, error)
	ExistsBookByIsbn(ctx context.Context, isbn string) (bool, error)
	ListAllBooks(ctx context.Context) ([]Book, error)
	FindBooks(ctx context.Context, filter query.Example, page query.PageRequest) (query.Page[Book], error)
	UpdateBook(ctx context.Context, bookEntry Book) (Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// Service owns the catalog rules: isbn uniqueness on creation and mandatory identity on update/delete.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/* Stores a new book, refusing it if its isbn is already registered. The identity is assigned by the store. */
func (s *Service) Create(ctx context.Context, bookEntry Book) (Book, error) {
	exists, err := s.repo.ExistsBookByIsbn(ctx, bookEntry.Isbn)
	if err != nil {
		return Book{}, repoError("Create", err)
	}
	if exists {
		return Book{}, ErrResponseIsbnAlreadyRegistered
	}

	bookEntry.ID = uuid.Nil
	created, err := s.repo.CreateBook(ctx, bookEntry)
	if err != nil {
		return Book{}, repoError("Create", err)
	}
	return created, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Book, error) {
	books, err := s.repo.ListAllBooks(ctx)
	if err != nil {
		return nil, repoError("ListAll", err)
	}
	return books, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Book, error) {
	b, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		return Book{}, repoError("GetByID", err)
	}
	return b, nil
}

/* Replaces the stored book. The isbn is not checked for uniqueness here. */
func (s *Service) Update(ctx context.Context, bookEntry Book) (Book, error) {
	if bookEntry.ID == uuid.Nil {
		return Book{}, ErrResponseBookIDRequired
	}
	updated, err := s.repo.UpdateBook(ctx, bookEntry)
	if err != nil {
		return Book{}, repoError("Update", err)
	}
	return updated, nil
}

/* Removes the book. Loans pointing at it are kept as history. */
func (s *Service) Delete(ctx context.Context, bookEntry Book) error {
	if bookEntry.ID == uuid.Nil {
		return ErrResponseBookIDRequired
	}
	err := s.repo.DeleteBook(ctx, bookEntry.ID)
	if err != nil {
		return repoError("Delete", err)
	}
	return nil
}

func (s *Service) Find(ctx context.Context, filter Book, page query.PageRequest) (query.Page[Book], error) {
	err := page.Validate()
	if err != nil {
		return query.Page[Book]{}, err
	}
	books, err := s.repo.FindBooks(ctx, filter.Example(), page)
	if err != nil {
		return query.Page[Book]{}, repoError("Find", err)
	}
	return books, nil
}

func (s *Service) GetByIsbn(ctx context.Context, isbn string) (Book, error) {
	b, err := s.repo.GetBookByIsbn(ctx, isbn)
	if err != nil {
		return Book{}, repoError("GetByIsbn", err)
	}
	return b, nil
}

func repoError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timeout on call to %s: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
