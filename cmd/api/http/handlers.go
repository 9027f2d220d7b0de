package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/pkgerrors"
)

type BookHandler struct {
	bookService    BookServiceAPI
	loanService    LoanServiceAPI
	requestTimeout time.Duration
}

func NewBookHandler(bookService BookServiceAPI, loanService LoanServiceAPI, requestTimeout time.Duration) *BookHandler {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &BookHandler{
		bookService:    bookService,
		loanService:    loanService,
		requestTimeout: requestTimeout,
	}
}

/* Addresses a call to "/api/books/(expected id here)" according to the requested action.  */
func (h *BookHandler) bookById(w http.ResponseWriter, r *http.Request) {
	id, rest, err := isolateId(w, r, "/api/books/")
	if err != nil {
		return
	}

	switch {
	case rest == "loans" && r.Method == http.MethodGet:
		h.listBookLoans(w, r, id)
	case rest != "":
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodGet:
		h.getBookById(w, r, id)
	case r.Method == http.MethodPut:
		h.updateBook(w, r, id)
	case r.Method == http.MethodDelete:
		h.deleteBook(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

/* Addresses a call to "/api/books" according to the requested action.  */
func (h *BookHandler) books(w http.ResponseWriter, r *http.Request) {
	method := r.Method
	switch method {
	case http.MethodGet:
		h.listBooks(w, r)
		return
	case http.MethodPost:
		h.createBook(w, r)
		return
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

type BookEntry struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Isbn   string `json:"isbn"`
}

type BookResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Isbn   string    `json:"isbn"`
}

/*Copy the fields of a book object to an http layer struct with json tags*/
func bookToResponse(b book.Book) BookResponse {
	return BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Isbn:   b.Isbn,
	}
}

/* Verifies that every field needed to register a book is filled. */
func FilledFields(bookEntry BookEntry) error {
	var missing []string
	if strings.TrimSpace(bookEntry.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(bookEntry.Author) == "" {
		missing = append(missing, "author")
	}
	if strings.TrimSpace(bookEntry.Isbn) == "" {
		missing = append(missing, "isbn")
	}
	if len(missing) > 0 {
		return pkgerrors.ErrResponseEntryBlankFields.WithDetail(strings.Join(missing, ", "))
	}
	return nil
}

/* Validates the entry, then stores the entry as a new book. */
func (h *BookHandler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var bookEntry BookEntry
	if !decodeEntry(w, r, &bookEntry) {
		return
	}

	err := FilledFields(bookEntry)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return
	}

	storedBook, err := h.bookService.Create(ctx, book.Book{
		Title:  bookEntry.Title,
		Author: bookEntry.Author,
		Isbn:   bookEntry.Isbn,
	})
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusCreated, bookToResponse(storedBook))
}

/* Changes title and author of a stored book. Its isbn stays as registered. */
func (h *BookHandler) updateBook(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var bookEntry BookEntry
	if !decodeEntry(w, r, &bookEntry) {
		return
	}

	stored, err := h.bookService.GetByID(ctx, id)
	if err != nil {
		responseError(w, err)
		return
	}

	if bookEntry.Title != "" {
		stored.Title = bookEntry.Title
	}
	if bookEntry.Author != "" {
		stored.Author = bookEntry.Author
	}

	updatedBook, err := h.bookService.Update(ctx, stored)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, bookToResponse(updatedBook))
}

func (h *BookHandler) deleteBook(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	err := h.bookService.Delete(ctx, book.Book{ID: id})
	if err != nil {
		responseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* Returns the book with that specific ID. */
func (h *BookHandler) getBookById(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	returnedBook, err := h.bookService.GetByID(ctx, id)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, bookToResponse(returnedBook))
}

/* Returns every stored book. */
func (h *BookHandler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	books, err := h.bookService.ListAll(ctx)
	if err != nil {
		responseError(w, err)
		return
	}

	results := make([]BookResponse, 0, len(books))
	for _, b := range books {
		results = append(results, bookToResponse(b))
	}
	responseJSON(w, http.StatusOK, results)
}

/* Returns a page of the books matching title, author and isbn from the query. */
func (h *BookHandler) searchBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	values := r.URL.Query()
	page, valid := extractPageParams(values)
	if !valid {
		responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseQueryPageInvalid)
		return
	}

	filter := book.Book{
		Title:  values.Get("title"),
		Author: values.Get("author"),
		Isbn:   values.Get("isbn"),
	}
	found, err := h.bookService.Find(ctx, filter, page)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, pageToResponse(found, bookToResponse))
}

/* Returns a page of the loans of a book. */
func (h *BookHandler) listBookLoans(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	page, valid := extractPageParams(r.URL.Query())
	if !valid {
		responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseQueryPageInvalid)
		return
	}

	loans, err := h.loanService.GetLoansByBook(ctx, book.Book{ID: id}, page)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, pageToResponse(loans, loanToResponse))
}
