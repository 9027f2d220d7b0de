package http

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/book"
	"github.com/library-service/cmd/api/loan"
	"github.com/library-service/cmd/api/pkgerrors"
)

type LoanHandler struct {
	loanService    LoanServiceAPI
	bookService    BookServiceAPI
	requestTimeout time.Duration
}

func NewLoanHandler(loanService LoanServiceAPI, bookService BookServiceAPI, requestTimeout time.Duration) *LoanHandler {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &LoanHandler{
		loanService:    loanService,
		bookService:    bookService,
		requestTimeout: requestTimeout,
	}
}

/* Addresses a call to "/api/loans" according to the requested action.  */
func (h *LoanHandler) loans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.findLoans(w, r)
	case http.MethodPost:
		h.createLoan(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

/* Addresses a call to "/api/loans/(expected id here)" according to the requested action.  */
func (h *LoanHandler) loanById(w http.ResponseWriter, r *http.Request) {
	id, rest, err := isolateId(w, r, "/api/loans/")
	if err != nil {
		return
	}
	if rest != "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getLoanById(w, r, id)
	case http.MethodPatch:
		h.patchLoan(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type LoanEntry struct {
	Isbn          string `json:"isbn"`
	Customer      string `json:"customer"`
	CustomerEmail string `json:"customer_email"`
}

type LoanPatch struct {
	Returned *bool `json:"returned"`
}

type LoanResponse struct {
	ID            uuid.UUID    `json:"id"`
	Customer      string       `json:"customer"`
	CustomerEmail string       `json:"customer_email"`
	Book          BookResponse `json:"book"`
	LoanDate      string       `json:"loan_date"`
	Returned      bool         `json:"returned"`
}

func loanToResponse(l loan.Loan) LoanResponse {
	return LoanResponse{
		ID:            l.ID,
		Customer:      l.Customer,
		CustomerEmail: l.CustomerEmail,
		Book:          bookToResponse(l.Book),
		LoanDate:      l.LoanDate.Format(time.DateOnly),
		Returned:      !l.Outstanding(),
	}
}

/* Verifies that a loan entry names a book and a customer reachable by email. */
func validateLoanEntry(entry LoanEntry) error {
	var missing []string
	if strings.TrimSpace(entry.Isbn) == "" {
		missing = append(missing, "isbn")
	}
	if strings.TrimSpace(entry.Customer) == "" {
		missing = append(missing, "customer")
	}
	if strings.TrimSpace(entry.CustomerEmail) == "" {
		missing = append(missing, "customer_email")
	}
	if len(missing) > 0 {
		return pkgerrors.ErrResponseEntryBlankFields.WithDetail(strings.Join(missing, ", "))
	}

	addr, err := mail.ParseAddress(entry.CustomerEmail)
	if err != nil || addr.Address != entry.CustomerEmail {
		return pkgerrors.ErrResponseEmailInvalidFormat
	}
	return nil
}

/* Resolves the book by isbn, then lends it to the customer. */
func (h *LoanHandler) createLoan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var entry LoanEntry
	if !decodeEntry(w, r, &entry) {
		return
	}

	err := validateLoanEntry(entry)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return
	}

	loanBook, err := h.bookService.GetByIsbn(ctx, entry.Isbn)
	if err != nil {
		if errors.Is(err, book.ErrResponseBookNotFound) {
			responseJSON(w, http.StatusBadRequest, loan.ErrResponseLoanBookRequired)
			return
		}
		responseError(w, err)
		return
	}

	created, err := h.loanService.Save(ctx, loan.Loan{
		Customer:      entry.Customer,
		CustomerEmail: entry.CustomerEmail,
		Book:          loanBook,
	})
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusCreated, loanToResponse(created))
}

func (h *LoanHandler) getLoanById(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	found, err := h.loanService.GetByID(ctx, id)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, loanToResponse(found))
}

/* Marks a loan as returned, or reopens it when returned is false. */
func (h *LoanHandler) patchLoan(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var patch LoanPatch
	if !decodeEntry(w, r, &patch) {
		return
	}
	if patch.Returned == nil {
		responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseEntryBlankFields.WithDetail("returned"))
		return
	}

	var updated loan.Loan
	var err error
	if *patch.Returned {
		updated, err = h.loanService.Return(ctx, id)
	} else {
		var stored loan.Loan
		stored, err = h.loanService.GetByID(ctx, id)
		if err == nil {
			stored.Returned = patch.Returned
			updated, err = h.loanService.Update(ctx, stored)
		}
	}
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, loanToResponse(updated))
}

/* Returns a page of the loans matching customer, customer_email, isbn and returned from the query. */
func (h *LoanHandler) findLoans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	values := r.URL.Query()
	page, valid := extractPageParams(values)
	if !valid {
		responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseQueryPageInvalid)
		return
	}

	filter := loan.Loan{
		Customer:      values.Get("customer"),
		CustomerEmail: values.Get("customer_email"),
		Book:          book.Book{Isbn: values.Get("isbn")},
	}
	if returnedStr := values.Get("returned"); returnedStr != "" {
		returned, err := strconv.ParseBool(returnedStr)
		if err != nil {
			responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseEntryBlankFields.WithDetail("returned must be true or false"))
			return
		}
		filter.Returned = &returned
	}

	found, err := h.loanService.Find(ctx, filter, page)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, pageToResponse(found, loanToResponse))
}
