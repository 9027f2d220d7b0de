package http

import (
	"fmt"
	"net/http"
	"time"
)

const DefaultRequestTimeout = 5 * time.Second

type ServerConfig struct {
	Port           int
	RequestTimeout time.Duration
}

func NewServer(config ServerConfig, bh *BookHandler, lh *LoanHandler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", ping)
	mux.HandleFunc("/api/books", bh.books)
	mux.HandleFunc("/api/books/search", bh.searchBooks)
	mux.HandleFunc("/api/books/", bh.bookById)
	mux.HandleFunc("/api/loans", lh.loans)
	mux.HandleFunc("/api/loans/", lh.loanById)

	server := http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           mux,
		ReadHeaderTimeout: config.RequestTimeout,
	}
	return &server
}

/* Tests the http server connection.  */
func ping(w http.ResponseWriter, r *http.Request) {
	method := r.Method
	if method == http.MethodGet {
		w.WriteHeader(http.StatusNoContent)
		return
	} else {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}
