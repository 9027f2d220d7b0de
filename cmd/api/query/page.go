package query

import (
	"math"

	"github.com/library-service/cmd/api/pkgerrors"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps Offset from overflowing for every valid size.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest addresses a zero-based page of a result set.
type PageRequest struct {
	Page int
	Size int
}

func (r PageRequest) Validate() error {
	if r.Page < 0 || r.Page > MaxPage || r.Size < 1 || r.Size > MaxPageSize {
		return pkgerrors.ErrResponseQueryPageInvalid
	}
	return nil
}

func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is one slice of a filtered result set plus the size of the whole set.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int
	TotalPages    int
}

func NewPage[T any](content []T, req PageRequest, total int) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size //up rounded to next integer
	}
	return Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

/* Cuts the requested page out of an already filtered and ordered slice. */
func Paginate[T any](all []T, req PageRequest) Page[T] {
	start := req.Offset()
	if start < 0 || start > len(all) {
		start = len(all)
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}
	content := make([]T, end-start)
	copy(content, all[start:end])
	return NewPage(content, req, len(all))
}

/* Converts the content of a page keeping its pagination data. */
func MapPage[T, U any](p Page[T], f func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, f(item))
	}
	return Page[U]{
		Content:       content,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
