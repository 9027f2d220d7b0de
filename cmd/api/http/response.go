package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/library-service/cmd/api/pkgerrors"
	"github.com/library-service/cmd/api/query"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

/*Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("encoding response", "error", err)
	}
}

/* Maps a service error to its status code: conflicts and invalid arguments are 400, missing entities 404, timeouts 504. */
func responseError(w http.ResponseWriter, err error) {
	var errR pkgerrors.ErrResponse
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("request timed out", "error", err)
		responseJSON(w, http.StatusGatewayTimeout, pkgerrors.ErrResponseRequestTimeout)
	case errors.Is(err, pkgerrors.ErrNotFound) && errors.As(err, &errR):
		slog.Debug("entity not found", "error", err)
		responseJSON(w, http.StatusNotFound, errR)
	case (errors.Is(err, pkgerrors.ErrConflict) || errors.Is(err, pkgerrors.ErrInvalidArgument)) && errors.As(err, &errR):
		slog.Debug("request rejected", "error", err)
		responseJSON(w, http.StatusBadRequest, errR)
	default:
		slog.Error("handling request", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

/* Decodes the request body, answering with an invalid json error when it cannot. */
func decodeEntry(w http.ResponseWriter, r *http.Request, entry any) bool {
	err := json.NewDecoder(r.Body).Decode(entry)
	if err != nil {
		slog.Debug("decoding request body", "error", err)
		responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseEntryInvalidJSON.WithDetail(err.Error()))
		return false
	}
	return true
}

/* Isolates the ID from the URL, returning whatever path follows it. */
func isolateId(w http.ResponseWriter, r *http.Request, prefix string) (id uuid.UUID, rest string, err error) {
	justId, _ := strings.CutPrefix(r.URL.Path, prefix)
	justId, rest, _ = strings.Cut(justId, "/")
	id, err = uuid.Parse(justId)
	if err != nil {
		slog.Debug("parsing id from path", "path", r.URL.Path, "error", err)
		responseJSON(w, http.StatusBadRequest, pkgerrors.ErrResponseIdInvalidFormat)
		return id, rest, err
	}
	return id, rest, nil
}

/* Reads page and size from the query, defaulting to the first page of DefaultPageSize elements. */
func extractPageParams(values url.Values) (query.PageRequest, bool) {
	page := query.PageRequest{Page: 0, Size: query.DefaultPageSize}

	var err error
	if pageStr := values.Get("page"); pageStr != "" {
		page.Page, err = strconv.Atoi(pageStr)
		if err != nil {
			return page, false
		}
	}
	if sizeStr := values.Get("size"); sizeStr != "" {
		page.Size, err = strconv.Atoi(sizeStr)
		if err != nil {
			return page, false
		}
	}

	return page, page.Validate() == nil
}

type PageResponse[T any] struct {
	Content       []T `json:"content"`
	Number        int `json:"number"`
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
}

func pageToResponse[T, U any](p query.Page[T], f func(T) U) PageResponse[U] {
	mapped := query.MapPage(p, f)
	return PageResponse[U]{
		Content:       mapped.Content,
		Number:        mapped.Number,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
	}
}
