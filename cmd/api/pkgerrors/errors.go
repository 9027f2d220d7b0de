package pkgerrors

import (
	"context"
	"errors"
)

// Kinds of domain errors. Every ErrResponse unwraps to one of them.
var (
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Kind    error  `json:"-"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

func (e ErrResponse) Unwrap() error {
	return e.Kind
}

/* Returns a copy of the error with extra detail appended to the message, keeping code and kind. */
func (e ErrResponse) WithDetail(detail string) ErrResponse {
	e.Message = e.Message + detail
	return e
}

var ErrResponseEntryBlankFields = ErrResponse{100, ErrInvalidArgument, "all the required fields must be filled correctly: "}
var ErrResponseEntryInvalidJSON = ErrResponse{102, ErrInvalidArgument, "invalid json request."}
var ErrResponseIdInvalidFormat = ErrResponse{103, ErrInvalidArgument, "the endpoint is not a valid format ID. Must be a uuid"}
var ErrResponseQueryPageInvalid = ErrResponse{106, ErrInvalidArgument, "query parameter 'page' must be an int starting in 0. 'size' must be an int beetween 1 and 100."}
var ErrResponseEmailInvalidFormat = ErrResponse{108, ErrInvalidArgument, "field customer_email must be a valid email address."}
var ErrResponseRequestTimeout = ErrResponse{109, context.DeadlineExceeded, "context deadline exceeded"}
