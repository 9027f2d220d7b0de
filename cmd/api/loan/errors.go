package loan

import "github.com/library-service/cmd/api/pkgerrors"

var ErrResponseBookAlreadyLoaned = pkgerrors.ErrResponse{Code: 301, Kind: pkgerrors.ErrConflict, Message: "book already loaned"}
var ErrResponseLoanNotFound = pkgerrors.ErrResponse{Code: 302, Kind: pkgerrors.ErrNotFound, Message: "loan not found"}
var ErrResponseLoanAlreadyReturned = pkgerrors.ErrResponse{Code: 303, Kind: pkgerrors.ErrInvalidArgument, Message: "loan already returned"}
var ErrResponseLoanBookRequired = pkgerrors.ErrResponse{Code: 304, Kind: pkgerrors.ErrInvalidArgument, Message: "book not found for passed identifier"}
var ErrResponseLoanIDRequired = pkgerrors.ErrResponse{Code: 305, Kind: pkgerrors.ErrInvalidArgument, Message: "loan id can't be null"}
