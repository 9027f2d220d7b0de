package book

import "github.com/library-service/cmd/api/pkgerrors"

var ErrResponseIsbnAlreadyRegistered = pkgerrors.ErrResponse{Code: 201, Kind: pkgerrors.ErrConflict, Message: "isbn already registered"}
var ErrResponseBookNotFound = pkgerrors.ErrResponse{Code: 202, Kind: pkgerrors.ErrNotFound, Message: "book not found"}
var ErrResponseBookIDRequired = pkgerrors.ErrResponse{Code: 203, Kind: pkgerrors.ErrInvalidArgument, Message: "book id can't be null"}
