package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrInvalidTransferTarget
	ErrReferenceNotFound
	ErrInvalidSaleStatus
	ErrConflictAlreadyResolved
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrInsufficientStock:       "insufficient stock",
	ErrInvalidTransferTarget:   "source and destination warehouse must differ",
	ErrReferenceNotFound:       "referenced entity not found",
	ErrInvalidSaleStatus:       "invalid sale status for this operation",
	ErrConflictAlreadyResolved: "conflict already resolved",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusBadRequest,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrInsufficientStock:       http.StatusConflict,
	ErrInvalidTransferTarget:   http.StatusBadRequest,
	ErrReferenceNotFound:       http.StatusBadRequest,
	ErrInvalidSaleStatus:       http.StatusBadRequest,
	ErrConflictAlreadyResolved: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrInsufficientStock:       "0005",
	ErrInvalidTransferTarget:   "0006",
	ErrReferenceNotFound:       "0007",
	ErrInvalidSaleStatus:       "0008",
	ErrConflictAlreadyResolved: "0009",
}
