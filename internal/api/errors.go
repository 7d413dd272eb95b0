package api

import (
	"errors"
	"fmt"

	apperr "github.com/darrkasamna/catalog/pkg/errors"
)

// Standard JSON-RPC error codes
const (
	ErrParseError     = -32700
	ErrInvalidRequest = -32600
	ErrMethodNotFound = -32601
	ErrInvalidParams  = -32602
	ErrInternalError  = -32603
)

// Catalog error codes
const (
	ErrServerError  = -32000
	ErrUnauthorized = -32001
	ErrNotFound     = -32004
)

// Error represents an API error
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// invalidParams wraps a params decoding failure
func invalidParams(err error) error {
	return NewError(ErrInvalidParams, fmt.Sprintf("Invalid params: %v", err))
}

// errorCode maps a handler error onto a JSON-RPC error code
func errorCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		return ErrUnauthorized
	case apperr.KindNotFound:
		return ErrNotFound
	case apperr.KindValidation:
		return ErrInvalidParams
	default:
		return ErrServerError
	}
}
