package model

import (
	"errors"
	"net/http"
)

// Error codes surfaced to the REST layer.
const (
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotFound         = "NOT_FOUND"
	CodeConfiguration    = "CONFIGURATION"
	CodeInvalidInput     = "INVALID_INPUT"
)

type Error struct {
	Code    string
	Message string
	Origin  error
}

func (e *Error) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Origin
}

func NewPermissionDenied(message string) *Error {
	return &Error{Code: CodePermissionDenied, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func NewConfiguration(message string, origin error) *Error {
	return &Error{Code: CodeConfiguration, Message: message, Origin: origin}
}

func NewInvalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

func IsErrorCode(err error, code string) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// HTTPStatus maps a domain error to the status the REST layer responds with.
// Permission failures and missing resources are kept distinct so callers see
// 403 vs 404.
func HTTPStatus(err error) int {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
