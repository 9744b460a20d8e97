package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error beyond its HTTP status code. The
// three data-transformation kinds are the ones callers branch on; everything
// else is KindNone.
type Kind string

const (
	KindNone            Kind = ""
	KindValidation      Kind = "validation"
	KindFormat          Kind = "format"
	KindIndexOutOfRange Kind = "index_out_of_range"
)

// AppError represents an application error with an HTTP status code.
type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewAppError creates a new application error.
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates an error for malformed input data: missing
// fields, wrong types, negative or non-numeric amounts.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: message,
	}
}

// NewFormatError creates an error for CSV or date parsing failures.
func NewFormatError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindFormat,
		Message: message,
	}
}

// NewIndexError creates an error for an operation on a non-existent line.
func NewIndexError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindIndexOutOfRange,
		Message: message,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// GetAppError converts an error to an AppError if possible.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
