package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// AppError is a business error carrying an HTTP status and a stable machine
// code that clients branch on (e.g. FORMADOR_SINGLE_ENROLLMENT).
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is maps AppError statuses onto the package sentinels so callers can keep
// using errors.Is without caring whether a coded error was returned.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest
	case ErrDuplicate:
		return e.Status == http.StatusConflict
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// NewAppError creates an AppError with an explicit status.
func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// NewValidation creates a 400 error with a machine code.
func NewValidation(code, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message)
}

// NewNotFound creates a 404 error with a machine code.
func NewNotFound(code, message string) *AppError {
	return NewAppError(http.StatusNotFound, code, message)
}

// NewConflict creates a 409 error with a machine code.
func NewConflict(code, message string) *AppError {
	return NewAppError(http.StatusConflict, code, message)
}
