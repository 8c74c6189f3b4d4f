package apperrors

import (
	"errors"
	"fmt"
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")

	// ErrCourseFileMissing covers the case where the course record exists
	// but its PDF is gone from the upload directory.
	ErrCourseFileMissing = errors.New("course file not found")
)

// Upload errors
var (
	ErrInvalidCourseFile = errors.New("course file must be a PDF")
)

// Storage errors
var (
	ErrStorageFailure = errors.New("storage failure")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewStorageError wraps a low-level table or blob I/O failure so callers can
// match it with errors.Is(err, ErrStorageFailure) while logs keep the cause.
func NewStorageError(op string, err error) *CustomError {
	return &CustomError{
		Err:     ErrStorageFailure,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}
