// Package apperr defines the error kinds the backend reports to callers.
// Every collaborator failure is converted into one of these before it
// crosses a package boundary; none are retried.
package apperr

import "fmt"

// ValidationError reports missing or invalid required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError reports a document store failure. Partial is set when a
// multi-step write completed its first step but not a later one, so the
// stored state may already differ from what the caller last observed.
type StorageError struct {
	Msg     string
	Partial bool
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps an underlying store error.
func Storage(msg string, err error) *StorageError {
	return &StorageError{Msg: msg, Err: err}
}

// PartialStorage marks a failure that left a multi-step write half applied.
func PartialStorage(msg string, err error) *StorageError {
	return &StorageError{Msg: msg, Err: err, Partial: true}
}

// ClassificationServiceError reports that the external priority model was
// unreachable or returned a non-success response. No fallback priority is
// ever substituted.
type ClassificationServiceError struct {
	Msg string
	Err error
}

func (e *ClassificationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ClassificationServiceError) Unwrap() error { return e.Err }

// Classification wraps a classifier failure.
func Classification(msg string, err error) *ClassificationServiceError {
	return &ClassificationServiceError{Msg: msg, Err: err}
}

// AuthenticationError reports an invalid or expired credential.
type AuthenticationError struct {
	Msg string
	Err error
}

func (e *AuthenticationError) Error() string { return e.Msg }

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Authentication builds an AuthenticationError.
func Authentication(msg string, err error) *AuthenticationError {
	return &AuthenticationError{Msg: msg, Err: err}
}
