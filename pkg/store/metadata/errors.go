package metadata

import "errors"

// StoreError represents a domain error from metadata store operations.
//
// These are business conditions (record not found, malformed cursor) as
// opposed to infrastructure errors (disk failure, network error), which are
// returned as plain wrapped errors. The service layer translates StoreError
// codes into API error codes and HTTP statuses.
type StoreError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// ErrorCode represents the category of a metadata store error.
type ErrorCode int

const (
	// ErrNotFound indicates no record exists for the requested image ID
	ErrNotFound ErrorCode = iota

	// ErrInvalidCursor indicates the scan cursor does not parse as a
	// continuation key produced by this store
	ErrInvalidCursor
)

// IsNotFound reports whether err is a StoreError carrying ErrNotFound.
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrNotFound
}

// IsInvalidCursor reports whether err is a StoreError carrying ErrInvalidCursor.
func IsInvalidCursor(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrInvalidCursor
}
