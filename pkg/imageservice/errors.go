package imageservice

import "errors"

// API error codes, one per failure class the HTTP surface distinguishes.
//
// Validation errors (400) are locally detected pre-conditions and are never
// retried. FORBIDDEN (403) carries a fixed message that does not leak which
// field mismatched. The two 404 codes are deliberately distinct so callers
// can tell "no metadata record" from "record exists but blob missing".
// INTERNAL_ERROR (500) wraps unexpected storage failures; retry policy is
// left to the caller.
const (
	CodeInvalidImageID    = "INVALID_IMAGE_ID"
	CodeInvalidUserID     = "INVALID_USER_ID"
	CodeInvalidImage      = "INVALID_IMAGE"
	CodeInvalidMetadata   = "INVALID_METADATA"
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeInvalidPagination = "INVALID_PAGINATION"
	CodeInvalidJSON       = "INVALID_JSON"
	CodeForbidden         = "FORBIDDEN"
	CodeImageNotFound     = "IMAGE_NOT_FOUND"
	CodeFileNotFound      = "FILE_NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Error is the service's API-facing error: an HTTP status class, a
// machine-readable code, and a human-readable message. Handlers serialize it
// into the error envelope verbatim.
type Error struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// AsError extracts an *Error from err, or wraps err as INTERNAL_ERROR.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return internalError(err)
}

func internalError(err error) *Error {
	return &Error{
		Status:  500,
		Code:    CodeInternalError,
		Message: "Internal server error: " + err.Error(),
	}
}
