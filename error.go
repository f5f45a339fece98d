package vocab

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These map behavior to machine-readable categories so callers can branch
// on ErrorCode without string matching. EUNAVAILABLE covers network/HTTP
// failures, EPARSE covers pages missing their expected structure, and
// ECORRUPT covers persisted stores that cannot be trusted.
const (
	ECONFLICT    = "conflict"    // another process holds the run lock
	ECORRUPT     = "corrupt"     // persisted store unreadable
	EINVALID     = "invalid"     // validation failed
	EINTERNAL    = "internal"    // internal error
	ENOTFOUND    = "not_found"   // entity does not exist
	EPARSE       = "parse"       // expected page structure missing
	EUNAVAILABLE = "unavailable" // network or HTTP layer failure
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("vocab error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
