package scriptura

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // upstream unreachable after retries
	EINTERNAL    = "internal"    // internal error
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application,
// otherwise diagnostic purposes only.
func (e *Error) Error() string {
	return fmt.Sprintf("scriptura error: code=%q message=%q", e.Code, e.Message)
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
