package domain

import (
	"fmt"
	"net/http"
)

// Error is the single failure value returned by validation, authorization and
// token verification. Body is forwarded to the client verbatim alongside
// Status; handlers never rewrite it.
type Error struct {
	Body   interface{}
	Status int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (status %d)", e.Body, e.Status)
}

// Errorf builds a business validation error with the {"Error": "..."} wire
// shape.
func Errorf(status int, format string, args ...interface{}) *Error {
	return &Error{
		Body:   map[string]string{"Error": fmt.Sprintf(format, args...)},
		Status: status,
	}
}

// AuthErrorf builds a token verification error with the {code, description}
// wire shape.
func AuthErrorf(code, format string, args ...interface{}) *Error {
	return &Error{
		Body: map[string]string{
			"code":        code,
			"description": fmt.Sprintf(format, args...),
		},
		Status: http.StatusUnauthorized,
	}
}

// Internal wraps an unexpected store or broker failure as a 500.
func Internal(err error) *Error {
	return Errorf(http.StatusInternalServerError, "internal error: %v", err)
}
