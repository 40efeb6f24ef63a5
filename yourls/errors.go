package yourls

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks client construction failures caused by an invalid
// or incomplete credential set. It is fatal at startup, never at call time.
var ErrConfiguration = errors.New("invalid yourls client configuration")

// TransportError reports a failed round trip: either the backend answered
// with a non-2xx status or the body could not be decoded as JSON.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("yourls: decode response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("yourls: backend returned status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a logically failed operation: the backend answered with a
// well-formed JSON body that lacks the operation's success key. Message and
// Code carry the backend-supplied values or the documented defaults.
type APIError struct {
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yourls: %s (code %s)", e.Message, e.Code)
}
