package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when the server answers 401. The client has
// already cleared the stored session by the time callers see it; the only
// recovery is a fresh login, never a retry.
var ErrUnauthenticated = errors.New("unauthenticated")

// RequestError is any non-2xx answer other than 401. Message is best-effort,
// taken from the response body's "error" field when one parses.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// NetworkError is a transport-level failure: no HTTP response was obtained.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }
