package api

import "fmt"

// APIError is the single transport-failure type raised by the gateway.
// StatusCode is 0 when the request never produced an HTTP response
// (network unreachable, bad URL, decode failure).
type APIError struct {
	StatusCode int
	Message    string

	// Err is the underlying cause, when there is one.
	Err error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
