package client

import "fmt"

// ServerError is returned when the classification service answers with a
// non-2xx status. It carries the upstream status code and response body.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("classification service returned status %d: %s", e.StatusCode, e.Body)
}

// NetworkError is returned when the request never produced an HTTP response
// (connection refused, DNS failure, reset). The transport error is wrapped.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("classification service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
