package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the catalog rejected the API key (HTTP 401).
	ErrUnauthorized = errors.New("catalog: unauthorized")
	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("catalog: not found")
	// ErrServer indicates a catalog-side failure (HTTP 5xx).
	ErrServer = errors.New("catalog: server error")
)

// InvalidResponseError is returned for status codes outside the mapped set.
type InvalidResponseError struct {
	Code int
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("catalog: invalid response (status %d)", e.Code)
}

// NetworkError wraps a transport failure (DNS, TLS, timeout, refused).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodingError wraps a body-decode failure on a 2xx response.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("catalog: decoding error: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }
