package datasource

import "fmt"

// APIError is a well-formed weather API response body that itself encodes an
// application-level failure. The numeric code is interpreted one layer up,
// in the weather repository.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather API error %d: %s", e.Code, e.Message)
}

// DecodingError normalizes every schema or JSON failure into one error kind
// with a descriptive message. Raw json package errors never cross the data
// source boundary.
type DecodingError struct {
	Message string
}

func (e *DecodingError) Error() string {
	return "decoding error: " + e.Message
}

// StorageError wraps any favorites store failure; callers never see the
// storage engine's own error types.
type StorageError struct {
	Message string
}

func (e *StorageError) Error() string {
	return "storage error: " + e.Message
}
