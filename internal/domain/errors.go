package domain

import "errors"

// The domain error vocabulary. This is the only failure taxonomy visible
// above the repository layer; callers match with errors.Is / errors.As.
var (
	// ErrParameterNotProvided corresponds to API error code 1003.
	ErrParameterNotProvided = errors.New("required query parameter not provided")
	// ErrNoLocationFound corresponds to API error code 1006.
	ErrNoLocationFound = errors.New("no location found matching the query")
	// ErrInvalidAPIKey corresponds to API error code 2006.
	ErrInvalidAPIKey = errors.New("API key provided is invalid")
	// ErrDisabledAPIKey corresponds to API error code 2007.
	ErrDisabledAPIKey = errors.New("API key has been disabled")
)

// ServerError is any other application-level error reported by the weather
// API.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return "server error: " + e.Message
}

// UnexpectedError is a failure below the repository boundary (transport,
// decoding) that has no dedicated domain meaning.
type UnexpectedError struct {
	Message string
}

func (e *UnexpectedError) Error() string {
	return "unexpected error: " + e.Message
}

// SavingError, FetchingError and DeletingError wrap favorites storage
// failures, distinguished by operation rather than cause.
type SavingError struct {
	Message string
}

func (e *SavingError) Error() string {
	return "failed to save favorite city: " + e.Message
}

type FetchingError struct {
	Message string
}

func (e *FetchingError) Error() string {
	return "failed to fetch favorite cities: " + e.Message
}

type DeletingError struct {
	Message string
}

func (e *DeletingError) Error() string {
	return "failed to delete favorite city: " + e.Message
}
