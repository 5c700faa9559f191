package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidResponse marks transport-level failures where no well-formed
// HTTP response was received at all, as opposed to a response with an error
// status.
var ErrInvalidResponse = errors.New("invalid HTTP response")

// HTTPError is a response that arrived with a non-2xx status. Code and
// Message are filled from the server error envelope when the body carried
// one.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	kind := "unknown status"
	switch e.StatusCode {
	case http.StatusBadRequest:
		kind = "bad request"
	case http.StatusUnauthorized:
		kind = "unauthorized"
	case http.StatusForbidden:
		kind = "forbidden"
	case http.StatusNotFound:
		kind = "not found"
	case http.StatusInternalServerError:
		kind = "server error"
	}

	if e.Message != "" {
		return fmt.Sprintf("HTTP %d (%s): %s", e.StatusCode, kind, e.Message)
	}

	return fmt.Sprintf("HTTP %d (%s)", e.StatusCode, kind)
}
