package staticmap

import (
	"fmt"
	"strings"
)

// HTTPError is returned when the map service answers with a non-200 status.
type HTTPError struct {
	Status     string
	Body       []byte
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("map HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("map HTTP %d: %s", e.StatusCode, body)
}

// RequestError is returned for a request that fails validation.
// No network call is made for such requests.
type RequestError struct {
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return "invalid map request: " + e.Err.Error()
}

// Unwrap returns the validation error.
func (e *RequestError) Unwrap() error {
	return e.Err
}
