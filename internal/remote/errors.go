package remote

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse is returned when a payload matches none of the known shapes.
var ErrInvalidResponse = errors.New("invalid response from server")

// HTTPError is a non-2xx reply, or a 2xx reply carrying an explicit "error" field.
type HTTPError struct {
	Code int
	Body string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned HTTP %d", e.Code)
	}
	return fmt.Sprintf("server returned HTTP %d: %s", e.Code, e.Body)
}

// NetworkError wraps transport failures: DNS, refused connections, timeouts.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: network error: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }
