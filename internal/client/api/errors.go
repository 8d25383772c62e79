package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches any 401 response, regardless of endpoint.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable covers transport-level failures: timeout, refused
	// connection, DNS. Callers decide retry policy; none is built in.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is an application-level failure returned by the backend as a non-2xx
// response with a JSON {message} body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
