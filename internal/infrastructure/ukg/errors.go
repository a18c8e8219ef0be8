package ukg

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned when a login response carries neither an
// access_token nor a token field.
var ErrMissingToken = errors.New("login response missing token")

// APIError represents a non-2xx vendor response.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vendor %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}
