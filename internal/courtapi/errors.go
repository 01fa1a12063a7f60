package courtapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound marks lookups that matched nothing, including 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks requests rejected locally before any network call.
	ErrValidation = errors.New("validation error")
	// ErrTransient marks transport-level failures where no response arrived.
	ErrTransient = errors.New("transient failure")
)

// StatusError reports a non-success response from the backend, carrying the
// status code and a bounded excerpt of the response body for diagnostics.
type StatusError struct {
	Operation string
	Status    int
	Body      string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: backend returned %d", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s: backend returned %d: %s", e.Operation, e.Status, e.Body)
}

// Is maps 404 responses onto ErrNotFound so callers can branch with errors.Is.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
