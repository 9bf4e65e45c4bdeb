package flywheel

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Flywheel API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("flywheel: %s", http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("flywheel: %s (%d)", e.Message, e.StatusCode)
}

// IsNotFound checks if an error indicates the looked-up path does not
// exist. This is the only remote failure the provisioning code treats as
// expected; everything else aborts the run.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
