package walker

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoToken   = errors.New("no token in response")
	ErrNoReports = errors.New("no reports in response")
)

// StatusError is returned for any non-200 response.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.Code, e.Body)
}

func (e *StatusError) Unauthorized() bool {
	return e.Code == http.StatusUnauthorized
}

// IsUnauthorized reports whether err wraps a 401 response.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Unauthorized()
}
