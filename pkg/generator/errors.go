package generator

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed   = errors.New("generator: request failed")
	ErrMissingReportID = errors.New("generator: response has no report_id")
	ErrInvalidResponse = errors.New("generator: invalid response body")
)

// StatusError is returned for a non-2xx reply. Message is the backend's own text, if any.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generator: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("generator: unexpected status %d: %s", e.StatusCode, e.Message)
}
