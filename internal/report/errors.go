package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportNotCompleted  = errors.New("report is not completed")
	ErrReportIDRequired    = errors.New("report_id is required")
	ErrAccessDenied        = errors.New("access to report denied")
	ErrShareExpired        = errors.New("share link expired")
	ErrSubmitFailed        = errors.New("report submission failed")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidExportFormat = errors.New("invalid export format")
	ErrExportFailed        = errors.New("report export failed")
)

const (
	// DefaultSubmitMessage is shown when the backend gives no reason of its own.
	DefaultSubmitMessage = "We couldn't start your report. Please try again."
)

// FieldError is a validation failure attached to one input field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is returned when input validation fails. No network call was made.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Fields returns the errors keyed by field name.
func (e FieldErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, f := range e {
		out[f.Field] = f.Message
	}
	return out
}

// SubmitError carries the single user-facing message of a failed submission.
// It matches ErrSubmitFailed with errors.Is.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

func (e *SubmitError) Is(target error) bool {
	return target == ErrSubmitFailed
}
