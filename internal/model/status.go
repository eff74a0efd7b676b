package model

import "strings"

// Status is the canonical report lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// statusAliases maps every vocabulary the backend has written onto the canonical enum.
var statusAliases = map[string]Status{
	"pending":     StatusPending,
	"queued":      StatusPending,
	"processing":  StatusProcessing,
	"generating":  StatusProcessing,
	"running":     StatusProcessing,
	"in_progress": StatusProcessing,
	"completed":   StatusCompleted,
	"complete":    StatusCompleted,
	"done":        StatusCompleted,
	"success":     StatusCompleted,
	"error":       StatusError,
	"failed":      StatusError,
	"failure":     StatusError,
}

// ParseStatus maps a raw status onto the canonical enum. Unknown values are pending.
func ParseStatus(raw string) Status {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	if s, ok := statusAliases[key]; ok {
		return s
	}
	return StatusPending
}

// RawStatuses returns the raw values that map onto s.
func RawStatuses(s Status) []string {
	var out []string
	for raw, canonical := range statusAliases {
		if canonical == s {
			out = append(out, raw)
		}
	}
	return out
}

// IsTerminal reports whether the record can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusError:
		return true
	}
	return false
}
