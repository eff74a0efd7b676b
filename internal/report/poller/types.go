package poller

import (
	"context"
	"time"

	"visibility-srv/internal/model"
	"visibility-srv/pkg/log"
)

// State is the lifecycle of one poll.
type State string

const (
	StateIdle      State = "idle"
	StatePolling   State = "polling"
	StateDone      State = "done"
	StateFailed    State = "failed"
	StateExpired   State = "expired"
	StateCancelled State = "cancelled"
)

const (
	// FallbackErrorMessage is surfaced when a failed report carries no message.
	FallbackErrorMessage = "Report generation failed. Please try again."
	// ExpiredMessage is surfaced when polling gives up before a terminal status.
	ExpiredMessage = "Your report is still processing. Check back later."

	DefaultInterval    = 3 * time.Second
	DefaultMaxDuration = 10 * time.Minute
)

// Reader loads the current record for a report id.
// Errors wrapped with Permanent end the poll; any other error is treated as transient.
type Reader interface {
	Read(ctx context.Context, reportID string) (*model.Report, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context, reportID string) (*model.Report, error)

func (f ReaderFunc) Read(ctx context.Context, reportID string) (*model.Report, error) {
	return f(ctx, reportID)
}

// Update is emitted after every non-terminal read.
type Update struct {
	ReportID string
	State    State
	Status   model.Status
	Attempt  int
	Elapsed  time.Duration
}

// Result is the outcome of a poll. Report is set for StateDone and StateFailed
// when the record was read.
type Result struct {
	ReportID string
	State    State
	Report   *model.Report
	Message  string
	Attempts int
	Elapsed  time.Duration
}

// Config controls one Poller. Zero fields take defaults.
// A MaxDuration below zero disables expiry.
type Config struct {
	Interval    time.Duration
	MaxDuration time.Duration
	NewTicker   TickerFunc
	Now         func() time.Time
}

// Poller polls one report at a time per Poll call. It is safe for concurrent use.
type Poller struct {
	reader Reader
	l      log.Logger
	cfg    Config
}
