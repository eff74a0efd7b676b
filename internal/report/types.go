package report

import (
	"time"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report/render"
	"visibility-srv/pkg/paginator"
)

const (
	// MaxCompetitors is the most competitor websites one request may carry.
	MaxCompetitors = 5

	ExportFormatMarkdown = "markdown"
	ExportFormatJSON     = "json"

	PollStateDone    = "done"
	PollStateFailed  = "failed"
	PollStateExpired = "expired"
)

type SubmitInput struct {
	WebsiteURL         string
	BusinessName       string
	BusinessType       string
	Location           string
	CompetitorWebsites []string
}

type SubmitOutput struct {
	ReportID   string
	Status     model.Status
	WebsiteURL string
	Message    string
}

type GetReportInput struct {
	ReportID string
}

type WaitInput struct {
	ReportID string
}

type ListReportsInput struct {
	Status string
	paginator.PaginateQuery
}

type ListReportsOutput struct {
	Reports    []ReportSummary
	Pagination paginator.Paginator
}

// ReportSummary is one row of the history list.
type ReportSummary struct {
	ID           string
	WebsiteURL   string
	BusinessName string
	Status       model.Status
	OverallScore *float64
	Grade        string
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

type ResolveShareInput struct {
	Token string
}

type ExportInput struct {
	ReportID string
	Format   string
}

type ExportOutput struct {
	DownloadURL string
	ExpiresAt   time.Time
	FileName    string
	FileSize    int64
	Format      string
}

// ReportOutput is a report as seen by one caller.
// View is set only for completed reports. PollState and Message are set by Wait and watchers.
type ReportOutput struct {
	ID           string
	Status       model.Status
	ErrorMessage string
	WebsiteURL   string
	BusinessName string
	CreatedAt    time.Time
	CompletedAt  *time.Time
	PollState    string
	Message      string
	View         *render.View
}

// PollUpdate is emitted after every non-terminal read.
type PollUpdate struct {
	ReportID string
	State    string
	Status   model.Status
	Attempt  int
	Elapsed  time.Duration
}

// ReportSubmittedMessage is published once the backend accepted a request.
type ReportSubmittedMessage struct {
	ReportID        string
	UserID          string
	WebsiteURL      string
	BusinessName    string
	CompetitorCount int
	Anonymous       bool
	SubmittedAt     time.Time
}
