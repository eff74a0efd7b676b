package report

import (
	"context"

	"visibility-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)
	GetReport(ctx context.Context, sc model.Scope, input GetReportInput) (ReportOutput, error)
	ListReports(ctx context.Context, sc model.Scope, input ListReportsInput) (ListReportsOutput, error)
	Wait(ctx context.Context, sc model.Scope, input WaitInput) (ReportOutput, error)
	NewWatcher(sc model.Scope) Watcher
	ResolveShare(ctx context.Context, input ResolveShareInput) (ReportOutput, error)
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}

// Watcher follows at most one report at a time. Begin replaces the current
// watch; callbacks of a replaced or cancelled watch are never invoked again.
// Callbacks must not call back into the Watcher.
type Watcher interface {
	Begin(ctx context.Context, reportID string, onUpdate func(PollUpdate), onDone func(ReportOutput, error))
	Cancel()
	ActiveID() string
}

// Producer publishes report lifecycle events.
type Producer interface {
	PublishReportSubmitted(ctx context.Context, msg ReportSubmittedMessage) error
}
