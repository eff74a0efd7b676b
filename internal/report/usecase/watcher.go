package usecase

import (
	"context"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	"visibility-srv/internal/report/poller"
)

type implWatcher struct {
	uc      *implUseCase
	sc      model.Scope
	session *poller.Session
}

// NewWatcher returns a Watcher bound to the caller's scope. Watches are bounded by the poll max duration.
func (uc *implUseCase) NewWatcher(sc model.Scope) report.Watcher {
	return &implWatcher{
		uc:      uc,
		sc:      sc,
		session: poller.NewSession(uc.newPoller(sc, uc.config.MaxDuration)),
	}
}

func (w *implWatcher) Begin(ctx context.Context, reportID string, onUpdate func(report.PollUpdate), onDone func(report.ReportOutput, error)) {
	if reportID == "" {
		w.session.Cancel()
		if onDone != nil {
			onDone(report.ReportOutput{}, report.ErrReportIDRequired)
		}
		return
	}

	last := model.StatusPending
	w.session.Begin(ctx, reportID,
		func(u poller.Update) {
			last = u.Status
			if onUpdate != nil {
				onUpdate(report.PollUpdate{
					ReportID: u.ReportID,
					State:    string(u.State),
					Status:   u.Status,
					Attempt:  u.Attempt,
					Elapsed:  u.Elapsed,
				})
			}
		},
		func(res poller.Result, err error) {
			if onDone == nil {
				return
			}
			onDone(w.uc.pollOutput(ctx, w.sc, reportID, last, res, err))
		},
	)
}

func (w *implWatcher) Cancel() {
	w.session.Cancel()
}

func (w *implWatcher) ActiveID() string {
	return w.session.ActiveID()
}
