package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	"visibility-srv/internal/report/poller"
)

// Wait reads the report once and, if it is not terminal yet, polls it until it
// is or until the wait timeout passes.
func (uc *implUseCase) Wait(ctx context.Context, sc model.Scope, input report.WaitInput) (report.ReportOutput, error) {
	id := strings.TrimSpace(input.ReportID)
	if id == "" {
		return report.ReportOutput{}, report.ErrReportIDRequired
	}

	rpt, err := uc.loadOwned(ctx, sc, id)
	if err != nil {
		return report.ReportOutput{}, err
	}
	if rpt.Status.IsTerminal() {
		return uc.terminalOutput(sc, rpt), nil
	}

	p := uc.newPoller(sc, uc.config.WaitTimeout)
	last := rpt.Status
	res, err := p.Poll(ctx, id, func(u poller.Update) {
		last = u.Status
	})
	return uc.pollOutput(ctx, sc, id, last, res, err)
}

func (uc *implUseCase) newPoller(sc model.Scope, maxDuration time.Duration) *poller.Poller {
	return poller.New(uc.pollReader(sc), uc.l, poller.Config{
		Interval:    uc.config.PollInterval,
		MaxDuration: maxDuration,
		NewTicker:   uc.config.NewTicker,
		Now:         uc.now,
	})
}

// pollReader marks not-found and access errors permanent so the poll stops on them.
func (uc *implUseCase) pollReader(sc model.Scope) poller.Reader {
	return poller.ReaderFunc(func(ctx context.Context, id string) (*model.Report, error) {
		rpt, err := uc.loadReport(ctx, id)
		if errors.Is(err, report.ErrReportNotFound) {
			return nil, poller.Permanent(err)
		}
		if err != nil {
			return nil, err
		}
		if !canRead(sc, rpt) {
			return nil, poller.Permanent(report.ErrAccessDenied)
		}
		return rpt, nil
	})
}

// pollOutput converts a poll result. last is the latest status seen before the poll ended.
func (uc *implUseCase) pollOutput(ctx context.Context, sc model.Scope, id string, last model.Status, res poller.Result, err error) (report.ReportOutput, error) {
	switch res.State {
	case poller.StateDone:
		return uc.terminalOutput(sc, res.Report), nil

	case poller.StateFailed:
		if err != nil {
			return report.ReportOutput{}, err
		}
		out := uc.toOutput(sc, res.Report)
		out.ErrorMessage = res.Message
		out.PollState = report.PollStateFailed
		out.Message = res.Message
		return out, nil

	case poller.StateExpired:
		uc.l.Infof(ctx, "report.usecase.pollOutput: Report %s still %s after %s", id, last, res.Elapsed)
		return report.ReportOutput{
			ID:        id,
			Status:    last,
			PollState: report.PollStateExpired,
			Message:   res.Message,
		}, nil
	}

	if err == nil {
		err = context.Canceled
	}
	return report.ReportOutput{}, err
}

func (uc *implUseCase) terminalOutput(sc model.Scope, rpt *model.Report) report.ReportOutput {
	out := uc.toOutput(sc, rpt)
	if rpt.Status == model.StatusCompleted {
		out.PollState = report.PollStateDone
		return out
	}
	msg := rpt.ErrorMessage
	if msg == "" {
		msg = poller.FallbackErrorMessage
	}
	out.ErrorMessage = msg
	out.PollState = report.PollStateFailed
	out.Message = msg
	return out
}
