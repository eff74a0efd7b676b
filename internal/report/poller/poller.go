package poller

import (
	"context"
	"errors"
	"time"

	"visibility-srv/internal/model"
	"visibility-srv/pkg/log"
)

// New creates a Poller reading through reader.
func New(reader Reader, l log.Logger, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.MaxDuration == 0 {
		cfg.MaxDuration = DefaultMaxDuration
	}
	if cfg.NewTicker == nil {
		cfg.NewTicker = NewTicker
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Poller{reader: reader, l: l, cfg: cfg}
}

// Poll reads reportID once per tick until the record is terminal, the poll
// expires or ctx is done. Reads never overlap: the next tick is only consumed
// after the previous read returned. onUpdate may be nil.
//
// The returned error is non-nil only for cancellation (ctx.Err()) and for
// permanent read errors; a report that ended in status error yields
// StateFailed with a nil error.
func (p *Poller) Poll(ctx context.Context, reportID string, onUpdate func(Update)) (Result, error) {
	if reportID == "" {
		return Result{State: StateIdle}, ErrEmptyReportID
	}

	ticker := p.cfg.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	start := p.cfg.Now()
	res := Result{ReportID: reportID, State: StatePolling}

	for {
		select {
		case <-ctx.Done():
			return p.cancelled(res, start), ctx.Err()
		case <-ticker.C():
		}

		// A tick and a cancellation can be ready together; cancellation wins.
		if err := ctx.Err(); err != nil {
			return p.cancelled(res, start), err
		}

		res.Elapsed = p.cfg.Now().Sub(start)
		if p.cfg.MaxDuration > 0 && res.Elapsed >= p.cfg.MaxDuration {
			res.State = StateExpired
			res.Message = ExpiredMessage
			p.l.Infof(ctx, "report.poller.Poll: report %s expired after %d reads", reportID, res.Attempts)
			return res, nil
		}

		res.Attempts++
		rpt, err := p.reader.Read(ctx, reportID)
		if err != nil {
			if IsPermanent(err) {
				res.State = StateFailed
				res.Message = FallbackErrorMessage
				return res, errors.Unwrap(err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return p.cancelled(res, start), ctxErr
			}
			p.l.Warnf(ctx, "report.poller.Poll: read %d of report %s failed: %v", res.Attempts, reportID, err)
			continue
		}
		if err := ctx.Err(); err != nil {
			return p.cancelled(res, start), err
		}

		switch rpt.Status {
		case model.StatusCompleted:
			res.State = StateDone
			res.Report = rpt
			return res, nil
		case model.StatusError:
			res.State = StateFailed
			res.Report = rpt
			res.Message = rpt.ErrorMessage
			if res.Message == "" {
				res.Message = FallbackErrorMessage
			}
			return res, nil
		}

		if onUpdate != nil {
			onUpdate(Update{
				ReportID: reportID,
				State:    StatePolling,
				Status:   rpt.Status,
				Attempt:  res.Attempts,
				Elapsed:  res.Elapsed,
			})
		}
	}
}

func (p *Poller) cancelled(res Result, start time.Time) Result {
	res.State = StateCancelled
	res.Elapsed = p.cfg.Now().Sub(start)
	return res
}
