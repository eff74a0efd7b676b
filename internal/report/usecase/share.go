package usecase

import (
	"context"
	"errors"
	"strings"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	"visibility-srv/internal/report/render"
	"visibility-srv/internal/report/repository"
)

// ResolveShare reads a report by its public token, once, with metadata hidden.
// An expired link is reported before the report status so nothing about the report leaks.
func (uc *implUseCase) ResolveShare(ctx context.Context, input report.ResolveShareInput) (report.ReportOutput, error) {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return report.ReportOutput{}, report.ErrReportNotFound
	}

	rpt, err := uc.loadShared(ctx, token)
	if err != nil {
		return report.ReportOutput{}, err
	}

	if rpt.ShareExpired(uc.now()) {
		return report.ReportOutput{}, report.ErrShareExpired
	}
	if rpt.Status != model.StatusCompleted {
		return report.ReportOutput{}, report.ErrReportNotCompleted
	}

	return buildOutput(rpt, render.Options{ShowMetadata: false}), nil
}

func (uc *implUseCase) loadShared(ctx context.Context, token string) (*model.Report, error) {
	if uc.cache != nil {
		id, err := uc.cache.GetReportIDByShareToken(ctx, token)
		switch {
		case err == nil:
			rpt, err := uc.loadReport(ctx, id)
			// A cached record still has to carry the token.
			if err == nil && rpt.ShareToken == token {
				return rpt, nil
			}
		case !errors.Is(err, repository.ErrCacheMiss):
			uc.l.Warnf(ctx, "report.usecase.loadShared: Cache read failed: %v", err)
		}
	}

	rpt, err := uc.repo.GetReportByShareToken(ctx, token)
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.loadShared: Failed to read shared report: %v", err)
		return nil, err
	}

	if uc.cache != nil && rpt.Status.IsTerminal() {
		if err := uc.cache.SaveShareToken(ctx, token, rpt.ID); err != nil {
			uc.l.Warnf(ctx, "report.usecase.loadShared: Failed to cache token for %s: %v", rpt.ID, err)
		}
	}
	uc.cacheReport(ctx, rpt)
	return rpt, nil
}
