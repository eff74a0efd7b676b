package usecase

import (
	"context"
	"errors"
	"strings"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	"visibility-srv/internal/report/render"
	"visibility-srv/internal/report/repository"
	"visibility-srv/pkg/paginator"
	"visibility-srv/pkg/util"
)

// GetReport does one read and returns the record as the caller may see it.
func (uc *implUseCase) GetReport(ctx context.Context, sc model.Scope, input report.GetReportInput) (report.ReportOutput, error) {
	id := strings.TrimSpace(input.ReportID)
	if id == "" {
		return report.ReportOutput{}, report.ErrReportIDRequired
	}

	rpt, err := uc.loadOwned(ctx, sc, id)
	if err != nil {
		return report.ReportOutput{}, err
	}
	return uc.toOutput(sc, rpt), nil
}

// ListReports returns one page of the caller's report history, newest first.
func (uc *implUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListReportsInput) (report.ListReportsOutput, error) {
	if sc.IsAnonymous() {
		return report.ListReportsOutput{}, report.ErrAccessDenied
	}

	opts := repository.ListReportsOptions{UserID: sc.UserID}
	if input.Status != "" {
		status := model.Status(strings.ToLower(strings.TrimSpace(input.Status)))
		if !status.IsValid() {
			return report.ListReportsOutput{}, report.ErrInvalidStatusFilter
		}
		opts.Statuses = model.RawStatuses(status)
	}

	input.PaginateQuery.Adjust()
	opts.Limit = int(input.PaginateQuery.Limit)
	opts.Offset = int(input.PaginateQuery.Offset())

	rpts, total, err := uc.repo.ListReports(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: Failed to list reports: %v", err)
		return report.ListReportsOutput{}, err
	}

	summaries := util.MapSlice(rpts, toSummary)

	return report.ListReportsOutput{
		Reports:    summaries,
		Pagination: paginator.New(input.PaginateQuery, total, int64(len(summaries))),
	}, nil
}

// loadReport reads through the cache. Terminal records are cached after a Postgres read.
func (uc *implUseCase) loadReport(ctx context.Context, id string) (*model.Report, error) {
	rpt, _, err := uc.readReport(ctx, id)
	return rpt, err
}

// readReport is loadReport that also reports whether the record came from the cache.
func (uc *implUseCase) readReport(ctx context.Context, id string) (*model.Report, bool, error) {
	if uc.cache != nil {
		rpt, err := uc.cache.GetReport(ctx, id)
		if err == nil {
			return rpt, true, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "report.usecase.loadReport: Cache read failed for %s: %v", id, err)
		}
	}

	rpt, err := uc.readFromRepo(ctx, id)
	if err != nil {
		return nil, false, err
	}
	uc.cacheReport(ctx, rpt)
	return rpt, false, nil
}

func (uc *implUseCase) readFromRepo(ctx context.Context, id string) (*model.Report, error) {
	rpt, err := uc.repo.GetReportByID(ctx, id)
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, report.ErrReportNotFound
	}
	return rpt, err
}

// loadOwned is loadReport plus the ownership check. The owner sees view
// counts and share state, which change after completion, so a cached copy is
// replaced by a Postgres read for them.
func (uc *implUseCase) loadOwned(ctx context.Context, sc model.Scope, id string) (*model.Report, error) {
	rpt, cached, err := uc.readReport(ctx, id)
	if err == nil && cached && showMetadata(sc, rpt) {
		rpt, err = uc.readFromRepo(ctx, id)
	}
	if err != nil {
		if !errors.Is(err, report.ErrReportNotFound) {
			uc.l.Errorf(ctx, "report.usecase.loadOwned: Failed to read report %s: %v", id, err)
		}
		return nil, err
	}
	if !canRead(sc, rpt) {
		uc.l.Warnf(ctx, "report.usecase.loadOwned: User %q denied access to report %s", sc.UserID, id)
		return nil, report.ErrAccessDenied
	}
	return rpt, nil
}

// cacheReport caches terminal records without the view count, which keeps changing.
func (uc *implUseCase) cacheReport(ctx context.Context, rpt *model.Report) {
	if uc.cache == nil || !rpt.Status.IsTerminal() {
		return
	}
	cp := *rpt
	cp.Metadata.ViewCount = nil
	if err := uc.cache.SaveReport(ctx, &cp); err != nil {
		uc.l.Warnf(ctx, "report.usecase.cacheReport: Failed to cache report %s: %v", rpt.ID, err)
	}
}

// canRead allows anyone with the id to read an unowned report; owned reports need their owner.
func canRead(sc model.Scope, rpt *model.Report) bool {
	return rpt.UserID == "" || rpt.UserID == sc.UserID
}

// showMetadata is true only for the authenticated owner.
func showMetadata(sc model.Scope, rpt *model.Report) bool {
	return !sc.IsAnonymous() && rpt.UserID == sc.UserID
}

func (uc *implUseCase) toOutput(sc model.Scope, rpt *model.Report) report.ReportOutput {
	return buildOutput(rpt, render.Options{ShowMetadata: showMetadata(sc, rpt)})
}

func buildOutput(rpt *model.Report, opts render.Options) report.ReportOutput {
	out := report.ReportOutput{
		ID:           rpt.ID,
		Status:       rpt.Status,
		ErrorMessage: rpt.ErrorMessage,
		WebsiteURL:   rpt.WebsiteURL,
		BusinessName: rpt.BusinessName,
		CreatedAt:    rpt.CreatedAt,
		CompletedAt:  rpt.CompletedAt,
	}
	if rpt.Status == model.StatusCompleted {
		v := render.Render(rpt, opts)
		out.View = &v
	}
	return out
}

func toSummary(rpt *model.Report) *report.ReportSummary {
	if rpt == nil {
		return nil
	}
	s := &report.ReportSummary{
		ID:           rpt.ID,
		WebsiteURL:   rpt.WebsiteURL,
		BusinessName: rpt.BusinessName,
		Status:       rpt.Status,
		CreatedAt:    rpt.CreatedAt,
		CompletedAt:  rpt.CompletedAt,
	}
	if rpt.Status == model.StatusCompleted && rpt.Payload.OverallScore != nil {
		s.OverallScore = rpt.Payload.OverallScore
		s.Grade = render.Grade(*rpt.Payload.OverallScore)
	}
	return s
}
