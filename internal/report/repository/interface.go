package repository

import (
	"context"

	"visibility-srv/internal/model"
)

// ReportRepository reads ai_visibility_reports. The backend owns every write.
//
//go:generate mockery --name ReportRepository
type ReportRepository interface {
	GetReportByID(ctx context.Context, id string) (*model.Report, error)
	GetReportByShareToken(ctx context.Context, token string) (*model.Report, error)
	ListReports(ctx context.Context, opts ListReportsOptions) ([]*model.Report, int64, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}

// CacheRepository keeps terminal records, which never change again.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetReport(ctx context.Context, id string) (*model.Report, error)
	SaveReport(ctx context.Context, rpt *model.Report) error
	GetReportIDByShareToken(ctx context.Context, token string) (string, error)
	SaveShareToken(ctx context.Context, token, reportID string) error
}
