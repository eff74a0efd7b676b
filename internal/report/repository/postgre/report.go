package postgre

import (
	"context"
	"database/sql"
	"errors"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// pqInvalidTextRepresentation is raised when a value cannot be cast to the column type.
const pqInvalidTextRepresentation = "22P02"

type rowScanner interface {
	Scan(dest ...any) error
}

// GetReportByID - Get report by primary key.
// Ids that are not UUIDs cannot exist and are not found without a query.
func (r *implRepository) GetReportByID(ctx context.Context, id string) (*model.Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrReportNotFound
	}

	rpt, err := r.scanReport(ctx, r.db.QueryRowContext(ctx, queryGetReportByID, id))
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByID: Failed to get report: %v", err)
		return nil, err
	}
	return rpt, nil
}

// GetReportByShareToken - Get report by its public share token.
func (r *implRepository) GetReportByShareToken(ctx context.Context, token string) (*model.Report, error) {
	rpt, err := r.scanReport(ctx, r.db.QueryRowContext(ctx, queryGetReportByShareToken, token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByShareToken: Failed to get report: %v", err)
		return nil, err
	}
	return rpt, nil
}

// ListReports - List reports with filters and pagination. Also returns the total match count.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]*model.Report, int64, error) {
	countQ, countArgs := r.buildCountReportsQuery(opts)
	var total int64
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to count reports: %v", err)
		return nil, 0, err
	}
	if total == 0 {
		return []*model.Report{}, 0, nil
	}

	q, args := r.buildListReportsQuery(opts)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to list reports: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]*model.Report, 0, opts.Limit)
	for rows.Next() {
		rpt, err := r.scanReport(ctx, rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to scan report: %v", err)
			return nil, 0, err
		}
		result = append(result, rpt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to iterate reports: %v", err)
		return nil, 0, err
	}

	return result, total, nil
}

// scanReport reads one row. Payload columns that fail to decode are logged
// and left empty; the record itself is still returned.
func (r *implRepository) scanReport(ctx context.Context, row rowScanner) (*model.Report, error) {
	var db model.ReportRow
	err := row.Scan(
		&db.ID, &db.UserID, &db.ShareToken, &db.ShareExpiresAt, &db.Status, &db.ErrorMessage,
		&db.WebsiteURL, &db.BusinessName, &db.BusinessType, &db.Location,
		&db.OverallScore, &db.PlatformScores, &db.ContentGaps, &db.CompetitorAnalysis, &db.Recommendations,
		&db.ProcessingTimeMs, &db.TotalCost, &db.QueryCount, &db.ViewCount,
		&db.CreatedAt, &db.UpdatedAt, &db.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	rpt, decodeErr := model.NewReportFromDB(&db)
	if decodeErr != nil {
		r.l.Warnf(ctx, "report.repository.postgre.scanReport: report %s has undecodable payload: %v", db.ID, decodeErr)
	}
	return rpt, nil
}

func isInvalidText(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqInvalidTextRepresentation
}
