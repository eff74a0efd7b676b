package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"visibility-srv/internal/report/repository"
)

const reportColumns = `id, user_id, share_token, share_expires_at, status, error_message,
	website_url, business_name, business_type, location,
	overall_score, platform_scores, content_gaps, competitor_analysis, recommendations,
	processing_time_ms, total_cost, query_count, view_count,
	created_at, updated_at, completed_at`

const (
	queryGetReportByID         = `SELECT ` + reportColumns + ` FROM ai_visibility_reports WHERE id = $1`
	queryGetReportByShareToken = `SELECT ` + reportColumns + ` FROM ai_visibility_reports WHERE share_token = $1`
)

// buildListReportsWhere - Build the shared WHERE clause for list and count.
func (r *implRepository) buildListReportsWhere(opts repository.ListReportsOptions) (string, []any) {
	conds := []string{}
	args := []any{}

	if opts.UserID != "" {
		args = append(args, opts.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(opts.Statuses) > 0 {
		args = append(args, pq.Array(opts.Statuses))
		conds = append(conds, fmt.Sprintf("lower(status) = ANY($%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildListReportsQuery - Build query for ListReports.
func (r *implRepository) buildListReportsQuery(opts repository.ListReportsOptions) (string, []any) {
	where, args := r.buildListReportsWhere(opts)

	// Sorting: most recent first
	q := `SELECT ` + reportColumns + ` FROM ai_visibility_reports` + where + ` ORDER BY created_at DESC`

	// Pagination
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return q, args
}

// buildCountReportsQuery - Build count query for ListReports (without limit/offset).
func (r *implRepository) buildCountReportsQuery(opts repository.ListReportsOptions) (string, []any) {
	where, args := r.buildListReportsWhere(opts)
	return `SELECT count(*) FROM ai_visibility_reports` + where, args
}
