package http

import (
	"time"

	"visibility-srv/internal/report"
	"visibility-srv/internal/report/progress"
	"visibility-srv/internal/report/render"
	"visibility-srv/pkg/paginator"
	"visibility-srv/pkg/response"
)

type submitReq struct {
	WebsiteURL         string   `json:"website_url"`
	BusinessName       string   `json:"business_name,omitempty"`
	BusinessType       string   `json:"business_type,omitempty"`
	Location           string   `json:"location,omitempty"`
	CompetitorWebsites []string `json:"competitor_websites,omitempty"`
}

func (r submitReq) toInput() report.SubmitInput {
	return report.SubmitInput{
		WebsiteURL:         r.WebsiteURL,
		BusinessName:       r.BusinessName,
		BusinessType:       r.BusinessType,
		Location:           r.Location,
		CompetitorWebsites: r.CompetitorWebsites,
	}
}

type getReportReq struct {
	ReportID string
}

func (r getReportReq) toInput() report.GetReportInput {
	return report.GetReportInput{
		ReportID: r.ReportID,
	}
}

type waitReq struct {
	ReportID string
}

func (r waitReq) toInput() report.WaitInput {
	return report.WaitInput{
		ReportID: r.ReportID,
	}
}

type listReportsReq struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int64  `form:"limit"`
}

func (r listReportsReq) toInput() report.ListReportsInput {
	return report.ListReportsInput{
		Status: r.Status,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type exportReq struct {
	ReportID string `json:"-"`
	Format   string `json:"format,omitempty"`
}

func (r exportReq) toInput() report.ExportInput {
	return report.ExportInput{
		ReportID: r.ReportID,
		Format:   r.Format,
	}
}

type shareReq struct {
	Token string
}

func (r shareReq) toInput() report.ResolveShareInput {
	return report.ResolveShareInput{
		Token: r.Token,
	}
}

type submitResp struct {
	ReportID   string `json:"report_id"`
	Status     string `json:"status"`
	WebsiteURL string `json:"website_url"`
	Message    string `json:"message,omitempty"`
}

func (h *handler) newSubmitResp(o report.SubmitOutput) submitResp {
	return submitResp{
		ReportID:   o.ReportID,
		Status:     string(o.Status),
		WebsiteURL: o.WebsiteURL,
		Message:    o.Message,
	}
}

type reportResp struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
	WebsiteURL   string             `json:"website_url"`
	BusinessName string             `json:"business_name,omitempty"`
	CreatedAt    *response.DateTime `json:"created_at,omitempty"`
	CompletedAt  *response.DateTime `json:"completed_at,omitempty"`
	PollState    string             `json:"poll_state,omitempty"`
	Message      string             `json:"message,omitempty"`
	Report       *render.View       `json:"report,omitempty"`
}

func (h *handler) newReportResp(o report.ReportOutput) reportResp {
	return reportResp{
		ID:           o.ID,
		Status:       string(o.Status),
		ErrorMessage: o.ErrorMessage,
		WebsiteURL:   o.WebsiteURL,
		BusinessName: o.BusinessName,
		CreatedAt:    dateTime(o.CreatedAt),
		CompletedAt:  dateTimePtr(o.CompletedAt),
		PollState:    o.PollState,
		Message:      o.Message,
		Report:       o.View,
	}
}

type reportSummaryResp struct {
	ID           string             `json:"id"`
	WebsiteURL   string             `json:"website_url"`
	BusinessName string             `json:"business_name,omitempty"`
	Status       string             `json:"status"`
	OverallScore *float64           `json:"overall_score,omitempty"`
	Grade        string             `json:"grade,omitempty"`
	CreatedAt    *response.DateTime `json:"created_at,omitempty"`
	CompletedAt  *response.DateTime `json:"completed_at,omitempty"`
}

type listReportsResp struct {
	Reports   []reportSummaryResp         `json:"reports"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListReportsResp(o report.ListReportsOutput) listReportsResp {
	reports := make([]reportSummaryResp, 0, len(o.Reports))
	for _, s := range o.Reports {
		reports = append(reports, reportSummaryResp{
			ID:           s.ID,
			WebsiteURL:   s.WebsiteURL,
			BusinessName: s.BusinessName,
			Status:       string(s.Status),
			OverallScore: s.OverallScore,
			Grade:        s.Grade,
			CreatedAt:    dateTime(s.CreatedAt),
			CompletedAt:  dateTimePtr(s.CompletedAt),
		})
	}
	return listReportsResp{
		Reports:   reports,
		Paginator: o.Pagination.ToResponse(),
	}
}

type exportResp struct {
	DownloadURL string            `json:"download_url"`
	ExpiresAt   response.DateTime `json:"expires_at"`
	FileName    string            `json:"file_name"`
	FileSize    int64             `json:"file_size"`
	Format      string            `json:"format"`
}

func (h *handler) newExportResp(o report.ExportOutput) exportResp {
	return exportResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   response.DateTime(o.ExpiresAt),
		FileName:    o.FileName,
		FileSize:    o.FileSize,
		Format:      o.Format,
	}
}

// Websocket frames.
const (
	frameSnapshot = "snapshot"
	frameStatus   = "status"
	frameProgress = "progress"
	frameResult   = "result"
	frameError    = "error"

	actionWatch  = "watch"
	actionCancel = "cancel"
)

type watchMsg struct {
	Action   string `json:"action"`
	ReportID string `json:"report_id,omitempty"`
}

type watchFrame struct {
	Type     string             `json:"type"`
	ReportID string             `json:"report_id,omitempty"`
	Status   string             `json:"status,omitempty"`
	Attempt  int                `json:"attempt,omitempty"`
	Progress *progress.Snapshot `json:"progress,omitempty"`
	Result   *reportResp        `json:"result,omitempty"`
	Error    string             `json:"error,omitempty"`
}

func (h *handler) newStatusFrame(u report.PollUpdate) watchFrame {
	return watchFrame{
		Type:     frameStatus,
		ReportID: u.ReportID,
		Status:   string(u.Status),
		Attempt:  u.Attempt,
	}
}

func (h *handler) newResultFrame(frameType string, o report.ReportOutput) watchFrame {
	resp := h.newReportResp(o)
	return watchFrame{
		Type:     frameType,
		ReportID: o.ID,
		Status:   string(o.Status),
		Result:   &resp,
	}
}

func newProgressFrame(reportID string, elapsed time.Duration) watchFrame {
	snap := progress.At(elapsed)
	return watchFrame{
		Type:     frameProgress,
		ReportID: reportID,
		Progress: &snap,
	}
}

func dateTime(t time.Time) *response.DateTime {
	if t.IsZero() {
		return nil
	}
	d := response.DateTime(t)
	return &d
}

func dateTimePtr(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	return dateTime(*t)
}
