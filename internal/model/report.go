package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Report is one row of ai_visibility_reports in canonical form.
// The backend owns every write; the service only reads.
type Report struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id,omitempty"`
	ShareToken     string     `json:"share_token,omitempty"`
	ShareExpiresAt *time.Time `json:"share_expires_at,omitempty"`

	Status       Status `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`

	WebsiteURL   string `json:"website_url"`
	BusinessName string `json:"business_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Location     string `json:"location,omitempty"`

	Payload  Payload  `json:"payload"`
	Metadata Metadata `json:"metadata"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Metadata is the cost and timing information recorded by the backend.
// Each field is nil when the backend did not record it.
type Metadata struct {
	ProcessingTimeMs *int64   `json:"processing_time_ms,omitempty"`
	CostUSD          *float64 `json:"cost_usd,omitempty"`
	QueryCount       *int     `json:"query_count,omitempty"`
	ViewCount        *int     `json:"view_count,omitempty"`
}

// IsEmpty reports whether no metadata was recorded.
func (m Metadata) IsEmpty() bool {
	return m.ProcessingTimeMs == nil && m.CostUSD == nil && m.QueryCount == nil && m.ViewCount == nil
}

// ShareExpired reports whether the share link stopped being valid at now.
func (r *Report) ShareExpired(now time.Time) bool {
	return r.ShareExpiresAt != nil && !now.Before(*r.ShareExpiresAt)
}

// ReportRow mirrors the ai_visibility_reports columns as scanned from Postgres.
type ReportRow struct {
	ID                 string
	UserID             null.String
	ShareToken         null.String
	ShareExpiresAt     null.Time
	Status             string
	ErrorMessage       null.String
	WebsiteURL         string
	BusinessName       null.String
	BusinessType       null.String
	Location           null.String
	OverallScore       null.Float64
	PlatformScores     null.JSON
	ContentGaps        null.JSON
	CompetitorAnalysis null.JSON
	Recommendations    null.JSON
	ProcessingTimeMs   null.Int64
	TotalCost          null.Float64
	QueryCount         null.Int
	ViewCount          null.Int
	CreatedAt          time.Time
	UpdatedAt          null.Time
	CompletedAt        null.Time
}

// NewReportFromDB converts a scanned row into a Report.
// For a non-nil row the Report is always returned; a non-nil error lists
// payload columns that could not be decoded and were left empty.
func NewReportFromDB(db *ReportRow) (*Report, error) {
	if db == nil {
		return nil, nil
	}

	rpt := &Report{
		ID:           db.ID,
		UserID:       db.UserID.String,
		ShareToken:   db.ShareToken.String,
		Status:       ParseStatus(db.Status),
		ErrorMessage: db.ErrorMessage.String,
		WebsiteURL:   db.WebsiteURL,
		BusinessName: db.BusinessName.String,
		BusinessType: db.BusinessType.String,
		Location:     db.Location.String,
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.CreatedAt,
	}

	// Handle nullable time fields
	if db.ShareExpiresAt.Valid {
		t := db.ShareExpiresAt.Time
		rpt.ShareExpiresAt = &t
	}
	if db.UpdatedAt.Valid {
		rpt.UpdatedAt = db.UpdatedAt.Time
	}
	if db.CompletedAt.Valid {
		t := db.CompletedAt.Time
		rpt.CompletedAt = &t
	}

	// Handle nullable numeric fields
	if db.ProcessingTimeMs.Valid {
		v := db.ProcessingTimeMs.Int64
		rpt.Metadata.ProcessingTimeMs = &v
	}
	if db.TotalCost.Valid && IsFinite(db.TotalCost.Float64) {
		v := db.TotalCost.Float64
		rpt.Metadata.CostUSD = &v
	}
	if db.QueryCount.Valid {
		v := db.QueryCount.Int
		rpt.Metadata.QueryCount = &v
	}
	if db.ViewCount.Valid {
		v := db.ViewCount.Int
		rpt.Metadata.ViewCount = &v
	}

	raw := RawPayload{
		PlatformScores:     jsonBytes(db.PlatformScores),
		ContentGaps:        jsonBytes(db.ContentGaps),
		CompetitorAnalysis: jsonBytes(db.CompetitorAnalysis),
		Recommendations:    jsonBytes(db.Recommendations),
	}
	if db.OverallScore.Valid && IsFinite(db.OverallScore.Float64) {
		v := db.OverallScore.Float64
		raw.OverallScore = &v
	}

	payload, err := DecodePayload(raw)
	rpt.Payload = payload
	return rpt, err
}

func jsonBytes(j null.JSON) []byte {
	if !j.Valid {
		return nil
	}
	return j.JSON
}
