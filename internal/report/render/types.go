package render

import "visibility-srv/internal/model"

// Options controls what a View exposes.
type Options struct {
	// ShowMetadata exposes cost and timing figures. Share views never set it.
	ShowMetadata bool
}

// View is the read-only projection of a completed report.
type View struct {
	ReportID     string `json:"report_id"`
	WebsiteURL   string `json:"website_url"`
	BusinessName string `json:"business_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Location     string `json:"location,omitempty"`

	OverallScore *float64 `json:"overall_score,omitempty"`
	Grade        string   `json:"grade,omitempty"`

	Platforms       []PlatformView         `json:"platforms,omitempty"`
	GapGroups       []GapGroup             `json:"gap_groups,omitempty"`
	Competitors     []CompetitorView       `json:"competitors,omitempty"`
	Recommendations []model.Recommendation `json:"recommendations,omitempty"`

	// Metadata is nil unless Options.ShowMetadata is set and something was recorded.
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

type PlatformView struct {
	Platform       string  `json:"platform"`
	Label          string  `json:"label"`
	Score          float64 `json:"score"`
	Grade          string  `json:"grade"`
	MentionCount   *int    `json:"mention_count,omitempty"`
	KnowledgeLevel string  `json:"knowledge_level,omitempty"`
}

// GapGroup holds every gap of one severity.
type GapGroup struct {
	Severity model.Severity     `json:"severity"`
	Label    string             `json:"label"`
	Gaps     []model.ContentGap `json:"gaps"`
}

type CompetitorView struct {
	Name         string         `json:"name"`
	Website      string         `json:"website,omitempty"`
	Rank         int            `json:"rank,omitempty"`
	OverallScore *float64       `json:"overall_score,omitempty"`
	Grade        string         `json:"grade,omitempty"`
	Platforms    []PlatformView `json:"platforms,omitempty"`
}
