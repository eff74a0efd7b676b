package model

import "strings"

// Payload is the canonical analysis result of a completed report.
// It is always built by DecodePayload; nothing downstream inspects wire shapes.
type Payload struct {
	OverallScore    *float64         `json:"overall_score,omitempty"`
	PlatformScores  []PlatformScore  `json:"platform_scores,omitempty"`
	ContentGaps     []ContentGap     `json:"content_gaps,omitempty"`
	Competitors     []Competitor     `json:"competitors,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// PlatformScore is the visibility of the business on one AI engine.
type PlatformScore struct {
	Platform       string  `json:"platform"`
	Score          float64 `json:"score"`
	MentionCount   *int    `json:"mention_count,omitempty"`
	KnowledgeLevel string  `json:"knowledge_level,omitempty"`
}

// Severity tags a content gap.
type Severity string

const (
	SeverityCritical    Severity = "critical"
	SeveritySignificant Severity = "significant"
	SeverityModerate    Severity = "moderate"
	SeverityUnknown     Severity = ""
)

// ContentGap is one missing or weak piece of content.
type ContentGap struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
}

// Competitor is one business compared against the target.
type Competitor struct {
	Name           string          `json:"name"`
	Website        string          `json:"website,omitempty"`
	Rank           int             `json:"rank,omitempty"`
	OverallScore   *float64        `json:"overall_score,omitempty"`
	PlatformScores []PlatformScore `json:"platform_scores,omitempty"`
}

// Priority tags a recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityUnknown  Priority = ""
)

// Recommendation is one suggested action.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Impact      string   `json:"impact,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
}

// ParseSeverity accepts the severity spellings seen in gap records.
func ParseSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "critical", "high", "severe":
		return SeverityCritical
	case "significant", "major", "medium":
		return SeveritySignificant
	case "moderate", "minor", "low":
		return SeverityModerate
	}
	return SeverityUnknown
}

// ParsePriority accepts the priority spellings seen in recommendation records.
func ParsePriority(raw string) Priority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "critical", "urgent":
		return PriorityCritical
	case "high":
		return PriorityHigh
	case "medium", "moderate", "med":
		return PriorityMedium
	case "low":
		return PriorityLow
	}
	return PriorityUnknown
}
