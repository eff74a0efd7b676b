package kafka

import (
	"time"
)

// ReportSubmittedMessage is the payload of report.submitted.
type ReportSubmittedMessage struct {
	EventType       string    `json:"event_type"`
	ReportID        string    `json:"report_id"`
	UserID          string    `json:"user_id,omitempty"`
	WebsiteURL      string    `json:"website_url"`
	BusinessName    string    `json:"business_name,omitempty"`
	CompetitorCount int       `json:"competitor_count"`
	Anonymous       bool      `json:"anonymous"`
	SubmittedAt     time.Time `json:"submitted_at"`
}
