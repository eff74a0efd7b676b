package generator

import (
	"time"

	pkghttp "visibility-srv/pkg/http"
)

// Config holds configuration for the generator client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient pkghttp.IClient
}

// GenerateRequest is the body of POST /api/generate-report.
type GenerateRequest struct {
	WebsiteURL         string   `json:"website_url"`
	UserID             string   `json:"user_id,omitempty"`
	UserName           string   `json:"user_name,omitempty"`
	UserEmail          string   `json:"user_email,omitempty"`
	BusinessName       string   `json:"business_name,omitempty"`
	BusinessType       string   `json:"business_type,omitempty"`
	Location           string   `json:"location,omitempty"`
	CompetitorWebsites []string `json:"competitor_websites,omitempty"`
}

// GenerateResponse is the accepted reply. Only ReportID is required.
type GenerateResponse struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status,omitempty"`
	Message  string `json:"message,omitempty"`
}

// errorBody covers the error shapes the backend answers with.
type errorBody struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// generatorImpl implements IGenerator.
type generatorImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
