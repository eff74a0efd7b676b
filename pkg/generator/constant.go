package generator

import "time"

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "https://ai-visibility-backend.up.railway.app"
	// DefaultTimeout bounds one generate call. Generation itself is asynchronous.
	DefaultTimeout = 30 * time.Second

	PathGenerateReport = "/api/generate-report"
)
