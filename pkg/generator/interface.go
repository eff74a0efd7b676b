package generator

import (
	"context"
	"strings"

	pkghttp "visibility-srv/pkg/http"
)

// IGenerator starts report generation on the external backend.
// Implementations are safe for concurrent use.
type IGenerator interface {
	GenerateReport(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// New creates a new generator client. Returns the interface.
// Requests are never retried: a failed submission is resubmitted by the user.
func New(cfg Config) IGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.NoRetryConfig(timeout))
	}
	return &generatorImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}
