package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	"visibility-srv/pkg/generator"
)

const defaultScheme = "https://"

// Submit validates the request locally and starts generation on the backend.
// Validation failures are returned as report.FieldErrors before any network call.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input report.SubmitInput) (report.SubmitOutput, error) {
	req, err := buildGenerateRequest(sc, input)
	if err != nil {
		return report.SubmitOutput{}, err
	}

	resp, err := uc.generator.GenerateReport(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Submit: Failed to start report for %s: %v", req.WebsiteURL, err)
		return report.SubmitOutput{}, &report.SubmitError{Message: submitMessage(err), Err: err}
	}

	uc.publishSubmitted(ctx, sc, req, resp.ReportID)

	status := model.StatusPending
	if resp.Status != "" {
		status = model.ParseStatus(resp.Status)
	}
	return report.SubmitOutput{
		ReportID:   resp.ReportID,
		Status:     status,
		WebsiteURL: req.WebsiteURL,
		Message:    resp.Message,
	}, nil
}

// NormalizeURL trims raw and prefixes https:// when it has no scheme.
// The result is an absolute http(s) URL with a host. NormalizeURL(NormalizeURL(x)) == NormalizeURL(x).
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.New("is required")
	}
	if !hasScheme(s) {
		s = defaultScheme + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", errors.New("is not a valid URL")
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", errors.New("must use http or https")
	}
	if u.Hostname() == "" || strings.ContainsAny(u.Host, " \t") {
		return "", errors.New("must include a host")
	}
	return s, nil
}

// hasScheme reports whether s starts with "<scheme>://".
func hasScheme(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for j, r := range s[:i] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func buildGenerateRequest(sc model.Scope, input report.SubmitInput) (generator.GenerateRequest, error) {
	var errs report.FieldErrors

	website, err := NormalizeURL(input.WebsiteURL)
	if err != nil {
		errs = append(errs, report.FieldError{Field: "website_url", Message: err.Error()})
	}

	var competitors []string
	if len(input.CompetitorWebsites) > report.MaxCompetitors {
		errs = append(errs, report.FieldError{
			Field:   "competitor_websites",
			Message: fmt.Sprintf("at most %d competitors are allowed", report.MaxCompetitors),
		})
	} else {
		for i, raw := range input.CompetitorWebsites {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			c, err := NormalizeURL(raw)
			if err != nil {
				errs = append(errs, report.FieldError{Field: fmt.Sprintf("competitor_websites[%d]", i), Message: err.Error()})
				continue
			}
			competitors = append(competitors, c)
		}
	}

	if len(errs) > 0 {
		return generator.GenerateRequest{}, errs
	}

	return generator.GenerateRequest{
		WebsiteURL:         website,
		UserID:             sc.UserID,
		UserName:           sc.Username,
		UserEmail:          sc.Email,
		BusinessName:       strings.TrimSpace(input.BusinessName),
		BusinessType:       strings.TrimSpace(input.BusinessType),
		Location:           strings.TrimSpace(input.Location),
		CompetitorWebsites: competitors,
	}, nil
}

// submitMessage picks the one message shown to the user for a failed submission.
func submitMessage(err error) string {
	var se *generator.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return report.DefaultSubmitMessage
}

func (uc *implUseCase) publishSubmitted(ctx context.Context, sc model.Scope, req generator.GenerateRequest, reportID string) {
	if uc.producer == nil {
		return
	}
	msg := report.ReportSubmittedMessage{
		ReportID:        reportID,
		UserID:          sc.UserID,
		WebsiteURL:      req.WebsiteURL,
		BusinessName:    req.BusinessName,
		CompetitorCount: len(req.CompetitorWebsites),
		Anonymous:       sc.IsAnonymous(),
		SubmittedAt:     uc.now(),
	}
	if err := uc.producer.PublishReportSubmitted(ctx, msg); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishSubmitted: Failed to publish event for report %s: %v", reportID, err)
	}
}
