package http

import (
	"context"
	"errors"

	"visibility-srv/internal/report"
	pkgErrors "visibility-srv/pkg/errors"
)

var (
	errReportNotFound      = pkgErrors.NewHTTPError(404, "Report not found")
	errReportNotCompleted  = pkgErrors.NewHTTPError(409, "This report is not ready yet")
	errReportIDRequired    = pkgErrors.NewHTTPError(400, "Report ID is required")
	errAccessDenied        = pkgErrors.NewHTTPError(403, "You do not have access to this report")
	errShareExpired        = pkgErrors.NewHTTPError(403, "This share link is no longer available")
	errSubmitFailed        = pkgErrors.NewHTTPError(502, report.DefaultSubmitMessage)
	errInvalidStatusFilter = pkgErrors.NewHTTPError(400, "Invalid status filter")
	errInvalidExportFormat = pkgErrors.NewHTTPError(400, "Export format must be markdown or json")
	errExportFailed        = pkgErrors.NewHTTPError(500, "Failed to export report")
	errRequestCancelled    = pkgErrors.NewHTTPError(499, "Request cancelled")
	errInvalidBody         = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	var fieldErrs report.FieldErrors
	if errors.As(err, &fieldErrs) {
		return pkgErrors.NewValidationError(fieldErrs.Fields())
	}
	var submitErr *report.SubmitError
	if errors.As(err, &submitErr) {
		return errSubmitFailed.WithMessage(submitErr.Message)
	}

	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrReportNotCompleted):
		return errReportNotCompleted
	case errors.Is(err, report.ErrReportIDRequired):
		return errReportIDRequired
	case errors.Is(err, report.ErrAccessDenied):
		return errAccessDenied
	case errors.Is(err, report.ErrShareExpired):
		return errShareExpired
	case errors.Is(err, report.ErrSubmitFailed):
		return errSubmitFailed
	case errors.Is(err, report.ErrInvalidStatusFilter):
		return errInvalidStatusFilter
	case errors.Is(err, report.ErrInvalidExportFormat):
		return errInvalidExportFormat
	case errors.Is(err, report.ErrExportFailed):
		return errExportFailed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errRequestCancelled
	default:
		panic(err)
	}
}
