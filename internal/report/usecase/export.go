package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	"visibility-srv/internal/report/render"
	"visibility-srv/pkg/minio"
)

const exportPrefix = "exports"

type exportEncoding struct {
	ext         string
	contentType string
}

var exportEncodings = map[string]exportEncoding{
	report.ExportFormatMarkdown: {ext: "md", contentType: "text/markdown; charset=utf-8"},
	report.ExportFormatJSON:     {ext: "json", contentType: "application/json"},
}

// Export renders a completed report, uploads it and returns a presigned download link.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input report.ExportInput) (report.ExportOutput, error) {
	id := strings.TrimSpace(input.ReportID)
	if id == "" {
		return report.ExportOutput{}, report.ErrReportIDRequired
	}
	format := normalizeExportFormat(input.Format)
	enc, ok := exportEncodings[format]
	if !ok {
		return report.ExportOutput{}, report.ErrInvalidExportFormat
	}

	rpt, err := uc.loadOwned(ctx, sc, id)
	if err != nil {
		return report.ExportOutput{}, err
	}
	if rpt.Status != model.StatusCompleted {
		return report.ExportOutput{}, report.ErrReportNotCompleted
	}
	if uc.minio == nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Export storage is not configured")
		return report.ExportOutput{}, report.ErrExportFailed
	}

	view := render.Render(rpt, render.Options{ShowMetadata: showMetadata(sc, rpt)})
	body, err := encodeExport(format, view)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to encode report %s: %v", id, err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	fileName := fmt.Sprintf("ai-visibility-%s.%s", rpt.ID, enc.ext)
	objectName := fmt.Sprintf("%s/%s.%s", exportPrefix, rpt.ID, enc.ext)

	info, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.ExportBucket,
		ObjectName:   objectName,
		OriginalName: fileName,
		Reader:       bytes.NewReader(body),
		Size:         int64(len(body)),
		ContentType:  enc.contentType,
		Metadata:     map[string]string{"report-id": rpt.ID, "format": format},
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to upload report %s: %v", id, err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName:  uc.config.ExportBucket,
		ObjectName:  objectName,
		Expiry:      uc.config.PresignExpiry,
		Disposition: minio.DispositionAttachment,
		FileName:    fileName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to generate presigned URL: %v", err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	return report.ExportOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   presigned.ExpiresAt,
		FileName:    fileName,
		FileSize:    info.Size,
		Format:      format,
	}, nil
}

func normalizeExportFormat(raw string) string {
	f := strings.ToLower(strings.TrimSpace(raw))
	switch f {
	case "", "md":
		return report.ExportFormatMarkdown
	}
	return f
}

func encodeExport(format string, view render.View) ([]byte, error) {
	if format == report.ExportFormatJSON {
		return json.MarshalIndent(view, "", "  ")
	}
	return []byte(render.Markdown(view)), nil
}
