package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateReport issues exactly one POST and returns the new report id.
func (c *generatorImpl) GenerateReport(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := c.baseURL + PathGenerateReport

	body, statusCode, err := c.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if statusCode < 200 || statusCode > 299 {
		return nil, &StatusError{StatusCode: statusCode, Message: errorMessage(body)}
	}

	var resp GenerateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	resp.ReportID = strings.TrimSpace(resp.ReportID)
	if resp.ReportID == "" {
		return nil, ErrMissingReportID
	}

	return &resp, nil
}

func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	for _, s := range []string{eb.Error, eb.Detail, eb.Message} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
