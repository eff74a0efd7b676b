package http

import (
	"visibility-srv/internal/model"
	"visibility-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitRequest(c *gin.Context) (submitReq, model.Scope, error) {
	var req submitReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processSubmitRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

// processSubmitFreeRequest binds the body and always returns the anonymous scope.
func (h *handler) processSubmitFreeRequest(c *gin.Context) (submitReq, model.Scope, error) {
	req, _, err := h.processSubmitRequest(c)
	return req, model.Scope{}, err
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	var req listReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errInvalidBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) (getReportReq, model.Scope, error) {
	req := getReportReq{
		ReportID: c.Param("report_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processWaitRequest(c *gin.Context) (waitReq, model.Scope, error) {
	req := waitReq{
		ReportID: c.Param("report_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processExportRequest(c *gin.Context) (exportReq, model.Scope, error) {
	var req exportReq

	ctx := c.Request.Context()
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "report.delivery.http.processExportRequest: ShouldBindJSON failed: %v", err)
			return req, model.Scope{}, errInvalidBody
		}
	}
	if f := c.Query("format"); f != "" {
		req.Format = f
	}
	req.ReportID = c.Param("report_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processShareRequest(c *gin.Context) (shareReq, error) {
	return shareReq{Token: c.Param("token")}, nil
}
