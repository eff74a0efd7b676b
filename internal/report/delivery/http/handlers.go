package http

import (
	"visibility-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a report request
// @Description Validate the website and competitors, then start an AI visibility report for the signed-in user
// @Tags Report
// @Accept json
// @Produce json
// @Param body body submitReq true "Report request"
// @Success 200 {object} submitResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSubmitRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Submit: processSubmitRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Submit: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSubmitResp(o))
}

// @Summary Submit a free report request
// @Description Same as Submit but never attaches the caller identity
// @Tags Report
// @Accept json
// @Produce json
// @Param body body submitReq true "Report request"
// @Success 200 {object} submitResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/free-reports [post]
func (h *handler) SubmitFree(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSubmitFreeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SubmitFree: processSubmitFreeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SubmitFree: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSubmitResp(o))
}

// @Summary List my reports
// @Description Return the signed-in user's reports, newest first
// @Tags Report
// @Produce json
// @Param status query string false "pending, processing, completed or error"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listReportsResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListReports(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// @Summary Get report
// @Description Read the report once; the rendered report is included when it is completed
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: processGetReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Wait for report
// @Description Long-poll the report until it completes, fails or the wait times out (poll_state expired)
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id}/wait [get]
func (h *handler) Wait(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWaitRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Wait: processWaitRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Wait(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Wait: usecase Wait failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Export report
// @Description Render a completed report as markdown or json, store it and return a download link
// @Tags Report
// @Accept json
// @Produce json
// @Param report_id path string true "Report ID"
// @Param body body exportReq false "Export options"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/{report_id}/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}

// @Summary Resolve share link
// @Description Public read-only view of a completed report; cost and timing are never included
// @Tags Share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} reportResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /share/{token} [get]
func (h *handler) ResolveShare(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processShareRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ResolveShare: processShareRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ResolveShare(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.ResolveShare: usecase ResolveShare failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}
