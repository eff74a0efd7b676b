package http

import (
	"visibility-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	reports.Use(mw.Auth())
	{
		reports.POST("", h.Submit)
		reports.GET("", h.ListReports)
		reports.GET("/:report_id", h.GetReport)
		reports.GET("/:report_id/wait", h.Wait)
		reports.GET("/:report_id/watch", h.Watch)
		reports.POST("/:report_id/export", h.Export)
	}

	free := r.Group("/free-reports")
	free.Use(mw.OptionalAuth())
	{
		free.POST("", h.SubmitFree)
		free.GET("/:report_id", h.GetReport)
		free.GET("/:report_id/wait", h.Wait)
	}
}

// RegisterShareRoutes mounts the unauthenticated share link resolver.
func (h *handler) RegisterShareRoutes(r *gin.RouterGroup) {
	r.GET("/:token", h.ResolveShare)
}
