package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"visibility-srv/internal/middleware"
	"visibility-srv/internal/report"
	reportHTTP "visibility-srv/internal/report/delivery/http"
	reportProducer "visibility-srv/internal/report/delivery/kafka/producer"
	reportPostgre "visibility-srv/internal/report/repository/postgre"
	reportRedis "visibility-srv/internal/report/repository/redis"
	reportUsecase "visibility-srv/internal/report/usecase"
	"visibility-srv/pkg/generator"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, api, share *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := srv.config

	repo := reportPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := reportRedis.New(srv.redisClient, srv.l, reportRedis.Config{
		ReportTTL: cfg.Cache.ReportTTL,
		ShareTTL:  cfg.Cache.ShareTTL,
	})

	gen := generator.New(generator.Config{
		BaseURL: cfg.Generator.BaseURL,
		Timeout: cfg.Generator.Timeout,
	})

	var producer report.Producer
	if srv.kafkaProducer != nil {
		producer = reportProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := reportUsecase.New(repo, cacheRepo, gen, producer, srv.minioClient, srv.l, reportUsecase.Config{
		ExportBucket:  cfg.MinIO.Bucket,
		PresignExpiry: cfg.MinIO.PresignExpiry,
		PollInterval:  cfg.Poller.Interval,
		MaxDuration:   cfg.Poller.MaxDuration,
		WaitTimeout:   cfg.Poller.WaitTimeout,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord, reportHTTP.Config{
		ProgressInterval: cfg.Poller.ProgressInterval,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
	})
	handler.RegisterRoutes(api, mw)
	handler.RegisterShareRoutes(share)

	srv.l.Infof(ctx, "Report domain registered (generator %s)", cfg.Generator.BaseURL)
	return nil
}
