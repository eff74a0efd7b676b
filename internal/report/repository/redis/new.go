package redis

import (
	"time"

	repo "visibility-srv/internal/report/repository"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/redis"
)

const (
	DefaultReportTTL = time.Hour
	DefaultShareTTL  = 5 * time.Minute
)

type Config struct {
	ReportTTL time.Duration
	ShareTTL  time.Duration
}

type implCacheRepository struct {
	redis redis.IRedis
	l     log.Logger
	cfg   Config
}

// New creates a new CacheRepository backed by Redis.
func New(redis redis.IRedis, l log.Logger, cfg Config) repo.CacheRepository {
	if cfg.ReportTTL <= 0 {
		cfg.ReportTTL = DefaultReportTTL
	}
	if cfg.ShareTTL <= 0 {
		cfg.ShareTTL = DefaultShareTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		cfg:   cfg,
	}
}
