package usecase

import (
	"time"

	"visibility-srv/internal/report"
	"visibility-srv/internal/report/poller"
	"visibility-srv/internal/report/repository"
	"visibility-srv/pkg/generator"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/minio"
)

const (
	defaultExportBucket  = "visibility-exports"
	defaultPresignExpiry = 30 * time.Minute
	defaultWaitTimeout   = 55 * time.Second
)

// Config holds polling and export settings.
type Config struct {
	ExportBucket  string
	PresignExpiry time.Duration
	PollInterval  time.Duration
	// MaxDuration bounds a websocket watch. Zero takes the default, below zero never expires.
	MaxDuration time.Duration
	// WaitTimeout bounds one long-poll request.
	WaitTimeout time.Duration
	// NewTicker overrides the poll ticker.
	NewTicker poller.TickerFunc
}

type implUseCase struct {
	repo      repository.PostgresRepository
	cache     repository.CacheRepository
	generator generator.IGenerator
	producer  report.Producer
	minio     minio.MinIO
	l         log.Logger
	config    Config
	now       func() time.Time
}

// New creates a new report UseCase implementation.
// cache, producer and minioClient may be nil: reads then go straight to
// Postgres, no submission events are published and Export fails.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	gen generator.IGenerator,
	producer report.Producer,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) report.UseCase {
	return newUseCase(repo, cache, gen, producer, minioClient, l, cfg)
}

func newUseCase(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	gen generator.IGenerator,
	producer report.Producer,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) *implUseCase {
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = defaultPresignExpiry
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = poller.DefaultInterval
	}
	if cfg.MaxDuration == 0 {
		cfg.MaxDuration = poller.DefaultMaxDuration
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = defaultWaitTimeout
	}

	return &implUseCase{
		repo:      repo,
		cache:     cache,
		generator: gen,
		producer:  producer,
		minio:     minioClient,
		l:         l,
		config:    cfg,
		now:       time.Now,
	}
}
