package httpserver

import (
	"database/sql"
	"errors"

	"visibility-srv/config"
	"visibility-srv/pkg/discord"
	pkgJWT "visibility-srv/pkg/jwt"
	pkgKafka "visibility-srv/pkg/kafka"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/minio"
	pkgRedis "visibility-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Cache, Storage & Events Configuration
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	checks []dependencyCheck
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Cache, Storage & Events Configuration
	RedisClient pkgRedis.IRedis
	// MinIO is optional; without it exports fail.
	MinIO minio.MinIO
	// KafkaProducer is optional; without it no events are published.
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Cache, Storage & Events Configuration
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIO,
		kafkaProducer: cfg.KafkaProducer,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,

		checks: dependencyChecks(cfg),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	return nil
}
