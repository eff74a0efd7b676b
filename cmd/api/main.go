package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visibility-srv/config"
	configKafka "visibility-srv/config/kafka"
	configMinIO "visibility-srv/config/minio"
	configPostgre "visibility-srv/config/postgre"
	configRedis "visibility-srv/config/redis"
	_ "visibility-srv/docs" // Import swagger docs
	"visibility-srv/internal/httpserver"
	"visibility-srv/pkg/discord"
	pkgJWT "visibility-srv/pkg/jwt"
	pkgKafka "visibility-srv/pkg/kafka"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/minio"
)

// @title       AI Visibility Report API
// @description Submit AI visibility reports, follow their progress and share the results.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name visibility_session
// @description Session token stored in an HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads .env, then the YAML file, then environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize MinIO (optional, report exports)
	var minioClient minio.MinIO
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = configMinIO.Connect(ctx, &cfg.MinIO)
		if err != nil {
			logger.Warnf(ctx, "MinIO unavailable, exports disabled: %v", err)
			minioClient = nil
		} else {
			defer configMinIO.Disconnect()
			logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
		}
	}

	// 8. Initialize Kafka producer (optional, report events)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka unavailable, report events disabled: %v", err)
			kafkaProducer = nil
		} else {
			defer configKafka.Disconnect()
			logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
		}
	}

	// 9. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized (issuer %q)", cfg.JWT.Issuer)

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Cache, Storage & Events Configuration
		RedisClient:   redisClient,
		MinIO:         minioClient,
		KafkaProducer: kafkaProducer,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown logs the first shutdown signal. httpserver.Run drains connections.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Infof(context.Background(), "Shutdown signal received: %v", sig)
	}()
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (pkgJWT.IManager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
