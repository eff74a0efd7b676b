package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Report backend - generation endpoint
	Generator GeneratorConfig

	// Poller - status polling of generated reports
	Poller PollerConfig

	// PostgreSQL - ai_visibility_reports rows written by the backend
	Postgres PostgresConfig

	// Redis - terminal report cache
	Redis RedisConfig
	Cache CacheConfig

	// MinIO - report exports
	MinIO MinIOConfig

	// Kafka - report lifecycle events
	Kafka KafkaConfig

	// JWT - Authentication
	JWT    JWTConfig
	Cookie CookieConfig
	CORS   CORSConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// GeneratorConfig is the configuration for the external report backend.
type GeneratorConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PollerConfig controls how report status is polled.
type PollerConfig struct {
	Interval         time.Duration
	MaxDuration      time.Duration
	WaitTimeout      time.Duration
	ProgressInterval time.Duration
}

// KafkaConfig is the configuration for Kafka. Publishing is skipped when Enabled is false.
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig controls how long terminal reports stay in Redis.
type CacheConfig struct {
	ReportTTL time.Duration
	ShareTTL  time.Duration
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Region        string
	Bucket        string
	PresignExpiry time.Duration
}

// CookieConfig names the cookie the session token may be read from.
type CookieConfig struct {
	Name string
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig is used to verify session tokens.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load reads an optional .env file, then the YAML config, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("visibility-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/visibility/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Generator (GENERATOR_BASE_URL)
	cfg.Generator.BaseURL = strings.TrimSpace(viper.GetString("generator.base_url"))
	cfg.Generator.Timeout = viper.GetDuration("generator.timeout")

	// Poller
	cfg.Poller.Interval = viper.GetDuration("poller.interval")
	cfg.Poller.MaxDuration = viper.GetDuration("poller.max_duration")
	cfg.Poller.WaitTimeout = viper.GetDuration("poller.wait_timeout")
	cfg.Poller.ProgressInterval = viper.GetDuration("poller.progress_interval")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Cache.ReportTTL = viper.GetDuration("cache.report_ttl")
	cfg.Cache.ShareTTL = viper.GetDuration("cache.share_ttl")

	// MinIO - report exports
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.PresignExpiry = viper.GetDuration("minio.presign_expiry")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Generator
	viper.SetDefault("generator.base_url", "https://ai-visibility-backend.up.railway.app")
	viper.SetDefault("generator.timeout", "30s")

	// 2. Poller
	viper.SetDefault("poller.interval", "3s")
	viper.SetDefault("poller.max_duration", "10m")
	viper.SetDefault("poller.wait_timeout", "55s")
	viper.SetDefault("poller.progress_interval", "1s")

	// 3. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// 4. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("cache.report_ttl", "1h")
	viper.SetDefault("cache.share_ttl", "5m")

	// 5. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "visibility-exports")
	viper.SetDefault("minio.presign_expiry", "30m")

	// 6. Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "visibility.report.submitted")

	// JWT
	viper.SetDefault("jwt.issuer", "visibility-auth")
	viper.SetDefault("jwt.audience", []string{"visibility-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	viper.SetDefault("cookie.name", "visibility_session")
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be greater than 0")
	}

	if cfg.Generator.BaseURL == "" {
		return fmt.Errorf("generator.base_url is required")
	}
	if !strings.HasPrefix(cfg.Generator.BaseURL, "http://") && !strings.HasPrefix(cfg.Generator.BaseURL, "https://") {
		return fmt.Errorf("generator.base_url must be an http(s) URL")
	}

	if cfg.Poller.Interval <= 0 {
		return fmt.Errorf("poller.interval must be greater than 0")
	}
	if cfg.Poller.MaxDuration >= 0 && cfg.Poller.MaxDuration < cfg.Poller.Interval {
		return fmt.Errorf("poller.max_duration must not be shorter than poller.interval, or negative to disable expiry")
	}
	if cfg.Poller.WaitTimeout <= 0 {
		return fmt.Errorf("poller.wait_timeout must be greater than 0")
	}
	if cfg.Poller.ProgressInterval <= 0 {
		return fmt.Errorf("poller.progress_interval must be greater than 0")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	if cfg.Cookie.Name == "" {
		return fmt.Errorf("cookie.name is required")
	}

	return nil
}
