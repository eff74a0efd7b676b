package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{BaseURL: "https://ai-visibility-backend.up.railway.app"},
		Poller: PollerConfig{
			Interval:         3 * time.Second,
			MaxDuration:      10 * time.Minute,
			WaitTimeout:      55 * time.Second,
			ProgressInterval: time.Second,
		},
		Postgres: PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "postgres"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
		MinIO:    MinIOConfig{Endpoint: "localhost:9000", Bucket: "visibility-exports"},
		JWT:      JWTConfig{SecretKey: strings.Repeat("k", 32), TTL: 3600},
		Cookie:   CookieConfig{Name: "visibility_session"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"short secret", func(c *Config) { c.JWT.SecretKey = "short" }, "jwt.secret_key"},
		{"generator not http", func(c *Config) { c.Generator.BaseURL = "ftp://x" }, "generator.base_url"},
		{"zero interval", func(c *Config) { c.Poller.Interval = 0 }, "poller.interval"},
		{"max below interval", func(c *Config) { c.Poller.MaxDuration = time.Second }, "poller.max_duration"},
		{"zero max", func(c *Config) { c.Poller.MaxDuration = 0 }, "poller.max_duration"},
		{"negative max disables expiry", func(c *Config) { c.Poller.MaxDuration = -1 }, ""},
		{"kafka enabled without topic", func(c *Config) {
			c.Kafka = KafkaConfig{Enabled: true, Brokers: []string{"localhost:9092"}}
		}, "kafka.topic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error mismatch: got %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
