package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visibility-srv/config"
	pkgJWT "visibility-srv/pkg/jwt"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/minio"

	"github.com/gin-gonic/gin"
)

type nopRedis struct{}

func (nopRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error { return nil }
func (nopRedis) Get(ctx context.Context, key string) (string, error)                   { return "", nil }
func (nopRedis) Delete(ctx context.Context, keys ...string) error                      { return nil }
func (nopRedis) Exists(ctx context.Context, key string) (bool, error)                  { return false, nil }
func (nopRedis) Close() error                                                          { return nil }
func (nopRedis) Ping(ctx context.Context) error                                        { return nil }

type stubMinIO struct{ minio.MinIO }

type stubProducer struct{}

func (stubProducer) Publish(key, value []byte) error { return nil }
func (stubProducer) Close() error                    { return nil }
func (stubProducer) HealthCheck() error              { return nil }

func TestDependencyChecks(t *testing.T) {
	names := func(checks []dependencyCheck) []string {
		var out []string
		for _, c := range checks {
			out = append(out, c.name)
		}
		return out
	}

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "required only", cfg: Config{}, want: []string{"database", "redis"}},
		{name: "with minio", cfg: Config{MinIO: stubMinIO{}}, want: []string{"database", "redis", "minio"}},
		{name: "with minio and kafka", cfg: Config{MinIO: stubMinIO{}, KafkaProducer: stubProducer{}}, want: []string{"database", "redis", "minio", "kafka"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(dependencyChecks(tt.cfg))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("dependencyChecks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadyCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		checks   []dependencyCheck
		wantCode int
		wantData map[string]string
	}{
		{
			name: "all connected",
			checks: []dependencyCheck{
				{name: "database", required: true, check: ok},
				{name: "redis", required: true, check: ok},
				{name: "minio", check: ok},
			},
			wantCode: http.StatusOK,
			wantData: map[string]string{"database": "connected", "redis": "connected", "minio": "connected", "kafka": "disabled"},
		},
		{
			name: "optional minio down",
			checks: []dependencyCheck{
				{name: "database", required: true, check: ok},
				{name: "minio", check: down},
			},
			wantCode: http.StatusOK,
			wantData: map[string]string{"database": "connected", "minio": "degraded", "status": "ready"},
		},
		{
			name: "redis down",
			checks: []dependencyCheck{
				{name: "database", required: true, check: ok},
				{name: "redis", required: true, check: down},
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := HTTPServer{l: log.NewNopLogger(), gin: gin.New(), checks: tt.checks}
			srv.gin.GET("/ready", srv.readyCheck)

			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantData == nil {
				return
			}

			var body struct {
				Data map[string]string `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body: %v", err)
			}
			for k, v := range tt.wantData {
				if body.Data[k] != v {
					t.Errorf("data[%q] = %q, want %q", k, body.Data[k], v)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	jwtManager, err := pkgJWT.New(pkgJWT.Config{SecretKey: strings.Repeat("k", 32)})
	if err != nil {
		t.Fatalf("jwt.New: %v", err)
	}
	base := func() HTTPServer {
		return HTTPServer{
			l:           log.NewNopLogger(),
			mode:        gin.TestMode,
			port:        8080,
			postgresDB:  &sql.DB{},
			config:      &config.Config{},
			jwtManager:  jwtManager,
			redisClient: nopRedis{},
		}
	}

	if srv := base(); srv.validate() != nil {
		t.Fatalf("validate() on complete server = %v, want nil", srv.validate())
	}

	tests := []struct {
		name   string
		mutate func(*HTTPServer)
	}{
		{name: "no logger", mutate: func(s *HTTPServer) { s.l = nil }},
		{name: "no mode", mutate: func(s *HTTPServer) { s.mode = "" }},
		{name: "no port", mutate: func(s *HTTPServer) { s.port = 0 }},
		{name: "no postgres", mutate: func(s *HTTPServer) { s.postgresDB = nil }},
		{name: "no config", mutate: func(s *HTTPServer) { s.config = nil }},
		{name: "no jwt manager", mutate: func(s *HTTPServer) { s.jwtManager = nil }},
		{name: "no redis", mutate: func(s *HTTPServer) { s.redisClient = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := base()
			tt.mutate(&srv)
			if err := srv.validate(); err == nil {
				t.Error("validate() error = nil, want error")
			}
		})
	}
}

func TestLiveCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := HTTPServer{l: log.NewNopLogger(), gin: gin.New()}
	srv.gin.GET("/live", srv.liveCheck)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body.Data["service"] != ServiceName || body.Data["status"] != "alive" {
		t.Errorf("data = %v", body.Data)
	}
}
