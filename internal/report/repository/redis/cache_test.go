package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"visibility-srv/internal/model"
	repo "visibility-srv/internal/report/repository"
	"visibility-srv/pkg/log"
)

type memRedis struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.data[key] = value.(string)
	m.ttls[key] = ttl
	return nil
}

func (m *memRedis) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (m *memRedis) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRedis) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *memRedis) Close() error                   { return nil }
func (m *memRedis) Ping(ctx context.Context) error { return nil }

func TestCache_Report(t *testing.T) {
	ctx := context.Background()
	mem := newMemRedis()
	c := New(mem, log.NewNopLogger(), Config{ReportTTL: time.Hour})

	if _, err := c.GetReport(ctx, "r1"); !errors.Is(err, repo.ErrCacheMiss) {
		t.Fatalf("GetReport() error = %v, want ErrCacheMiss", err)
	}

	if err := c.SaveReport(ctx, &model.Report{ID: "r1", Status: model.StatusProcessing}); err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if len(mem.data) != 0 {
		t.Fatal("non-terminal report was cached")
	}

	score := 81.0
	in := &model.Report{ID: "r1", Status: model.StatusCompleted, Payload: model.Payload{OverallScore: &score}}
	if err := c.SaveReport(ctx, in); err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if got := mem.ttls[reportCacheKey("r1")]; got != time.Hour {
		t.Errorf("ttl = %v, want 1h", got)
	}

	got, err := c.GetReport(ctx, "r1")
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if got.Status != model.StatusCompleted || got.Payload.OverallScore == nil || *got.Payload.OverallScore != 81 {
		t.Errorf("GetReport() = %+v", got)
	}
}

func TestCache_ShareToken(t *testing.T) {
	ctx := context.Background()
	mem := newMemRedis()
	c := New(mem, log.NewNopLogger(), Config{})

	if _, err := c.GetReportIDByShareToken(ctx, "tok"); !errors.Is(err, repo.ErrCacheMiss) {
		t.Fatalf("GetReportIDByShareToken() error = %v, want ErrCacheMiss", err)
	}
	if err := c.SaveShareToken(ctx, "tok", "r9"); err != nil {
		t.Fatalf("SaveShareToken() error = %v", err)
	}
	if got := mem.ttls[shareCacheKey("tok")]; got != DefaultShareTTL {
		t.Errorf("ttl = %v, want %v", got, DefaultShareTTL)
	}
	id, err := c.GetReportIDByShareToken(ctx, "tok")
	if err != nil || id != "r9" {
		t.Errorf("GetReportIDByShareToken() = %q, %v; want r9, nil", id, err)
	}
}
