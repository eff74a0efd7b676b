package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"visibility-srv/internal/model"
	repo "visibility-srv/internal/report/repository"
	"visibility-srv/pkg/redis"
)

// GetReport returns a cached terminal record, or repo.ErrCacheMiss.
func (r *implCacheRepository) GetReport(ctx context.Context, id string) (*model.Report, error) {
	data, err := r.redis.Get(ctx, reportCacheKey(id))
	if redis.IsNil(err) {
		return nil, repo.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetReport: Failed to get report from cache: %v", err)
		return nil, err
	}

	var rpt model.Report
	if err := json.Unmarshal([]byte(data), &rpt); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetReport: Failed to unmarshal report from cache: %v", err)
		return nil, err
	}
	return &rpt, nil
}

// SaveReport caches rpt. Non-terminal records are skipped since they still change.
func (r *implCacheRepository) SaveReport(ctx context.Context, rpt *model.Report) error {
	if rpt == nil || !rpt.Status.IsTerminal() {
		return nil
	}

	data, err := json.Marshal(rpt)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveReport: Failed to marshal report: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, reportCacheKey(rpt.ID), string(data), r.cfg.ReportTTL); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveReport: Failed to set report in cache: %v", err)
		return err
	}
	return nil
}

// GetReportIDByShareToken resolves a share token to a report id, or repo.ErrCacheMiss.
func (r *implCacheRepository) GetReportIDByShareToken(ctx context.Context, token string) (string, error) {
	id, err := r.redis.Get(ctx, shareCacheKey(token))
	if redis.IsNil(err) {
		return "", repo.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetReportIDByShareToken: Failed to get token from cache: %v", err)
		return "", err
	}
	return id, nil
}

// SaveShareToken caches the token mapping for a short TTL so revocations are seen quickly.
func (r *implCacheRepository) SaveShareToken(ctx context.Context, token, reportID string) error {
	if err := r.redis.Set(ctx, shareCacheKey(token), reportID, r.cfg.ShareTTL); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveShareToken: Failed to set token in cache: %v", err)
		return err
	}
	return nil
}

func reportCacheKey(id string) string {
	return fmt.Sprintf("visibility:report:%s", id)
}

func shareCacheKey(token string) string {
	return fmt.Sprintf("visibility:share:%s", token)
}
