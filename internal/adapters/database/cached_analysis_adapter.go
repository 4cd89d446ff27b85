package database

import (
	"context"
	"encoding/json"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/providers"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
)

const (
	analysisCacheKeyPrefix = "analysis:session:"
	analysisCacheTTL       = 15 * 60 // seconds
)

// CachedAnalysisAdapter decorates an AnalysisRepository with a read-through
// cache. Baseline comparisons re-read the same session record on every new
// attempt, which makes stored analyses cache-friendly.
type CachedAnalysisAdapter struct {
	inner repositories.AnalysisRepository
	cache providers.CacheProvider
}

// NewCachedAnalysisAdapter wraps an analysis repository with caching.
func NewCachedAnalysisAdapter(inner repositories.AnalysisRepository, cache providers.CacheProvider) repositories.AnalysisRepository {
	return &CachedAnalysisAdapter{inner: inner, cache: cache}
}

// Save writes through and invalidates the cached record for the session.
func (a *CachedAnalysisAdapter) Save(ctx context.Context, analysis *entities.SessionAnalysis) error {
	if err := a.inner.Save(ctx, analysis); err != nil {
		return err
	}
	_ = a.cache.Delete(ctx, analysisCacheKeyPrefix+analysis.SessionID)
	return nil
}

// GetBySessionID serves from cache when possible.
func (a *CachedAnalysisAdapter) GetBySessionID(ctx context.Context, sessionID string) (*entities.SessionAnalysis, error) {
	key := analysisCacheKeyPrefix + sessionID

	if data, err := a.cache.Get(ctx, key); err == nil {
		var cached entities.SessionAnalysis
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		// Corrupt entry: drop it and fall through to the source of truth.
		_ = a.cache.Delete(ctx, key)
	}

	analysis, err := a.inner.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(analysis); err == nil {
		_ = a.cache.Set(ctx, key, data, analysisCacheTTL)
	}
	return analysis, nil
}

// List always hits the source of truth; pages are not worth caching.
func (a *CachedAnalysisAdapter) List(ctx context.Context, limit, offset int) ([]*entities.SessionAnalysis, error) {
	return a.inner.List(ctx, limit, offset)
}
