package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const searchCachePrefix = "search:hits:"

// CachedSearcher wraps a Searcher with a Redis read-through cache keyed by
// the full query. Cache failures are non-fatal; the wrapped searcher is
// always the source of truth.
type CachedSearcher struct {
	next   Searcher
	client *redis.Client
	ttl    time.Duration
}

func NewCachedSearcher(next Searcher, client *redis.Client, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{next: next, client: client, ttl: ttl}
}

func cacheKey(q Query) string {
	return fmt.Sprintf("%s%s:%d:%s", searchCachePrefix, q.Depth, q.MaxResults, q.Query)
}

func (s *CachedSearcher) Search(ctx context.Context, q Query) ([]models.SearchHit, error) {
	logger := utils.GetLogger()
	key := cacheKey(q)

	data, err := s.client.Get(ctx, key).Result()
	if err == nil {
		var hits []models.SearchHit
		if jsonErr := json.Unmarshal([]byte(data), &hits); jsonErr == nil {
			return hits, nil
		}
		// Corrupt entry; fall through to the live search.
		s.client.Del(ctx, key)
	} else if err != redis.Nil {
		logger.Warn("search cache read failed", zap.Error(err))
	}

	hits, err := s.next.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	if b, jsonErr := json.Marshal(hits); jsonErr == nil {
		if setErr := s.client.Set(ctx, key, b, s.ttl).Err(); setErr != nil {
			logger.Warn("search cache write failed", zap.Error(setErr))
		}
	}
	return hits, nil
}
