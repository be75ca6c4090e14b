package directory

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
	"github.com/redis/go-redis/v9"
)

const (
	industriesCacheKey   = "companies:industries"
	searchCacheKeyPrefix = "companies:search:"
)

// searchCacheKey is case-folded because matching is case-insensitive. The
// fields are JSON encoded so separators inside a filter cannot collide.
func searchCacheKey(search company.CompanySearch) string {
	data, _ := json.Marshal([3]string{
		strings.ToLower(search.Keyword),
		strings.ToLower(search.Location),
		strings.ToLower(search.Industry),
	})
	return searchCacheKeyPrefix + string(data)
}

// cachedStrings serves key from Redis when possible and otherwise loads it once
// per key across concurrent callers, writing the result back with the
// configured TTL. Cache failures fall through to load.
func (s *DirectoryServiceImpl) cachedStrings(ctx context.Context, key string, load func(ctx context.Context) ([]string, error)) ([]string, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var values []string
			if json.Unmarshal([]byte(cached), &values) == nil && values != nil {
				return values, nil
			}
		case !errors.Is(err, redis.Nil):
			slog.Warn("Cache read failed", "key", key, "error", err)
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// shared by every caller waiting on key, so one cancellation must not fail the rest
		ctx := context.WithoutCancel(ctx)

		values, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(values); err == nil {
				if err := s.rdb.Set(ctx, key, string(data), s.cfg.CacheTTL).Err(); err != nil {
					slog.Warn("Cache write failed", "key", key, "error", err)
				}
			}
		}
		return values, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}
