// Package redis caches catalog reads in Redis with a TTL. Cache problems
// are soft failures: reads fall through to the wrapped repository and the
// error is only logged and counted.
package redis

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerpath-labs/career-compass/internal/adapter/observability"
	"github.com/careerpath-labs/career-compass/internal/domain"
)

const (
	careersKey = "catalog:careers"
	coursesKey = "catalog:courses"
)

// CareerCache decorates a CareerRepository with Redis caching.
type CareerCache struct {
	Inner domain.CareerRepository
	RDB   *redis.Client
	TTL   time.Duration
}

// NewCareerCache constructs a CareerCache.
func NewCareerCache(inner domain.CareerRepository, rdb *redis.Client, ttl time.Duration) *CareerCache {
	return &CareerCache{Inner: inner, RDB: rdb, TTL: ttl}
}

// List serves the career catalog from cache when possible.
func (c *CareerCache) List(ctx domain.Context) ([]domain.Career, error) {
	var cached []domain.Career
	if hit := getCached(ctx, c.RDB, careersKey, "careers", &cached); hit {
		return cached, nil
	}
	out, err := c.Inner.List(ctx)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.RDB, careersKey, "careers", out, c.TTL)
	return out, nil
}

// CourseCache decorates a CourseRepository with Redis caching.
type CourseCache struct {
	Inner domain.CourseRepository
	RDB   *redis.Client
	TTL   time.Duration
}

// NewCourseCache constructs a CourseCache.
func NewCourseCache(inner domain.CourseRepository, rdb *redis.Client, ttl time.Duration) *CourseCache {
	return &CourseCache{Inner: inner, RDB: rdb, TTL: ttl}
}

// List serves the course catalog from cache when possible.
func (c *CourseCache) List(ctx domain.Context) ([]domain.Course, error) {
	var cached []domain.Course
	if hit := getCached(ctx, c.RDB, coursesKey, "courses", &cached); hit {
		return cached, nil
	}
	out, err := c.Inner.List(ctx)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.RDB, coursesKey, "courses", out, c.TTL)
	return out, nil
}

// Invalidate drops both catalog keys; call after seeding.
func Invalidate(ctx domain.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, careersKey, coursesKey).Err(); err != nil {
		slog.Warn("catalog cache invalidate failed", slog.Any("error", err))
	}
}

func getCached(ctx domain.Context, rdb *redis.Client, key, entity string, dst any) bool {
	if rdb == nil {
		return false
	}
	b, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", slog.String("key", key), slog.Any("error", err))
			observability.CatalogCacheOpsTotal.WithLabelValues(entity, "error").Inc()
			return false
		}
		observability.CatalogCacheOpsTotal.WithLabelValues(entity, "miss").Inc()
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		slog.Warn("catalog cache decode failed", slog.String("key", key), slog.Any("error", err))
		observability.CatalogCacheOpsTotal.WithLabelValues(entity, "error").Inc()
		return false
	}
	observability.CatalogCacheOpsTotal.WithLabelValues(entity, "hit").Inc()
	return true
}

func setCached(ctx domain.Context, rdb *redis.Client, key, entity string, v any, ttl time.Duration) {
	if rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", slog.String("key", key), slog.Any("error", err))
		observability.CatalogCacheOpsTotal.WithLabelValues(entity, "error").Inc()
	}
}
