package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newsroom/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// PageCache is a read-through cache for assembled page payloads, keyed by
// logical page identity (e.g. "category_Sports_News"). Entries are never
// invalidated on writes; they expire after the configured TTL, so an
// approve/reject/edit can leave a stale page visible for up to that window.
// A nil client disables caching entirely.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewPageCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *PageCache {
	return &PageCache{client: client, ttl: ttl, log: log}
}

// Connect dials redis from a URL and verifies the connection.
func Connect(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// CategoryKey builds the page-cache key for a category listing page.
func CategoryKey(name, parent string) string {
	return fmt.Sprintf("category_%s_%s", name, parent)
}

// TagKey builds the page-cache key for a tag listing page.
func TagKey(tag, category string, page int) string {
	return fmt.Sprintf("tag_%s_category_%s_page_%d", tag, category, page)
}

// HomeKey is the page-cache key for the home page.
const HomeKey = "homepage"

// Get unmarshals a cached page into dest, reporting whether it was found.
// Cache errors are logged and reported as a miss.
func (p *PageCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if p == nil || p.client == nil {
		return false
	}

	data, err := p.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			p.log.Warn().Err(err).Str("key", key).Msg("page cache read failed")
		}
		metrics.CacheMisses.Inc()
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("page cache entry corrupt")
		metrics.CacheMisses.Inc()
		return false
	}

	metrics.CacheHits.Inc()
	return true
}

// Set stores a page payload for the configured TTL. Failures are logged
// only; caching is never allowed to fail a request.
func (p *PageCache) Set(ctx context.Context, key string, value interface{}) {
	if p == nil || p.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("page cache marshal failed")
		return
	}
	if err := p.client.Set(ctx, key, data, p.ttl).Err(); err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("page cache write failed")
	}
}
