package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching derived catalog
// aggregates (category lists, stats). The catalog itself is immutable,
// so cached aggregates never need invalidation beyond their TTL.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
