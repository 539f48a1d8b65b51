package cache

import (
	"context"
	"time"
)

// Store is the key-value collaborator backing the daily article cache.
// Implementations must treat a missing key as (nil, false, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Keys(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
