package usecase

import (
	"context"
	"time"
)

// Cache is the read-through JSON cache in front of hot listings. A nil
// Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const activePostingsCacheKey = "postings:active"
