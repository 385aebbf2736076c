package interfaces

import (
	"context"
	"time"
)

//go:generate moq -out ../mock/cache_store_mock.go -pkg mock . CacheStore

// CacheStore keeps encoded values for a limited time. An expired entry is reported as a miss.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
