package memory

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const DefaultSize = 1024

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is an in-memory cache bounded by entry count. The least recently used entry is evicted
// on overflow.
type Store struct {
	entries *lru.Cache[string, entry]
	now     func() time.Time
}

var _ interfaces.CacheStore = (*Store)(nil)

type Option func(*Store)

// WithClock replaces the clock used to decide expiry.
func WithClock(now func() time.Time) Option {
	return func(x *Store) {
		x.now = now
	}
}

// New creates a new in-memory cache store
func New(size int, options ...Option) (*Store, error) {
	if size <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "cache size must be positive", goerr.V("size", size))
	}

	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LRU cache", goerr.V("size", size))
	}

	store := &Store{
		entries: entries,
		now:     time.Now,
	}
	for _, opt := range options {
		opt(store)
	}

	return store, nil
}

func (x *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	// Peek first so that an expired entry is not promoted in the LRU order
	e, ok := x.entries.Peek(key)
	if !ok || !x.now().Before(e.expiresAt) {
		return nil, false, nil
	}

	if e, ok = x.entries.Get(key); !ok {
		return nil, false, nil
	}
	return copyBytes(e.value), true, nil
}

func (x *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	x.entries.Add(key, entry{
		value:     copyBytes(value),
		expiresAt: x.now().Add(ttl),
	})
	return nil
}

// Len returns number of entries including expired ones not evicted yet.
func (x *Store) Len() int {
	return x.entries.Len()
}

func copyBytes(src []byte) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}
