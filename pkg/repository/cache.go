package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// GetOrCompute returns the value cached under key if it has not expired. Otherwise compute is
// called and its result is stored for ttl. A failed compute is never cached.
//
// Values are stored JSON encoded and the returned value is always decoded from the encoded
// form, so a cache hit and the original computation give identical results.
func GetOrCompute[T any](ctx context.Context, store interfaces.CacheStore, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var resp T
	logger := logging.From(ctx).With(slog.String("cache_key", key))

	raw, found, err := store.Get(ctx, key)
	switch {
	case err != nil:
		logger.Warn("failed to read cache, fallback to compute", slog.Any("error", err))
	case found:
		if err := json.Unmarshal(raw, &resp); err == nil {
			logger.Debug("cache hit")
			return resp, nil
		} else {
			logger.Warn("broken cache entry, fallback to compute", slog.Any("error", err))
		}
	}

	value, err := compute(ctx)
	if err != nil {
		return resp, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return resp, goerr.Wrap(err, "failed to encode cache value", goerr.V("key", key))
	}

	if ttl > 0 {
		if err := store.Set(ctx, key, encoded, ttl); err != nil {
			logger.Warn("failed to write cache", slog.Any("error", err))
		}
	}

	if err := json.Unmarshal(encoded, &resp); err != nil {
		return resp, goerr.Wrap(err, "failed to decode cache value", goerr.V("key", key))
	}
	return resp, nil
}
