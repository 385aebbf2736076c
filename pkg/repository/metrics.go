package repository

import (
	"context"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "docswatch",
	Name:      "cache_lookups_total",
	Help:      "cache lookups by namespace and result (hit, miss, error)",
}, []string{"namespace", "result"})

type instrumented struct {
	name  string
	store interfaces.CacheStore
}

// Instrument counts hits and misses of store under the given namespace name.
func Instrument(name string, store interfaces.CacheStore) interfaces.CacheStore {
	return &instrumented{name: name, store: store}
}

func (x *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := x.store.Get(ctx, key)
	switch {
	case err != nil:
		cacheLookups.WithLabelValues(x.name, "error").Inc()
	case found:
		cacheLookups.WithLabelValues(x.name, "hit").Inc()
	default:
		cacheLookups.WithLabelValues(x.name, "miss").Inc()
	}
	return value, found, err
}

func (x *instrumented) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return x.store.Set(ctx, key, value, ttl)
}
