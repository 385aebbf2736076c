package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/repository"
	"github.com/m-mizutani/docswatch/pkg/repository/memory"
	"github.com/m-mizutani/docswatch/pkg/repository/redis"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	redisPrefix = "docswatch:"
)

type Cache struct {
	backend       string
	size          int64
	ttl           time.Duration
	redisAddr     string
	redisPassword string `masq:"secret"`
	redisDB       int64
}

// CacheStores is a pair of stores for short lived entries and the home pages.
type CacheStores struct {
	Short interfaces.CacheStore
	Home  interfaces.CacheStore
	close func() error
}

func (x *CacheStores) Close() error {
	if x.close == nil {
		return nil
	}
	return x.close()
}

func (x *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cache-backend",
			Usage:       "Cache backend [memory|redis]",
			Category:    "Cache",
			Destination: &x.backend,
			Value:       CacheBackendMemory,
			Sources:     cli.EnvVars("DOCSWATCH_CACHE_BACKEND"),
		},
		&cli.Int64Flag{
			Name:        "cache-size",
			Usage:       "Max number of entries of each memory cache",
			Category:    "Cache",
			Destination: &x.size,
			Value:       memory.DefaultSize,
			Sources:     cli.EnvVars("DOCSWATCH_CACHE_SIZE"),
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Lifetime of cache entries. Home pages live 10 times longer",
			Category:    "Cache",
			Destination: &x.ttl,
			Value:       600 * time.Second,
			Sources:     cli.EnvVars("DOCSWATCH_CACHE_TTL"),
		},
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address (host:port)",
			Category:    "Cache",
			Destination: &x.redisAddr,
			Value:       "localhost:6379",
			Sources:     cli.EnvVars("DOCSWATCH_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Cache",
			Destination: &x.redisPassword,
			Sources:     cli.EnvVars("DOCSWATCH_REDIS_PASSWORD"),
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Cache",
			Destination: &x.redisDB,
			Sources:     cli.EnvVars("DOCSWATCH_REDIS_DB"),
		},
	}
}

func (x Cache) TTL() time.Duration {
	return x.ttl
}

// New opens cache stores of the configured backend. Both stores report metrics.
func (x Cache) New(ctx context.Context) (*CacheStores, error) {
	switch x.backend {
	case "", CacheBackendMemory:
		short, err := memory.New(int(x.size))
		if err != nil {
			return nil, err
		}
		home, err := memory.New(int(x.size))
		if err != nil {
			return nil, err
		}
		return &CacheStores{
			Short: repository.Instrument("short", short),
			Home:  repository.Instrument("home", home),
		}, nil

	case CacheBackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     x.redisAddr,
			Password: x.redisPassword,
			Database: int(x.redisDB),
		})
		if err != nil {
			return nil, err
		}
		return &CacheStores{
			Short: repository.Instrument("short", redis.New(client, redisPrefix+"short:")),
			Home:  repository.Instrument("home", redis.New(client, redisPrefix+"home:")),
			close: client.Close,
		}, nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown cache backend", goerr.V("backend", x.backend))
	}
}

func (x Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Backend", x.backend),
		slog.Int64("Size", x.size),
		slog.Duration("TTL", x.ttl),
		slog.String("RedisAddr", x.redisAddr),
		slog.Int("RedisPassword.len", len(x.redisPassword)),
		slog.Int64("RedisDB", x.redisDB),
	)
}
