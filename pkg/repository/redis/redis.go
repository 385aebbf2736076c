package redis

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// Config defines Redis connection settings.
type Config struct {
	Addr     string
	Username string
	Password string
	Database int
}

// Store keeps cache entries in Redis under a key prefix. Expiry is delegated to Redis.
type Store struct {
	client *goredis.Client
	prefix string
}

var _ interfaces.CacheStore = (*Store)(nil)

// Connect opens a Redis client and checks the connection.
func Connect(ctx context.Context, cfg Config) (*goredis.Client, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:6379"
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", addr))
	}

	return client, nil
}

// New creates a cache store in the namespace given by prefix. Several stores may share a client.
func New(client *goredis.Client, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (x *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := x.client.Get(ctx, x.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get cache entry", goerr.V("key", key))
	}
	return value, true, nil
}

func (x *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := x.client.Set(ctx, x.prefix+key, value, ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set cache entry", goerr.V("key", key))
	}
	return nil
}
