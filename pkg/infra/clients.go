package infra

import (
	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/repository/memory"
)

// Clients bundles the external dependencies of the usecase layer.
type Clients struct {
	github     interfaces.GitHubFactory
	shortCache interfaces.CacheStore
	homeCache  interfaces.CacheStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	// Cache stores are never nil so that usecases can always go through them
	if client.shortCache == nil {
		client.shortCache = newMemoryStore()
	}
	if client.homeCache == nil {
		client.homeCache = newMemoryStore()
	}

	return client
}

func newMemoryStore() interfaces.CacheStore {
	store, err := memory.New(memory.DefaultSize)
	if err != nil {
		panic(err) // DefaultSize is always valid
	}
	return store
}

func (x *Clients) GitHub() interfaces.GitHubFactory {
	return x.github
}
func (x *Clients) ShortCache() interfaces.CacheStore {
	return x.shortCache
}
func (x *Clients) HomeCache() interfaces.CacheStore {
	return x.homeCache
}

func WithGitHub(factory interfaces.GitHubFactory) Option {
	return func(x *Clients) {
		x.github = factory
	}
}

// WithShortCache sets the store for repository lookups, directory listings and commit lists.
func WithShortCache(store interfaces.CacheStore) Option {
	return func(x *Clients) {
		x.shortCache = store
	}
}

// WithHomeCache sets the store for landing listings of watched folders.
func WithHomeCache(store interfaces.CacheStore) Option {
	return func(x *Clients) {
		x.homeCache = store
	}
}
