package usecase

import (
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/infra"
	"github.com/m-mizutani/docswatch/pkg/registry"
)

const (
	DefaultMaxCommits = 20
	DefaultSinceDays  = 5
	DefaultCacheTTL   = 600 * time.Second

	// homeTTLFactor extends ttl of the landing listing, which changes rarely
	homeTTLFactor = 10
)

type UseCase struct {
	clients    *infra.Clients
	registry   *registry.Registry
	maxCommits int
	cacheTTL   time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithRegistry(reg *registry.Registry) Option {
	return func(x *UseCase) {
		x.registry = reg
	}
}

// WithMaxCommits sets the number of commits returned to callers using the shared credential.
func WithMaxCommits(n int) Option {
	return func(x *UseCase) {
		x.maxCommits = n
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		x.cacheTTL = ttl
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		maxCommits: DefaultMaxCommits,
		cacheTTL:   DefaultCacheTTL,
	}
	for _, opt := range options {
		opt(uc)
	}

	if uc.registry == nil {
		uc.registry = registry.Default()
	}

	return uc
}

func (x *UseCase) RepoConfig(owner, name string) *model.RepoConfig {
	return x.registry.Resolve(owner, name)
}

func (x *UseCase) RepoConfigs() []*model.RepoConfig {
	return x.registry.List()
}

func (x *UseCase) github(caller *model.Caller) interfaces.GitHub {
	if caller.Shared {
		return x.clients.GitHub().Shared()
	}
	return x.clients.GitHub().ForToken(caller.Token)
}

func (x *UseCase) homeTTL() time.Duration {
	return x.cacheTTL * homeTTLFactor
}
