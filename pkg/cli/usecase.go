package cli

import (
	"context"

	"github.com/m-mizutani/docswatch/pkg/cli/config"
	"github.com/m-mizutani/docswatch/pkg/infra"
	"github.com/m-mizutani/docswatch/pkg/usecase"
)

type useCaseConfig struct {
	github    config.GitHub
	cache     config.Cache
	registry  config.Registry
	retrieval config.Retrieval
}

// newUseCase builds the usecase with the shared credential. Returned stores must be closed by
// the caller.
func (x *useCaseConfig) newUseCase(ctx context.Context) (*usecase.UseCase, *config.CacheStores, error) {
	if err := x.retrieval.Validate(); err != nil {
		return nil, nil, err
	}

	reg, err := x.registry.New()
	if err != nil {
		return nil, nil, err
	}

	factory, err := x.github.NewFactory()
	if err != nil {
		return nil, nil, err
	}

	stores, err := x.cache.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	clients := infra.New(
		infra.WithGitHub(factory),
		infra.WithShortCache(stores.Short),
		infra.WithHomeCache(stores.Home),
	)

	uc := usecase.New(clients,
		usecase.WithRegistry(reg),
		usecase.WithMaxCommits(x.retrieval.MaxCommits()),
		usecase.WithCacheTTL(x.cache.TTL()),
	)

	return uc, stores, nil
}
