package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/repository"
)

// NormalizePath trims path separators. The repository root, "/" or "", becomes "".
func NormalizePath(path string) string {
	return strings.Trim(path, "/")
}

// LookupRepository resolves the repository of cfg with the credential of caller.
func (x *UseCase) LookupRepository(ctx context.Context, caller *model.Caller, cfg *model.RepoConfig) (*model.GitHubRepository, error) {
	key := string(caller.CacheKey(cfg.Owner, cfg.Name)) + ":repo"

	return repository.GetOrCompute(ctx, x.clients.ShortCache(), key, x.cacheTTL,
		func(ctx context.Context) (*model.GitHubRepository, error) {
			return x.github(caller).ResolveRepository(ctx, cfg.Owner, cfg.Name)
		})
}

// ListFolder returns files and folders in path of repo.
func (x *UseCase) ListFolder(ctx context.Context, caller *model.Caller, repo *model.GitHubRepository, path string) ([]*model.DirEntry, error) {
	path = NormalizePath(path)
	key := string(caller.CacheKey(repo.Owner, repo.Name)) + ":contents:" + path

	return repository.GetOrCompute(ctx, x.clients.ShortCache(), key, x.cacheTTL,
		func(ctx context.Context) ([]*model.DirEntry, error) {
			return x.github(caller).ListDirectory(ctx, repo, path)
		})
}

// GetLanding returns the listing of the watched folder of cfg. The listing is kept longer than
// other cache entries.
func (x *UseCase) GetLanding(ctx context.Context, caller *model.Caller, cfg *model.RepoConfig) (*model.Landing, error) {
	repo, err := x.LookupRepository(ctx, caller, cfg)
	if err != nil {
		return nil, err
	}

	path := NormalizePath(cfg.Folder)
	key := string(caller.CacheKey(repo.Owner, repo.Name)) + ":home:" + path

	entries, err := repository.GetOrCompute(ctx, x.clients.HomeCache(), key, x.homeTTL(),
		func(ctx context.Context) ([]*model.DirEntry, error) {
			return x.github(caller).ListDirectory(ctx, repo, path)
		})
	if err != nil {
		return nil, err
	}

	return &model.Landing{
		Config:  cfg,
		Repo:    repo,
		Entries: entries,
	}, nil
}
