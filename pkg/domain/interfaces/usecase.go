package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
)

type UseCase interface {
	RepoConfig(owner, name string) *model.RepoConfig
	RepoConfigs() []*model.RepoConfig

	LookupRepository(ctx context.Context, caller *model.Caller, cfg *model.RepoConfig) (*model.GitHubRepository, error)
	GetLanding(ctx context.Context, caller *model.Caller, cfg *model.RepoConfig) (*model.Landing, error)
	ListFolder(ctx context.Context, caller *model.Caller, repo *model.GitHubRepository, path string) ([]*model.DirEntry, error)
	GetCommits(ctx context.Context, input *model.GetCommitsInput) ([]*model.Commit, error)

	AuthenticateUser(ctx context.Context, token types.GitHubToken) (string, error)
}
