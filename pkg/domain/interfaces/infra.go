package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub GitHubFactory OAuth

import (
	"context"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
)

// GitHub is the remote client adapter bound to a single credential. A positive limit of
// ListCommits bounds the number of commits fetched.
type GitHub interface {
	ResolveRepository(ctx context.Context, owner, name string) (*model.GitHubRepository, error)
	ListDirectory(ctx context.Context, repo *model.GitHubRepository, path string) ([]*model.DirEntry, error)
	ListCommits(ctx context.Context, repo *model.GitHubRepository, path string, since time.Time, limit int) (*model.CommitList, error)
	CurrentUser(ctx context.Context) (string, error)
}

// GitHubFactory builds GitHub clients for the shared credential or a user token.
type GitHubFactory interface {
	Shared() GitHub
	ForToken(token types.GitHubToken) GitHub
}

type OAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (types.GitHubToken, error)
}
