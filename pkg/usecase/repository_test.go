package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/mock"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/infra"
	"github.com/m-mizutani/docswatch/pkg/registry"
	"github.com/m-mizutani/docswatch/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newRepositoryMock() *mock.GitHubMock {
	return &mock.GitHubMock{
		ResolveRepositoryFunc: func(ctx context.Context, owner, name string) (*model.GitHubRepository, error) {
			return &model.GitHubRepository{
				Owner:         owner,
				Name:          name,
				FullName:      owner + "/" + name,
				DefaultBranch: "main",
			}, nil
		},
		ListDirectoryFunc: func(ctx context.Context, repo *model.GitHubRepository, path string) ([]*model.DirEntry, error) {
			return []*model.DirEntry{
				{Name: "storage", Path: path + "/storage", Type: types.DirEntryTypeDir},
				{Name: "index.yml", Path: path + "/index.yml", Type: types.DirEntryTypeFile},
			}, nil
		},
	}
}

func newFactoryMock(gh interfaces.GitHub) *mock.GitHubFactoryMock {
	return &mock.GitHubFactoryMock{
		SharedFunc:   func() interfaces.GitHub { return gh },
		ForTokenFunc: func(token types.GitHubToken) interfaces.GitHub { return gh },
	}
}

func TestLookupRepository(t *testing.T) {
	gh := newRepositoryMock()
	uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))
	ctx := context.Background()
	cfg := uc.RepoConfig("MicrosoftDocs", "azure-docs")

	t.Run("cached per credential", func(t *testing.T) {
		shared := model.NewSharedCaller("shared-token")
		repo := gt.R1(uc.LookupRepository(ctx, shared, cfg)).NoError(t)
		gt.V(t, repo.FullName).Equal("MicrosoftDocs/azure-docs")

		gt.R1(uc.LookupRepository(ctx, shared, cfg)).NoError(t)
		gt.A(t, gh.ResolveRepositoryCalls()).Length(1)

		gt.R1(uc.LookupRepository(ctx, model.NewUserCaller("user-token", "octocat"), cfg)).NoError(t)
		gt.A(t, gh.ResolveRepositoryCalls()).Length(2)
	})

	t.Run("not found", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ResolveRepositoryFunc: func(ctx context.Context, owner, name string) (*model.GitHubRepository, error) {
				return nil, types.ErrNotFound
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))

		_, err := uc.LookupRepository(ctx, model.NewSharedCaller("shared-token"), uc.RepoConfig("octocat", "missing"))
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestListFolder(t *testing.T) {
	gh := newRepositoryMock()
	uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))
	ctx := context.Background()
	caller := model.NewSharedCaller("shared-token")
	repo := &model.GitHubRepository{Owner: "MicrosoftDocs", Name: "azure-docs"}

	entries := gt.R1(uc.ListFolder(ctx, caller, repo, "/articles/")).NoError(t)
	gt.A(t, entries).Length(2)
	gt.True(t, entries[0].IsDir())

	gt.R1(uc.ListFolder(ctx, caller, repo, "articles")).NoError(t)
	calls := gh.ListDirectoryCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Path).Equal("articles")
}

func TestGetLanding(t *testing.T) {
	ctx := context.Background()
	caller := model.NewSharedCaller("shared-token")

	t.Run("watched folder is listed with home cache", func(t *testing.T) {
		gh := newRepositoryMock()
		short := &mock.CacheStoreMock{
			GetFunc: func(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil },
			SetFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error { return nil },
		}
		home := &mock.CacheStoreMock{
			GetFunc: func(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil },
			SetFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error { return nil },
		}
		reg := gt.R1(registry.New(model.RepoConfig{
			Owner:  "MicrosoftDocs",
			Name:   "azure-docs",
			Folder: "/articles/",
		})).NoError(t)

		uc := usecase.New(infra.New(
			infra.WithGitHub(newFactoryMock(gh)),
			infra.WithShortCache(short),
			infra.WithHomeCache(home),
		), usecase.WithRegistry(reg), usecase.WithCacheTTL(time.Minute))

		landing := gt.R1(uc.GetLanding(ctx, caller, uc.RepoConfig("MicrosoftDocs", "azure-docs"))).NoError(t)
		gt.V(t, landing.Config.Folder).Equal("/articles/")
		gt.V(t, landing.Repo.FullName).Equal("MicrosoftDocs/azure-docs")
		gt.A(t, landing.Entries).Length(2)

		dirCalls := gh.ListDirectoryCalls()
		gt.A(t, dirCalls).Length(1)
		gt.V(t, dirCalls[0].Path).Equal("articles")

		// repository lookup goes to the short cache, listing goes to the home cache
		shortSets := short.SetCalls()
		gt.A(t, shortSets).Length(1)
		gt.V(t, shortSets[0].Ttl).Equal(time.Minute)

		homeSets := home.SetCalls()
		gt.A(t, homeSets).Length(1)
		gt.V(t, homeSets[0].Ttl).Equal(10 * time.Minute)
	})

	t.Run("unregistered repository lists root", func(t *testing.T) {
		gh := newRepositoryMock()
		uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))

		landing := gt.R1(uc.GetLanding(ctx, caller, uc.RepoConfig("octocat", "hello-world"))).NoError(t)
		gt.V(t, landing.Config.Folder).Equal(model.RootFolder)
		gt.V(t, gh.ListDirectoryCalls()[0].Path).Equal("")
	})

	t.Run("policy blocked", func(t *testing.T) {
		gh := newRepositoryMock()
		gh.ListDirectoryFunc = func(ctx context.Context, repo *model.GitHubRepository, path string) ([]*model.DirEntry, error) {
			return nil, types.ErrPolicyBlocked
		}
		uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))

		_, err := uc.GetLanding(ctx, caller, uc.RepoConfig("MicrosoftDocs", "azure-docs"))
		gt.True(t, errors.Is(err, types.ErrPolicyBlocked))
	})
}

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("login is cached by token", func(t *testing.T) {
		gh := &mock.GitHubMock{
			CurrentUserFunc: func(ctx context.Context) (string, error) { return "octocat", nil },
		}
		factory := newFactoryMock(gh)
		uc := usecase.New(infra.New(infra.WithGitHub(factory)))

		gt.V(t, gt.R1(uc.AuthenticateUser(ctx, "user-token")).NoError(t)).Equal("octocat")
		gt.V(t, gt.R1(uc.AuthenticateUser(ctx, "user-token")).NoError(t)).Equal("octocat")
		gt.A(t, gh.CurrentUserCalls()).Length(1)
		gt.V(t, factory.ForTokenCalls()[0].Token).Equal(types.GitHubToken("user-token"))
	})

	t.Run("revoked token", func(t *testing.T) {
		gh := &mock.GitHubMock{
			CurrentUserFunc: func(ctx context.Context) (string, error) { return "", types.ErrUnauthorized },
		}
		uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))

		_, err := uc.AuthenticateUser(ctx, "revoked-token")
		gt.True(t, errors.Is(err, types.ErrUnauthorized))
	})

	t.Run("empty login", func(t *testing.T) {
		gh := &mock.GitHubMock{
			CurrentUserFunc: func(ctx context.Context) (string, error) { return "", nil },
		}
		uc := usecase.New(infra.New(infra.WithGitHub(newFactoryMock(gh))))

		_, err := uc.AuthenticateUser(ctx, "user-token")
		gt.True(t, errors.Is(err, types.ErrUnauthorized))
	})

	t.Run("empty token", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.AuthenticateUser(ctx, "")
		gt.True(t, errors.Is(err, types.ErrUnauthorized))
	})
}
