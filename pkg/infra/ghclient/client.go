package ghclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	perPage = 100
	// maxPages bounds a single commit listing to maxPages * perPage commits
	maxPages = 10
)

// Client talks to the GitHub REST API with a single credential.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

func (x *Client) ResolveRepository(ctx context.Context, owner, name string) (*model.GitHubRepository, error) {
	logging.From(ctx).Debug("Resolving repository", slog.String("owner", owner), slog.String("name", name))

	repo, resp, err := x.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, classify(err, resp, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", name),
		)
	}

	return &model.GitHubRepository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
		Description:   repo.GetDescription(),
		Private:       repo.GetPrivate(),
	}, nil
}

func (x *Client) ListDirectory(ctx context.Context, repo *model.GitHubRepository, path string) ([]*model.DirEntry, error) {
	logging.From(ctx).Debug("Listing files and folders", slog.String("repo", repo.FullName), slog.String("path", path))

	file, dir, resp, err := x.client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, &github.RepositoryContentGetOptions{})
	if err != nil {
		return nil, classify(err, resp, "failed to list directory",
			goerr.V("owner", repo.Owner),
			goerr.V("repo", repo.Name),
			goerr.V("path", path),
		)
	}

	// A path pointing to a file is listed as the file itself
	if file != nil {
		dir = []*github.RepositoryContent{file}
	}

	entries := make([]*model.DirEntry, 0, len(dir))
	for _, content := range dir {
		entries = append(entries, &model.DirEntry{
			Name: content.GetName(),
			Path: content.GetPath(),
			Type: types.DirEntryType(content.GetType()),
			URL:  content.GetHTMLURL(),
		})
	}

	return entries, nil
}

// ListCommits lists commits of path authored at or after since, most recent first. A positive
// limit stops paging once limit commits are collected.
func (x *Client) ListCommits(ctx context.Context, repo *model.GitHubRepository, path string, since time.Time, limit int) (*model.CommitList, error) {
	size := perPage
	if limit > 0 && limit < perPage {
		size = limit
	}

	opts := &github.CommitsListOptions{
		Path:        path,
		Since:       since,
		ListOptions: github.ListOptions{PerPage: size},
	}

	result := &model.CommitList{
		Commits: []*model.RawCommit{},
	}

	for i := 0; i < maxPages; i++ {
		commits, resp, err := x.client.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, classify(err, resp, "failed to list commits",
				goerr.V("owner", repo.Owner),
				goerr.V("repo", repo.Name),
				goerr.V("path", path),
				goerr.V("since", since),
			)
		}

		for _, c := range commits {
			if limit > 0 && len(result.Commits) >= limit {
				result.Truncated = true
				break
			}
			result.Commits = append(result.Commits, toRawCommit(c))
		}

		if resp.NextPage == 0 {
			break
		}
		if limit > 0 && len(result.Commits) >= limit {
			result.Truncated = true
			break
		}
		opts.Page = resp.NextPage
	}
	result.TotalCount = len(result.Commits)

	logging.From(ctx).Debug("Listed commits",
		slog.String("repo", repo.FullName),
		slog.String("path", path),
		slog.Int("count", result.TotalCount),
		slog.Bool("truncated", result.Truncated),
	)

	return result, nil
}

func toRawCommit(c *github.RepositoryCommit) *model.RawCommit {
	raw := &model.RawCommit{
		SHA:     c.GetSHA(),
		Message: c.GetCommit().GetMessage(),
		URL:     c.GetHTMLURL(),
	}

	if author := c.GetCommit().GetAuthor(); author != nil {
		raw.Author = &model.CommitAuthor{
			Name: author.GetName(),
		}
		if author.Date != nil {
			date := author.Date.Time
			raw.Author.Date = &date
		}
	}

	return raw
}

func (x *Client) CurrentUser(ctx context.Context) (string, error) {
	user, resp, err := x.client.Users.Get(ctx, "")
	if err != nil {
		return "", classify(err, resp, "failed to get authenticated user")
	}
	return user.GetLogin(), nil
}

// classify converts an error of go-github into one of the error kinds in types. It relies on
// status codes, headers and error types only.
func classify(err error, resp *github.Response, msg string, options ...goerr.Option) error {
	var (
		rateLimitErr  *github.RateLimitError
		abuseLimitErr *github.AbuseRateLimitError
		errResp       *github.ErrorResponse
	)

	var httpResp *http.Response
	if resp != nil {
		httpResp = resp.Response
	}
	if httpResp == nil && errors.As(err, &errResp) {
		httpResp = errResp.Response
	}

	status := 0
	if httpResp != nil {
		status = httpResp.StatusCode
	}

	kind := types.ErrUnavailable
	switch {
	case errors.As(err, &rateLimitErr), errors.As(err, &abuseLimitErr):
		kind = types.ErrRateLimited
	case status == http.StatusNotFound:
		kind = types.ErrNotFound
	case status == http.StatusForbidden && httpResp.Header.Get("X-GitHub-SSO") != "":
		kind = types.ErrPolicyBlocked
	case status == http.StatusTooManyRequests:
		kind = types.ErrRateLimited
	case status == http.StatusUnauthorized:
		kind = types.ErrUnauthorized
	}

	options = append(options,
		goerr.V("status", status),
		goerr.V("cause", err.Error()),
	)
	return goerr.Wrap(kind, msg, options...)
}
