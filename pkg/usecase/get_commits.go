package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/repository"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const shortSHALength = 7

// GetCommits returns commits touching input.Folder in the last input.SinceDays days, most recent
// first. A caller using the shared credential gets at most MaxCommits commits. Every string
// field of returned commits is HTML escaped.
func (x *UseCase) GetCommits(ctx context.Context, input *model.GetCommitsInput) ([]*model.Commit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	path := NormalizePath(input.Folder)
	since := logging.CtxTime(ctx).UTC().AddDate(0, 0, -input.SinceDays)

	scope := "user"
	if input.Caller.Shared {
		scope = "shared"
	}
	key := fmt.Sprintf("%s:commits:%s:%d:%s", input.CacheKey, path, input.SinceDays, scope)

	logger := logging.From(ctx).With(
		slog.String("repo", input.Repo.FullName),
		slog.String("path", path),
		slog.Int("since", input.SinceDays),
	)
	logger.Debug("Looking for commits")

	limit := 0
	if input.Caller.Shared && x.maxCommits > 0 {
		limit = x.maxCommits
	}

	return repository.GetOrCompute(ctx, x.clients.ShortCache(), key, x.cacheTTL,
		func(ctx context.Context) ([]*model.Commit, error) {
			list, err := x.github(input.Caller).ListCommits(ctx, input.Repo, path, since, limit)
			if err != nil {
				if isUpstreamError(err) {
					return nil, err
				}
				return nil, goerr.Wrap(types.ErrRetrievalFailure, "failed to list commits",
					goerr.V("repo", input.Repo.FullName),
					goerr.V("path", path),
					goerr.V("cause", err.Error()),
				)
			}
			logger.Debug("Commits found", slog.Int("total", list.TotalCount))

			if list.Truncated {
				logger.Info("Using shared GitHub client: limiting commits", slog.Int("max_commits", limit))
			}

			return formatCommits(list.Commits, since, limit)
		})
}

func isUpstreamError(err error) bool {
	return errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrPolicyBlocked) ||
		errors.Is(err, types.ErrRateLimited) ||
		errors.Is(err, types.ErrUnauthorized)
}

// formatCommits keeps commits authored at or after since, up to limit (0 means no limit), and
// converts them into escaped records.
func formatCommits(raws []*model.RawCommit, since time.Time, limit int) ([]*model.Commit, error) {
	commits := make([]*model.Commit, 0, len(raws))

	for _, raw := range raws {
		if limit > 0 && len(commits) >= limit {
			break
		}

		commit, err := formatCommit(raw)
		if err != nil {
			return nil, err
		}
		if commit.Date.Before(since) {
			continue
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

func formatCommit(raw *model.RawCommit) (*model.Commit, error) {
	if raw == nil || raw.Author == nil || raw.Author.Date == nil {
		return nil, goerr.Wrap(types.ErrFormattingFailure, "commit has no author date")
	}
	if !isHexSHA(raw.SHA) {
		return nil, goerr.Wrap(types.ErrFormattingFailure, "invalid commit SHA", goerr.V("sha", raw.SHA))
	}

	return &model.Commit{
		SHA:     html.EscapeString(raw.SHA[:shortSHALength]),
		Author:  html.EscapeString(raw.Author.Name),
		Message: html.EscapeString(raw.Message),
		URL:     html.EscapeString(raw.URL),
		Date:    raw.Author.Date.UTC(),
	}, nil
}

func isHexSHA(sha string) bool {
	if len(sha) < shortSHALength {
		return false
	}
	for _, c := range sha {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
