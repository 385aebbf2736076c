package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/mock"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/infra"
	"github.com/m-mizutani/docswatch/pkg/repository/memory"
	"github.com/m-mizutani/docswatch/pkg/usecase"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

var (
	testNow  = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	testRepo = &model.GitHubRepository{
		Owner:    "MicrosoftDocs",
		Name:     "azure-docs",
		FullName: "MicrosoftDocs/azure-docs",
	}
)

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
}

// newCommits returns n commits, most recent first, one hour apart starting from testNow.
func newCommits(n int) []*model.RawCommit {
	commits := make([]*model.RawCommit, n)
	for i := range commits {
		date := testNow.Add(-time.Duration(i) * time.Hour)
		commits[i] = &model.RawCommit{
			SHA:     fmt.Sprintf("%040x", i+1),
			Message: fmt.Sprintf("Update article %d", i),
			URL:     fmt.Sprintf("https://github.com/MicrosoftDocs/azure-docs/commit/%040x", i+1),
			Author:  &model.CommitAuthor{Name: "Alice", Date: &date},
		}
	}
	return commits
}

type fixture struct {
	uc      *usecase.UseCase
	gh      *mock.GitHubMock
	factory *mock.GitHubFactoryMock
	short   *memory.Store
}

func newFixture(t *testing.T, commits []*model.RawCommit, options ...usecase.Option) *fixture {
	gh := &mock.GitHubMock{
		ListCommitsFunc: func(ctx context.Context, repo *model.GitHubRepository, path string, since time.Time, limit int) (*model.CommitList, error) {
			return &model.CommitList{TotalCount: len(commits), Commits: commits}, nil
		},
	}
	factory := &mock.GitHubFactoryMock{
		SharedFunc:   func() interfaces.GitHub { return gh },
		ForTokenFunc: func(token types.GitHubToken) interfaces.GitHub { return gh },
	}
	short := gt.R1(memory.New(64)).NoError(t)

	uc := usecase.New(infra.New(
		infra.WithGitHub(factory),
		infra.WithShortCache(short),
	), options...)

	return &fixture{uc: uc, gh: gh, factory: factory, short: short}
}

func sharedInput(folder string, since int) *model.GetCommitsInput {
	caller := model.NewSharedCaller("shared-token")
	return &model.GetCommitsInput{
		Caller:    caller,
		Repo:      testRepo,
		Folder:    folder,
		SinceDays: since,
		CacheKey:  caller.CacheKey(testRepo.Owner, testRepo.Name),
	}
}

func userInput(folder string, since int) *model.GetCommitsInput {
	caller := model.NewUserCaller("user-token", "octocat")
	return &model.GetCommitsInput{
		Caller:    caller,
		Repo:      testRepo,
		Folder:    folder,
		SinceDays: since,
		CacheKey:  caller.CacheKey(testRepo.Owner, testRepo.Name),
	}
}

func TestGetCommits(t *testing.T) {
	t.Run("shared credential is capped to max commits", func(t *testing.T) {
		f := newFixture(t, newCommits(25))
		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("/articles/storage/", 5))).NoError(t)

		gt.A(t, commits).Length(20)
		gt.V(t, commits[0].SHA).Equal("0000000")
		for i := 1; i < len(commits); i++ {
			gt.True(t, commits[i-1].Date.After(commits[i].Date))
		}
		gt.A(t, f.factory.SharedCalls()).Length(1)
		gt.A(t, f.factory.ForTokenCalls()).Length(0)

		// only as many commits as returned are fetched from the shared quota
		gt.V(t, f.gh.ListCommitsCalls()[0].Limit).Equal(20)
	})

	t.Run("individual credential is not capped", func(t *testing.T) {
		f := newFixture(t, newCommits(25))
		commits := gt.R1(f.uc.GetCommits(testContext(), userInput("/articles/storage/", 5))).NoError(t)

		gt.A(t, commits).Length(25)
		gt.V(t, f.gh.ListCommitsCalls()[0].Limit).Equal(0)
		calls := f.factory.ForTokenCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Token).Equal(types.GitHubToken("user-token"))
	})

	t.Run("max commits is configurable", func(t *testing.T) {
		f := newFixture(t, newCommits(25), usecase.WithMaxCommits(3))
		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 5))).NoError(t)
		gt.A(t, commits).Length(3)
		gt.V(t, f.gh.ListCommitsCalls()[0].Limit).Equal(3)
	})

	t.Run("too large window is rejected", func(t *testing.T) {
		f := newFixture(t, newCommits(3))
		for _, days := range []int{model.MaxSinceDays + 1, 200000} {
			_, err := f.uc.GetCommits(testContext(), sharedInput("articles", days))
			gt.True(t, errors.Is(err, types.ErrInvalidRequest))
		}
		gt.A(t, f.gh.ListCommitsCalls()).Length(0)
	})

	t.Run("largest window looks back in time", func(t *testing.T) {
		f := newFixture(t, newCommits(3))
		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", model.MaxSinceDays))).NoError(t)
		gt.A(t, commits).Length(3)

		since := f.gh.ListCommitsCalls()[0].Since
		gt.True(t, since.Before(testNow))
		gt.True(t, since.Equal(testNow.AddDate(0, 0, -model.MaxSinceDays)))
	})

	t.Run("no commits in window", func(t *testing.T) {
		f := newFixture(t, []*model.RawCommit{})
		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 5))).NoError(t)

		gt.V(t, commits).NotEqual(nil)
		gt.A(t, commits).Length(0)

		// empty result is cached as well
		commits = gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 5))).NoError(t)
		gt.V(t, commits).NotEqual(nil)
		gt.A(t, f.gh.ListCommitsCalls()).Length(1)
	})

	t.Run("cutoff is inclusive", func(t *testing.T) {
		cutoff := testNow.Add(-5 * 24 * time.Hour)
		before := cutoff.Add(-time.Second)
		after := cutoff.Add(time.Second)
		f := newFixture(t, []*model.RawCommit{
			{SHA: strings.Repeat("a", 40), Author: &model.CommitAuthor{Name: "after", Date: &after}},
			{SHA: strings.Repeat("b", 40), Author: &model.CommitAuthor{Name: "cutoff", Date: &cutoff}},
			{SHA: strings.Repeat("c", 40), Author: &model.CommitAuthor{Name: "before", Date: &before}},
		})

		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 5))).NoError(t)
		gt.A(t, commits).Length(2)
		gt.V(t, commits[0].Author).Equal("after")
		gt.V(t, commits[1].Author).Equal("cutoff")

		calls := f.gh.ListCommitsCalls()
		gt.A(t, calls).Length(1)
		gt.True(t, calls[0].Since.Equal(cutoff))
	})

	t.Run("zero days window", func(t *testing.T) {
		f := newFixture(t, newCommits(3))
		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 0))).NoError(t)
		gt.A(t, commits).Length(1)
	})

	t.Run("second call within ttl does not call GitHub", func(t *testing.T) {
		f := newFixture(t, newCommits(25))
		ctx := testContext()

		first := gt.R1(f.uc.GetCommits(ctx, sharedInput("articles", 5))).NoError(t)
		second := gt.R1(f.uc.GetCommits(ctx, sharedInput("articles", 5))).NoError(t)

		gt.V(t, second).Equal(first)
		gt.A(t, f.gh.ListCommitsCalls()).Length(1)
	})

	t.Run("different credentials do not share cache", func(t *testing.T) {
		f := newFixture(t, newCommits(3))
		ctx := testContext()

		caller1 := model.NewUserCaller("token-1", "alice")
		caller2 := model.NewUserCaller("token-2", "bob")
		for _, caller := range []*model.Caller{caller1, caller2} {
			gt.R1(f.uc.GetCommits(ctx, &model.GetCommitsInput{
				Caller:    caller,
				Repo:      testRepo,
				Folder:    "articles",
				SinceDays: 5,
				CacheKey:  caller.CacheKey(testRepo.Owner, testRepo.Name),
			})).NoError(t)
		}

		gt.A(t, f.gh.ListCommitsCalls()).Length(2)
		gt.V(t, f.short.Len()).Equal(2)
	})

	t.Run("root folder is requested as empty path", func(t *testing.T) {
		f := newFixture(t, newCommits(3))
		ctx := testContext()

		fromSlash := gt.R1(f.uc.GetCommits(ctx, sharedInput("/", 5))).NoError(t)
		fromEmpty := gt.R1(f.uc.GetCommits(ctx, sharedInput("", 5))).NoError(t)

		gt.V(t, fromSlash).Equal(fromEmpty)
		calls := f.gh.ListCommitsCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Path).Equal("")
	})

	t.Run("fields are escaped", func(t *testing.T) {
		date := testNow.Add(-time.Hour)
		f := newFixture(t, []*model.RawCommit{
			{
				SHA:     strings.Repeat("d", 40),
				Message: `Fix <script>alert("x")</script> & more`,
				URL:     "https://github.com/MicrosoftDocs/azure-docs/commit/ddd?a=1&b=2",
				Author:  &model.CommitAuthor{Name: "<Mallory>", Date: &date},
			},
		})

		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 5))).NoError(t)
		gt.A(t, commits).Length(1)
		for _, s := range []string{commits[0].SHA, commits[0].Author, commits[0].Message, commits[0].URL} {
			gt.False(t, strings.ContainsAny(s, "<>\""))
			gt.V(t, html.EscapeString(html.UnescapeString(s))).Equal(s)
		}
		gt.V(t, commits[0].Author).Equal("&lt;Mallory&gt;")
		gt.V(t, commits[0].URL).Equal("https://github.com/MicrosoftDocs/azure-docs/commit/ddd?a=1&amp;b=2")
	})

	t.Run("date is converted to UTC", func(t *testing.T) {
		date := testNow.Add(-time.Hour).In(time.FixedZone("JST", 9*60*60))
		f := newFixture(t, []*model.RawCommit{
			{SHA: strings.Repeat("e", 40), Author: &model.CommitAuthor{Name: "Alice", Date: &date}},
		})

		commits := gt.R1(f.uc.GetCommits(testContext(), sharedInput("articles", 5))).NoError(t)
		gt.V(t, commits[0].Date.Location()).Equal(time.UTC)
		gt.True(t, commits[0].Date.Equal(date))
	})

	t.Run("rate limited is propagated and not cached", func(t *testing.T) {
		f := newFixture(t, nil)
		f.gh.ListCommitsFunc = func(ctx context.Context, repo *model.GitHubRepository, path string, since time.Time, limit int) (*model.CommitList, error) {
			return nil, types.ErrRateLimited
		}

		_, err := f.uc.GetCommits(testContext(), sharedInput("articles", 5))
		gt.True(t, errors.Is(err, types.ErrRateLimited))
		gt.V(t, f.short.Len()).Equal(0)

		_, err = f.uc.GetCommits(testContext(), sharedInput("articles", 5))
		gt.Error(t, err)
		gt.A(t, f.gh.ListCommitsCalls()).Length(2)
	})

	t.Run("upstream errors are propagated", func(t *testing.T) {
		for _, kind := range []error{types.ErrNotFound, types.ErrPolicyBlocked, types.ErrUnauthorized} {
			f := newFixture(t, nil)
			f.gh.ListCommitsFunc = func(ctx context.Context, repo *model.GitHubRepository, path string, since time.Time, limit int) (*model.CommitList, error) {
				return nil, kind
			}

			_, err := f.uc.GetCommits(testContext(), sharedInput("articles", 5))
			gt.True(t, errors.Is(err, kind))
			gt.False(t, errors.Is(err, types.ErrRetrievalFailure))
		}
	})

	t.Run("other errors become retrieval failure", func(t *testing.T) {
		f := newFixture(t, nil)
		f.gh.ListCommitsFunc = func(ctx context.Context, repo *model.GitHubRepository, path string, since time.Time, limit int) (*model.CommitList, error) {
			return nil, types.ErrUnavailable
		}

		_, err := f.uc.GetCommits(testContext(), sharedInput("articles", 5))
		gt.True(t, errors.Is(err, types.ErrRetrievalFailure))
		gt.V(t, f.short.Len()).Equal(0)
	})

	t.Run("commit without author date fails formatting", func(t *testing.T) {
		commits := newCommits(3)
		commits[1].Author = nil
		f := newFixture(t, commits)

		_, err := f.uc.GetCommits(testContext(), sharedInput("articles", 5))
		gt.True(t, errors.Is(err, types.ErrFormattingFailure))
		gt.V(t, f.short.Len()).Equal(0)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t, nil)

		input := sharedInput("articles", -1)
		_, err := f.uc.GetCommits(testContext(), input)
		gt.True(t, errors.Is(err, types.ErrInvalidRequest))

		input = sharedInput("articles", 5)
		input.Repo = nil
		_, err = f.uc.GetCommits(testContext(), input)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))

		gt.A(t, f.gh.ListCommitsCalls()).Length(0)
	})
}

func TestFormatCommits(t *testing.T) {
	since := testNow.Add(-24 * time.Hour)

	t.Run("stop at limit", func(t *testing.T) {
		commits := gt.R1(usecase.FormatCommitsForTest(newCommits(10), since, 4)).NoError(t)
		gt.A(t, commits).Length(4)
	})

	t.Run("no limit", func(t *testing.T) {
		commits := gt.R1(usecase.FormatCommitsForTest(newCommits(10), since, 0)).NoError(t)
		gt.A(t, commits).Length(10)
	})

	t.Run("short SHA", func(t *testing.T) {
		raws := newCommits(1)
		raws[0].SHA = "abc"
		_, err := usecase.FormatCommitsForTest(raws, since, 0)
		gt.True(t, errors.Is(err, types.ErrFormattingFailure))
	})
}

func TestIsHexSHA(t *testing.T) {
	gt.True(t, usecase.IsHexSHAForTest("0123456789abcdefABCDEF"))
	gt.True(t, usecase.IsHexSHAForTest("0123456"))
	gt.False(t, usecase.IsHexSHAForTest("012345"))
	gt.False(t, usecase.IsHexSHAForTest("012345g"))
	gt.False(t, usecase.IsHexSHAForTest("<script"))
}
