package model

import (
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MaxSinceDays is the largest look back window in days.
const MaxSinceDays = 36500

type GetCommitsInput struct {
	Caller    *Caller
	Repo      *GitHubRepository
	Folder    string
	SinceDays int
	CacheKey  types.CacheKey
}

func (x *GetCommitsInput) Validate() error {
	if x.Caller == nil {
		return goerr.Wrap(types.ErrInvalidOption, "caller is required")
	}
	if x.Repo == nil {
		return goerr.Wrap(types.ErrInvalidOption, "repository is required")
	}
	if x.SinceDays < 0 || x.SinceDays > MaxSinceDays {
		return goerr.Wrap(types.ErrInvalidRequest, "since is out of range",
			goerr.V("since", x.SinceDays),
			goerr.V("max", MaxSinceDays),
		)
	}
	if x.CacheKey == "" {
		return goerr.Wrap(types.ErrInvalidOption, "cache key is required")
	}
	return nil
}

// Landing is the folder browser of the watched folder of a repository.
type Landing struct {
	Config  *RepoConfig       `json:"config"`
	Repo    *GitHubRepository `json:"repository"`
	Entries []*DirEntry       `json:"entries"`
}
