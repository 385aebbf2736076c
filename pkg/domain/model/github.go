package model

import (
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/types"
)

// GitHubRepository is a resolved handle of a remote repository.
type GitHubRepository struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
}

type DirEntry struct {
	Name string             `json:"name"`
	Path string             `json:"path"`
	Type types.DirEntryType `json:"type"`
	URL  string             `json:"url"`
}

func (x *DirEntry) IsDir() bool {
	return x.Type == types.DirEntryTypeDir
}

// CommitAuthor is the authorship of a commit. Date is nil when GitHub did not report it.
type CommitAuthor struct {
	Name string     `json:"name"`
	Date *time.Time `json:"date"`
}

// RawCommit is a commit as returned by GitHub, before normalization.
type RawCommit struct {
	SHA     string        `json:"sha"`
	Message string        `json:"message"`
	URL     string        `json:"url"`
	Author  *CommitAuthor `json:"author"`
}

// CommitList is the commit history of a path, most recent first. Truncated is set when listing
// stopped at the requested limit while more commits may exist.
type CommitList struct {
	TotalCount int          `json:"total_count"`
	Truncated  bool         `json:"truncated"`
	Commits    []*RawCommit `json:"commits"`
}
