package model

import (
	"log/slog"

	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RootFolder is the watched folder of a repository that has no curated configuration.
const RootFolder = "/"

// RepoConfig describes a documentation repository that can be tracked.
type RepoConfig struct {
	Key         string `json:"key" yaml:"-"`
	Owner       string `json:"owner" yaml:"owner"`
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Folder      string `json:"folder" yaml:"folder"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}

// RepoKey returns the registry key of owner/name.
func RepoKey(owner, name string) string {
	return owner + "/" + name
}

// NewFallbackRepoConfig builds the configuration used for a repository that is not registered.
func NewFallbackRepoConfig(owner, name string) *RepoConfig {
	key := RepoKey(owner, name)
	return &RepoConfig{
		Key:         key,
		Owner:       owner,
		Name:        name,
		DisplayName: key,
		Folder:      RootFolder,
	}
}

func (x *RepoConfig) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository owner is empty", goerr.V("name", x.Name))
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty", goerr.V("owner", x.Owner))
	}
	return nil
}

func (x *RepoConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", x.Key),
		slog.String("folder", x.Folder),
	)
}
