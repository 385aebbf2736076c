package registry

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Registry is the static set of curated repositories. It is immutable after New.
type Registry struct {
	configs []*model.RepoConfig
	index   map[string]*model.RepoConfig
}

func New(configs ...model.RepoConfig) (*Registry, error) {
	reg := &Registry{
		index: make(map[string]*model.RepoConfig, len(configs)),
	}

	for i := range configs {
		cfg := configs[i]
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		cfg.Key = model.RepoKey(cfg.Owner, cfg.Name)
		if cfg.DisplayName == "" {
			cfg.DisplayName = cfg.Key
		}
		if cfg.Folder == "" {
			cfg.Folder = model.RootFolder
		}

		if _, exists := reg.index[cfg.Key]; exists {
			return nil, goerr.Wrap(types.ErrInvalidOption, "duplicated repository in registry", goerr.V("key", cfg.Key))
		}
		reg.index[cfg.Key] = &cfg
		reg.configs = append(reg.configs, &cfg)
	}

	return reg, nil
}

// Resolve returns the registered configuration of owner/name. An unregistered repository gets a
// fallback configuration watching the repository root.
func (x *Registry) Resolve(owner, name string) *model.RepoConfig {
	if cfg, ok := x.index[model.RepoKey(owner, name)]; ok {
		copied := *cfg
		return &copied
	}
	return model.NewFallbackRepoConfig(owner, name)
}

// List returns registered configurations in declaration order.
func (x *Registry) List() []*model.RepoConfig {
	resp := make([]*model.RepoConfig, len(x.configs))
	for i, cfg := range x.configs {
		copied := *cfg
		resp[i] = &copied
	}
	return resp
}

type registryFile struct {
	Repositories []model.RepoConfig `yaml:"repositories"`
}

// LoadFile builds a Registry from a YAML file such as:
//
//	repositories:
//	  - owner: MicrosoftDocs
//	    name: azure-docs
//	    display_name: Azure Docs
//	    folder: /articles/
//	    icon: azure.svg
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read registry file", goerr.V("path", path))
	}

	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse registry file", goerr.V("path", path))
	}

	return New(file.Repositories...)
}
