package config

import (
	"log/slog"

	"github.com/m-mizutani/docswatch/pkg/registry"
	"github.com/urfave/cli/v3"
)

type Registry struct {
	file string
}

func (x *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repos-file",
			Usage:       "YAML file of watched repositories. Built-in list is used if empty",
			Category:    "Registry",
			Destination: &x.file,
			Sources:     cli.EnvVars("DOCSWATCH_REPOS_FILE"),
		},
	}
}

func (x Registry) New() (*registry.Registry, error) {
	if x.file == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(x.file)
}

func (x Registry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("File", x.file),
	)
}
