package config

import (
	"log/slog"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Retrieval struct {
	sinceDays  int64
	maxCommits int64
}

func (x *Retrieval) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "since",
			Usage:       "Default number of days to look back",
			Category:    "Retrieval",
			Destination: &x.sinceDays,
			Value:       usecase.DefaultSinceDays,
			Sources:     cli.EnvVars("DOCSWATCH_SINCE"),
		},
		&cli.Int64Flag{
			Name:        "max-commits",
			Usage:       "Max number of commits returned with the shared credential",
			Category:    "Retrieval",
			Destination: &x.maxCommits,
			Value:       usecase.DefaultMaxCommits,
			Sources:     cli.EnvVars("DOCSWATCH_MAX_COMMITS"),
		},
	}
}

func (x Retrieval) Validate() error {
	if x.sinceDays < 0 || x.sinceDays > model.MaxSinceDays {
		return goerr.Wrap(types.ErrInvalidOption, "--since is out of range", goerr.V("since", x.sinceDays), goerr.V("max", model.MaxSinceDays))
	}
	if x.maxCommits <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "--max-commits must be positive", goerr.V("max-commits", x.maxCommits))
	}
	return nil
}

func (x Retrieval) SinceDays() int {
	return int(x.sinceDays)
}

func (x Retrieval) MaxCommits() int {
	return int(x.maxCommits)
}

func (x Retrieval) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("SinceDays", x.sinceDays),
		slog.Int64("MaxCommits", x.maxCommits),
	)
}
