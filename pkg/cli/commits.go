package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type commitsOutput struct {
	Repository *model.GitHubRepository `json:"repository"`
	Folder     string                  `json:"folder"`
	Since      int                     `json:"since"`
	Commits    []*model.Commit         `json:"commits"`
}

func commitsCommand(w io.Writer) *cli.Command {
	var (
		format string
		ucCfg  useCaseConfig
	)

	return &cli.Command{
		Name:      "commits",
		Aliases:   []string{"c"},
		Usage:     "Print recent commits of a folder with the shared credential",
		ArgsUsage: "<owner>/<repo> [folder]",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format [text|json]",
				Value:       outputText,
				Destination: &format,
			},
		},
			ucCfg.github.Flags(),
			ucCfg.cache.Flags(),
			ucCfg.retrieval.Flags(),
			ucCfg.registry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != outputText && format != outputJSON {
				return goerr.Wrap(types.ErrInvalidOption, "unknown output format", goerr.V("format", format))
			}

			owner, name, err := parseRepoArg(c.Args().First())
			if err != nil {
				return err
			}

			uc, stores, err := ucCfg.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(stores)

			caller := model.NewSharedCaller(ucCfg.github.SharedToken())
			cfg := uc.RepoConfig(owner, name)

			folder := c.Args().Get(1)
			if strings.Trim(folder, "/") == "" {
				folder = cfg.Folder
			}

			repo, err := uc.LookupRepository(ctx, caller, cfg)
			if err != nil {
				return err
			}

			commits, err := uc.GetCommits(ctx, &model.GetCommitsInput{
				Caller:    caller,
				Repo:      repo,
				Folder:    folder,
				SinceDays: ucCfg.retrieval.SinceDays(),
				CacheKey:  caller.CacheKey(cfg.Owner, cfg.Name),
			})
			if err != nil {
				return err
			}

			out := &commitsOutput{
				Repository: repo,
				Folder:     folder,
				Since:      ucCfg.retrieval.SinceDays(),
				Commits:    commits,
			}
			if format == outputJSON {
				return writeCommitsJSON(w, out)
			}
			return writeCommitsText(w, out)
		},
	}
}

func parseRepoArg(arg string) (string, string, error) {
	owner, name, ok := strings.Cut(arg, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "repository must be <owner>/<repo>", goerr.V("arg", arg))
	}
	return owner, name, nil
}

func writeCommitsJSON(w io.Writer, out *commitsOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to write commits")
	}
	return nil
}

// writeCommitsText prints one commit per line. Commit fields are unescaped for the terminal.
func writeCommitsText(w io.Writer, out *commitsOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s /%s (last %d days, %d commits)\n",
		out.Repository.FullName, strings.Trim(out.Folder, "/"), out.Since, len(out.Commits))

	for _, commit := range out.Commits {
		message, _, _ := strings.Cut(html.UnescapeString(commit.Message), "\n")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			commit.SHA,
			commit.Date.Format("2006-01-02 15:04"),
			html.UnescapeString(commit.Author),
			message,
		)
	}

	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write commits")
	}
	return nil
}
