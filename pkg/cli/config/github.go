package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/infra/ghclient"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub is the shared credential used for anonymous requests. Either a token or a GitHub App
// installation must be given.
type GitHub struct {
	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	apiURL     string
	timeout    int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token used as shared credential",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, alternative to --github-token",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-timeout",
			Usage:       "Timeout of GitHub API requests in seconds",
			Category:    "GitHub",
			Destination: &x.timeout,
			Value:       int64(ghclient.DefaultTimeout.Seconds()),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_TIMEOUT"),
		},
	}
}

// SharedToken returns the token of the shared credential. It is empty in GitHub App mode.
func (x GitHub) SharedToken() types.GitHubToken {
	return x.token
}

func (x GitHub) NewFactory() (*ghclient.Factory, error) {
	var options []ghclient.Option

	switch {
	case x.token != "":
		options = append(options, ghclient.WithSharedToken(x.token))
	case x.appID != 0:
		options = append(options, ghclient.WithGitHubApp(x.appID, x.installID, x.privateKey))
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --github-token or --github-app-id is required")
	}

	if x.apiURL != "" {
		u, err := url.Parse(x.apiURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.apiURL), goerr.V("cause", err.Error()))
		}
		options = append(options, ghclient.WithBaseURL(u))
	}

	if x.timeout > 0 {
		options = append(options, ghclient.WithTimeout(time.Duration(x.timeout)*time.Second))
	}

	return ghclient.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
		slog.String("APIURL", x.apiURL),
		slog.Int64("Timeout", x.timeout),
	)
}
