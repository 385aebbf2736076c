package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/infra/oauth"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// OAuth enables sign-in with GitHub. Sign-in is disabled when client ID is empty.
type OAuth struct {
	clientID      types.GitHubClientID
	clientSecret  types.GitHubClientSecret
	sessionSecret types.SessionSecret
}

func (x *OAuth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth App client ID",
			Category:    "OAuth",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth App client secret",
			Category:    "OAuth",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("DOCSWATCH_GITHUB_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "Secret to sign session cookies. Random if empty",
			Category:    "OAuth",
			Destination: (*string)(&x.sessionSecret),
			Sources:     cli.EnvVars("DOCSWATCH_SESSION_SECRET"),
		},
	}
}

func (x OAuth) Enabled() bool {
	return x.clientID != ""
}

// NewClient returns nil when sign-in is disabled. baseURL is the public URL of the server and
// used to build the callback URL.
func (x OAuth) NewClient(baseURL string) (*oauth.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []oauth.Option
	if baseURL != "" {
		options = append(options, oauth.WithRedirectURL(strings.TrimSuffix(baseURL, "/")+"/login/callback"))
	}

	return oauth.New(x.clientID, x.clientSecret, options...)
}

// SessionSecret returns the configured secret, or generates a random one. Sessions signed with a
// generated secret do not survive restart.
func (x OAuth) SessionSecret(ctx context.Context) (types.SessionSecret, error) {
	if x.sessionSecret != "" {
		return x.sessionSecret, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to generate session secret")
	}
	logging.From(ctx).Warn("session secret is not configured, generated a random one")

	return types.SessionSecret(hex.EncodeToString(buf)), nil
}

func (x OAuth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ClientID", x.clientID),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.Int("SessionSecret.len", len(x.sessionSecret)),
	)
}
