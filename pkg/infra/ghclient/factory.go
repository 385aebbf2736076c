package ghclient

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 30 * time.Second

// Factory builds Clients for the shared credential and for signed-in users.
type Factory struct {
	token     types.GitHubToken
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey

	baseURL   *url.URL
	transport http.RoundTripper
	timeout   time.Duration

	shared *Client
}

var _ interfaces.GitHubFactory = (*Factory)(nil)

type Option func(*Factory)

// WithSharedToken uses a personal access token as the shared credential.
func WithSharedToken(token types.GitHubToken) Option {
	return func(x *Factory) {
		x.token = token
	}
}

// WithGitHubApp uses a GitHub App installation as the shared credential.
func WithGitHubApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(x *Factory) {
		x.appID = appID
		x.installID = installID
		x.pem = pem
	}
}

// WithBaseURL changes the REST API endpoint, e.g. for GitHub Enterprise Server or tests.
func WithBaseURL(u *url.URL) Option {
	return func(x *Factory) {
		x.baseURL = u
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Factory) {
		x.transport = tr
	}
}

func WithTimeout(d time.Duration) Option {
	return func(x *Factory) {
		x.timeout = d
	}
}

func New(options ...Option) (*Factory, error) {
	x := &Factory{
		transport: http.DefaultTransport,
		timeout:   DefaultTimeout,
	}
	for _, opt := range options {
		opt(x)
	}

	if x.baseURL != nil && !strings.HasSuffix(x.baseURL.Path, "/") {
		u := *x.baseURL
		u.Path += "/"
		x.baseURL = &u
	}

	switch {
	case x.token != "":
		x.shared = x.ForToken(x.token).(*Client)

	case x.appID != 0 || x.pem != "" || x.installID != 0:
		if x.appID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App ID is empty")
		}
		if x.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is empty")
		}
		if x.pem == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is empty")
		}

		itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(x.installID), []byte(x.pem))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport",
				goerr.V("appID", x.appID),
				goerr.V("installID", x.installID),
			)
		}
		if x.baseURL != nil {
			itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
		}
		x.shared = x.newClient(itr)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "shared GitHub credential is required (token or GitHub App)")
	}

	return x, nil
}

// Shared returns the client of the process-wide credential.
func (x *Factory) Shared() interfaces.GitHub {
	return x.shared
}

// ForToken returns a client authenticated by token of a signed-in user.
func (x *Factory) ForToken(token types.GitHubToken) interfaces.GitHub {
	tr := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
		Base:   x.transport,
	}
	return x.newClient(tr)
}

func (x *Factory) newClient(tr http.RoundTripper) *Client {
	client := github.NewClient(&http.Client{
		Transport: tr,
		Timeout:   x.timeout,
	})
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return &Client{client: client}
}
