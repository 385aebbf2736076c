package oauth

import (
	"context"

	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	oauthgh "golang.org/x/oauth2/github"
)

// Client runs the OAuth web application flow of GitHub.
type Client struct {
	config *oauth2.Config
}

var _ interfaces.OAuth = (*Client)(nil)

type Option func(*oauth2.Config)

// WithEndpoint replaces github.com endpoints, e.g. for GitHub Enterprise Server.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(cfg *oauth2.Config) {
		cfg.Endpoint = endpoint
	}
}

func WithRedirectURL(u string) Option {
	return func(cfg *oauth2.Config) {
		cfg.RedirectURL = u
	}
}

func WithScopes(scopes ...string) Option {
	return func(cfg *oauth2.Config) {
		cfg.Scopes = scopes
	}
}

func New(clientID types.GitHubClientID, clientSecret types.GitHubClientSecret, options ...Option) (*Client, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client ID is empty")
	}
	if clientSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client secret is empty")
	}

	cfg := &oauth2.Config{
		ClientID:     string(clientID),
		ClientSecret: string(clientSecret),
		Endpoint:     oauthgh.Endpoint,
	}
	for _, opt := range options {
		opt(cfg)
	}

	return &Client{config: cfg}, nil
}

func (x *Client) AuthCodeURL(state string) string {
	return x.config.AuthCodeURL(state)
}

func (x *Client) Exchange(ctx context.Context, code string) (types.GitHubToken, error) {
	token, err := x.config.Exchange(ctx, code)
	if err != nil {
		return "", goerr.Wrap(types.ErrUnauthorized, "failed to exchange OAuth code", goerr.V("cause", err.Error()))
	}
	if token.AccessToken == "" {
		return "", goerr.Wrap(types.ErrUnauthorized, "empty access token in OAuth response")
	}

	return types.GitHubToken(token.AccessToken), nil
}
