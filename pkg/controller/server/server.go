package server

import (
	"io/fs"
	"net/http"
	"strings"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultSinceDays  = 5
	defaultMaxCommits = 20
)

type Server struct {
	mux     *chi.Mux
	uc      interfaces.UseCase
	cfg     *config
	session *sessionManager
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is rendered by html/template or encoders
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

// FeedMeta is the channel metadata of RSS/Atom feeds.
type FeedMeta struct {
	Author      string
	AuthorEmail string
	// Description may contain "__repo__", replaced with display name of the repository
	Description string
}

type config struct {
	sharedToken   types.GitHubToken
	oauth         interfaces.OAuth
	sessionSecret types.SessionSecret
	baseURL       string
	sinceDays     int
	maxCommits    int
	feed          FeedMeta
}

type Option func(*config)

// WithSharedToken sets the token of the shared credential. It is only used to scope cache
// entries, so it may be empty when the shared credential is a GitHub App.
func WithSharedToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.sharedToken = token
	}
}

// WithOAuth enables GitHub sign-in. Sessions are signed with secret.
func WithOAuth(client interfaces.OAuth, secret types.SessionSecret) Option {
	return func(cfg *config) {
		cfg.oauth = client
		cfg.sessionSecret = secret
	}
}

// WithBaseURL sets the public URL of the server, used for absolute links in feeds.
func WithBaseURL(u string) Option {
	return func(cfg *config) {
		cfg.baseURL = strings.TrimSuffix(u, "/")
	}
}

func WithSinceDays(days int) Option {
	return func(cfg *config) {
		cfg.sinceDays = days
	}
}

func WithMaxCommits(n int) Option {
	return func(cfg *config) {
		cfg.maxCommits = n
	}
}

func WithFeedMeta(meta FeedMeta) Option {
	return func(cfg *config) {
		cfg.feed = meta
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		sinceDays:  defaultSinceDays,
		maxCommits: defaultMaxCommits,
		feed: FeedMeta{
			Description: "Track changes in __repo__",
		},
	}
	for _, opt := range options {
		opt(cfg)
	}

	x := &Server{
		uc:  uc,
		cfg: cfg,
	}
	if cfg.oauth != nil {
		x.session = newSessionManager(cfg.sessionSecret, strings.HasPrefix(cfg.baseURL, "https://"))
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // static directory is embedded at build time
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/favicon.ico", x.favicon)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	if cfg.oauth != nil {
		r.Get("/login", x.login)
		r.Get("/login/callback", x.loginCallback)
		r.Get("/logout", x.logout)
	}

	// Feed and API routes take precedence over HTML pages. Commit pages of repositories owned by
	// a user named "feed" or "api" are served only through the feed and API routes.
	r.Group(func(r chi.Router) {
		r.Use(x.authenticate(formatText))
		r.Get("/feed/{owner}/{repo}", x.getFeed)
		r.Get("/feed/{owner}/{repo}/*", x.getFeed)
	})
	r.Group(func(r chi.Router) {
		r.Use(x.authenticate(formatJSON))
		r.Get("/api/{owner}/{repo}", x.getCommitsAPI)
		r.Get("/api/{owner}/{repo}/*", x.getCommitsAPI)
	})
	r.Group(func(r chi.Router) {
		r.Use(x.authenticate(formatHTML))
		r.Get("/", x.getIndex)
		r.Get("/{owner}/{repo}", x.getLanding)
		r.Get("/{owner}/{repo}/*", x.getCommitsPage)
	})

	x.mux = r
	return x
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func (x *Server) loginEnabled() bool {
	return x.cfg.oauth != nil
}
