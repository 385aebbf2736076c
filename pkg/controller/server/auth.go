package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// authenticate resolves the caller of a request. A request with a valid session uses the token
// of the user, others use the shared credential.
func (x *Server) authenticate(f format) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			caller := model.NewSharedCaller(x.cfg.sharedToken)

			if x.session != nil {
				if s := x.session.read(r); s != nil {
					login, err := x.uc.AuthenticateUser(ctx, s.Token)
					if err != nil {
						x.handleError(w, r, f, err)
						return
					}
					caller = model.NewUserCaller(s.Token, login)
				}
			}

			logger := logging.From(ctx).With(slog.Bool("shared_credential", caller.Shared))
			if caller.Login != "" {
				logger = logger.With(slog.String("login", caller.Login))
			}
			ctx = logging.With(ctx, logger)

			next.ServeHTTP(w, r.WithContext(withCaller(ctx, caller)))
		})
	}
}

func (x *Server) login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	x.session.setCookie(w, stateCookieName, state, stateLifetime)
	if next := localReferrer(r); next != "" {
		x.session.setCookie(w, nextCookieName, next, stateLifetime)
	}

	http.Redirect(w, r, x.cfg.oauth.AuthCodeURL(state), http.StatusFound)
}

func (x *Server) loginCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != q.Get("state") {
		x.handleError(w, r, formatText, goerr.Wrap(types.ErrInvalidRequest, "OAuth state mismatch"))
		return
	}
	x.session.setCookie(w, stateCookieName, "", -1)

	code := q.Get("code")
	if code == "" {
		x.handleError(w, r, formatText, goerr.Wrap(types.ErrInvalidRequest, "OAuth code is missing"))
		return
	}

	token, err := x.cfg.oauth.Exchange(ctx, code)
	if err != nil {
		x.handleError(w, r, formatText, err)
		return
	}

	login, err := x.uc.AuthenticateUser(ctx, token)
	if err != nil {
		x.handleError(w, r, formatText, err)
		return
	}

	if err := x.session.write(w, &session{Token: token, Login: login}); err != nil {
		x.handleError(w, r, formatText, err)
		return
	}
	logging.From(ctx).Info("User signed in", slog.String("login", login))

	next := "/"
	if c, err := r.Cookie(nextCookieName); err == nil && isLocalPath(c.Value) {
		next = c.Value
	}
	x.session.setCookie(w, nextCookieName, "", -1)

	http.Redirect(w, r, next, http.StatusFound)
}

// logout removes the session. The GitHub token itself is not revoked.
func (x *Server) logout(w http.ResponseWriter, r *http.Request) {
	x.session.clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// localReferrer returns path of the referrer if it points to this server.
func localReferrer(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host {
		return ""
	}

	path := ref.RequestURI()
	if !isLocalPath(path) || strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/logout") {
		return ""
	}
	return path
}

func isLocalPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.Contains(path, `\`)
}

