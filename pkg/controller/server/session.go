package server

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	sessionCookieName = "docswatch_session"
	stateCookieName   = "docswatch_oauth_state"
	nextCookieName    = "docswatch_next"

	sessionIssuer   = "docswatch"
	defaultLifetime = 7 * 24 * time.Hour
	stateLifetime   = 10 * time.Minute
)

type sessionClaims struct {
	Token string `json:"tok"`
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// session holds the GitHub token of a signed-in user in a signed cookie.
type session struct {
	Token types.GitHubToken
	Login string
}

type sessionManager struct {
	secret   types.SessionSecret
	lifetime time.Duration
	secure   bool
	now      func() time.Time
}

func newSessionManager(secret types.SessionSecret, secure bool) *sessionManager {
	return &sessionManager{
		secret:   secret,
		lifetime: defaultLifetime,
		secure:   secure,
		now:      time.Now,
	}
}

func (x *sessionManager) encode(s *session) (string, error) {
	now := x.now()
	claims := &sessionClaims{
		Token: string(s.Token),
		Login: s.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   s.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(x.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(x.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign session")
	}
	return signed, nil
}

func (x *sessionManager) decode(raw string) (*session, error) {
	var claims sessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if _, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(x.secret), nil
	}); err != nil {
		return nil, goerr.Wrap(types.ErrUnauthorized, "invalid session", goerr.V("cause", err.Error()))
	}
	if claims.Issuer != sessionIssuer || claims.Token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "invalid session claims")
	}

	return &session{
		Token: types.GitHubToken(claims.Token),
		Login: claims.Login,
	}, nil
}

// read returns the session of the request, or nil if the request has no valid session.
func (x *sessionManager) read(r *http.Request) *session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	s, err := x.decode(cookie.Value)
	if err != nil {
		return nil
	}
	return s
}

func (x *sessionManager) write(w http.ResponseWriter, s *session) error {
	value, err := x.encode(s)
	if err != nil {
		return err
	}

	x.setCookie(w, sessionCookieName, value, x.lifetime)
	return nil
}

func (x *sessionManager) clear(w http.ResponseWriter) {
	x.setCookie(w, sessionCookieName, "", -1)
}

func (x *sessionManager) setCookie(w http.ResponseWriter, name, value string, lifetime time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if lifetime < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(lifetime.Seconds())
	}

	http.SetCookie(w, cookie)
}
