package server

import (
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/types"
)

const (
	SessionCookieNameForTest = sessionCookieName
	StateCookieNameForTest   = stateCookieName
	NextCookieNameForTest    = nextCookieName
)

var (
	CallerFromForTest    = callerFrom
	WithCallerForTest    = withCaller
	LocalReferrerForTest = localReferrer
)

func EncodeSessionForTest(secret types.SessionSecret, token types.GitHubToken, login string, issuedAt time.Time) (string, error) {
	m := newSessionManager(secret, false)
	m.now = func() time.Time { return issuedAt }
	return m.encode(&session{Token: token, Login: login})
}

func DecodeSessionForTest(secret types.SessionSecret, raw string) (types.GitHubToken, string, error) {
	s, err := newSessionManager(secret, false).decode(raw)
	if err != nil {
		return "", "", err
	}
	return s.Token, s.Login, nil
}
