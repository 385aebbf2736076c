package model

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/m-mizutani/docswatch/pkg/domain/types"
)

// Caller is the credential used to serve a request.
type Caller struct {
	Token types.GitHubToken
	// Shared is true when the request uses the pooled access token of the server
	Shared bool
	Login  string
}

func NewSharedCaller(token types.GitHubToken) *Caller {
	return &Caller{Token: token, Shared: true}
}

func NewUserCaller(token types.GitHubToken, login string) *Caller {
	return &Caller{Token: token, Login: login}
}

// TokenHash returns hex encoded SHA-256 of the token.
func (x *Caller) TokenHash() string {
	return HashToken(x.Token)
}

// CacheKey returns a key scoped to the repository and the credential of the caller.
func (x *Caller) CacheKey(owner, name string) types.CacheKey {
	return types.CacheKey(RepoKey(owner, name) + "@" + x.TokenHash())
}

func HashToken(token types.GitHubToken) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
