package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// Failures reported by the GitHub adapter
	ErrNotFound      = goerr.New("repository not found")
	ErrPolicyBlocked = goerr.New("blocked by organization SAML enforcement")
	ErrRateLimited   = goerr.New("rate limit exceeded")
	ErrUnauthorized  = goerr.New("credential is not authorized")
	ErrUnavailable   = goerr.New("GitHub is unavailable")

	// Failures raised by the commit retrieval
	ErrRetrievalFailure  = goerr.New("error while listing commits")
	ErrFormattingFailure = goerr.New("error while formatting commits")

	ErrInvalidRequest = goerr.New("invalid request")
)
