package server

import (
	"context"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
)

type ctxCallerKey struct{}

// withCaller returns a new context carrying the credential used for the request.
func withCaller(ctx context.Context, caller *model.Caller) context.Context {
	return context.WithValue(ctx, ctxCallerKey{}, caller)
}

// callerFrom returns the caller set by the authentication middleware. It returns nil if the
// request did not go through the middleware.
func callerFrom(ctx context.Context) *model.Caller {
	if caller, ok := ctx.Value(ctxCallerKey{}).(*model.Caller); ok {
		return caller
	}
	return nil
}
