package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/errutil"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
)

type format int

const (
	formatHTML format = iota
	formatJSON
	formatText
)

type errorKind struct {
	kind    error
	status  int
	message string
}

var errorKinds = []errorKind{
	{kind: types.ErrInvalidRequest, status: http.StatusBadRequest, message: "Invalid request"},
	{kind: types.ErrNotFound, status: http.StatusNotFound, message: "Repository not found on GitHub"},
	{kind: types.ErrPolicyBlocked, status: http.StatusForbidden, message: "Access blocked by organization SAML enforcement"},
	{kind: types.ErrRateLimited, status: http.StatusTooManyRequests, message: "Rate limit exceeded"},
	{kind: types.ErrUnauthorized, status: http.StatusUnauthorized, message: "Authentication required"},
	{kind: types.ErrRetrievalFailure, status: http.StatusInternalServerError, message: "Error while listing commits"},
	{kind: types.ErrFormattingFailure, status: http.StatusInternalServerError, message: "Error while formatting commits"},
}

func classifyError(err error) (int, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			return k.status, k.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

type errorPage struct {
	Code      int
	Message   string
	LoginHint bool
}

type samlErrorPage struct {
	Owner   string
	Name    string
	Display string
}

// handleError writes an error response in the format f. Unexpected errors are reported.
func (x *Server) handleError(w http.ResponseWriter, r *http.Request, f format, err error) {
	ctx := r.Context()
	status, msg := classifyError(err)

	if status >= http.StatusInternalServerError {
		errutil.HandleError(ctx, "failed to handle request", err)
	} else {
		logging.From(ctx).Warn("request failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	if f == formatHTML && status == http.StatusUnauthorized && x.session != nil {
		logging.From(ctx).Warn("User used to be authenticated but is not anymore")
		x.session.clear(w)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	switch f {
	case formatJSON:
		renderJSON(w, r, status, map[string]string{"error": msg})

	case formatText:
		renderText(w, status, msg)

	default:
		if status == http.StatusForbidden && errors.Is(err, types.ErrPolicyBlocked) {
			owner, name := chi.URLParam(r, "owner"), chi.URLParam(r, "repo")
			page := &samlErrorPage{Owner: owner, Name: name}
			if owner != "" && name != "" {
				page.Display = x.uc.RepoConfig(owner, name).DisplayName
			}
			x.renderHTML(w, r, status, "error_saml.html", "Access blocked", page)
			return
		}

		caller := callerFrom(ctx)
		x.renderHTML(w, r, status, "error.html", msg, &errorPage{
			Code:      status,
			Message:   msg,
			LoginHint: status == http.StatusTooManyRequests && x.loginEnabled() && (caller == nil || caller.Shared),
		})
	}
}

// requestCaller returns the caller of the request, falling back to the shared credential.
func (x *Server) requestCaller(r *http.Request) *model.Caller {
	if caller := callerFrom(r.Context()); caller != nil {
		return caller
	}
	return model.NewSharedCaller(x.cfg.sharedToken)
}
