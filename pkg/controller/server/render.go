package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"html"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04 UTC")
	},
	"firstLine": firstLine,
	"trimSlash": func(s string) string {
		return strings.Trim(s, "/")
	},
}).ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Title        string
	User         string
	LoginEnabled bool
	Shared       bool
	SinceDays    int
	MaxCommits   int
	Content      any
}

func (x *Server) newPageData(r *http.Request, title string, content any) *pageData {
	data := &pageData{
		Title:        title,
		LoginEnabled: x.loginEnabled(),
		Shared:       true,
		SinceDays:    x.cfg.sinceDays,
		MaxCommits:   x.cfg.maxCommits,
		Content:      content,
	}
	if caller := callerFrom(r.Context()); caller != nil {
		data.Shared = caller.Shared
		data.User = caller.Login
	}
	return data
}

func (x *Server) renderHTML(w http.ResponseWriter, r *http.Request, code int, name, title string, content any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, x.newPageData(r, title, content)); err != nil {
		errutil.HandleError(r.Context(), "failed to render page", goerr.Wrap(err, "failed to execute template", goerr.V("template", name)))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		safeWrite(w, http.StatusInternalServerError, []byte("Internal server error"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeWrite(w, code, buf.Bytes())
}

func renderJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleError(r.Context(), "failed to encode response", goerr.Wrap(err, "failed to marshal JSON"))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

func renderText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	safeWrite(w, code, []byte(msg))
}

// commitView is a commit decoded for templates and feeds, which escape on output by themselves.
type commitView struct {
	SHA     string
	Author  string
	Message string
	URL     string
	Date    time.Time
}

func newCommitViews(commits []*model.Commit) []*commitView {
	views := make([]*commitView, len(commits))
	for i, c := range commits {
		views[i] = &commitView{
			SHA:     html.UnescapeString(c.SHA),
			Author:  html.UnescapeString(c.Author),
			Message: html.UnescapeString(c.Message),
			URL:     html.UnescapeString(c.URL),
			Date:    c.Date,
		}
	}
	return views
}
