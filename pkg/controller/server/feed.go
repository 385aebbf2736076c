package server

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/feeds"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	contentTypeRSS  = "application/rss+xml; charset=utf-8"
	contentTypeAtom = "application/atom+xml; charset=utf-8"
)

func (x *Server) getFeed(w http.ResponseWriter, r *http.Request) {
	result, err := x.retrieveCommits(r, chi.URLParam(r, "*"))
	if err != nil {
		x.handleError(w, r, formatText, err)
		return
	}

	feed := x.buildFeed(r, result)

	var body, contentType string
	switch r.URL.Query().Get("format") {
	case "atom":
		body, err = feed.ToAtom()
		contentType = contentTypeAtom
	case "", "rss":
		rss := (&feeds.Rss{Feed: feed}).RssFeed()
		rss.Language = "en"
		body, err = feeds.ToXML(rss)
		contentType = contentTypeRSS
	default:
		x.handleError(w, r, formatText, goerr.Wrap(types.ErrInvalidRequest, "unsupported feed format", goerr.V("format", r.URL.Query().Get("format"))))
		return
	}
	if err != nil {
		x.handleError(w, r, formatText, goerr.Wrap(err, "failed to render feed"))
		return
	}

	w.Header().Set("Content-Type", contentType)
	safeWrite(w, http.StatusOK, []byte(body))
}

func (x *Server) buildFeed(r *http.Request, result *retrieval) *feeds.Feed {
	self := x.absoluteURL(r, r.URL.RequestURI())
	display := result.config.DisplayName

	feed := &feeds.Feed{
		Id:          self,
		Title:       fmt.Sprintf("%s changes in section '%s'", display, result.folder),
		Link:        &feeds.Link{Href: self, Rel: "alternate"},
		Description: strings.ReplaceAll(x.cfg.feed.Description, "__repo__", display),
		Author: &feeds.Author{
			Name:  x.cfg.feed.Author,
			Email: x.cfg.feed.AuthorEmail,
		},
		Created: logging.CtxTime(r.Context()),
	}
	if icon := result.config.Icon; icon != "" {
		feed.Image = &feeds.Image{
			Url:   x.absoluteURL(r, "/static/"+icon),
			Title: display,
			Link:  self,
		}
	}

	commits := result.commits
	if len(commits) > x.cfg.maxCommits {
		commits = commits[:x.cfg.maxCommits]
	}
	for _, c := range newCommitViews(commits) {
		feed.Add(&feeds.Item{
			Id:      c.URL,
			Title:   firstLine(c.Message),
			Link:    &feeds.Link{Href: c.URL},
			Author:  &feeds.Author{Name: c.Author},
			Content: html.EscapeString(c.Message),
			Created: c.Date,
		})
	}
	if len(commits) > 0 {
		feed.Updated = commits[0].Date
	}

	return feed
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// absoluteURL returns the external URL of path on this server.
func (x *Server) absoluteURL(r *http.Request, path string) string {
	if x.cfg.baseURL != "" {
		return x.cfg.baseURL + path
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + path
}
