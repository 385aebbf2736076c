package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type indexPage struct {
	Repositories []*model.RepoConfig
}

type landingPage struct {
	Config  *model.RepoConfig
	Repo    *model.GitHubRepository
	Entries []*model.DirEntry
}

type commitsPage struct {
	Config  *model.RepoConfig
	Repo    *model.GitHubRepository
	Folder  string
	Since   int
	Folders []*model.DirEntry
	Commits []*commitView
}

// commitsResponse is the body of the JSON API. Strings of commits are HTML escaped.
type commitsResponse struct {
	Repository *model.GitHubRepository `json:"repository"`
	Folder     string                  `json:"folder"`
	Since      int                     `json:"since"`
	Commits    []*model.Commit         `json:"commits"`
}

func (x *Server) getIndex(w http.ResponseWriter, r *http.Request) {
	x.renderHTML(w, r, http.StatusOK, "index.html", "Docs watch", &indexPage{
		Repositories: x.uc.RepoConfigs(),
	})
}

func (x *Server) getLanding(w http.ResponseWriter, r *http.Request) {
	cfg := x.uc.RepoConfig(chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))

	landing, err := x.uc.GetLanding(r.Context(), x.requestCaller(r), cfg)
	if err != nil {
		x.handleError(w, r, formatHTML, err)
		return
	}

	x.renderHTML(w, r, http.StatusOK, "landing.html", cfg.DisplayName, &landingPage{
		Config:  landing.Config,
		Repo:    landing.Repo,
		Entries: landing.Entries,
	})
}

func (x *Server) getCommitsPage(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "*")
	if strings.Trim(folder, "/") == "" {
		x.handleError(w, r, formatHTML, goerr.Wrap(types.ErrInvalidRequest, "Missing folder or file to look for changes"))
		return
	}

	result, err := x.retrieveCommits(r, folder)
	if err != nil {
		x.handleError(w, r, formatHTML, err)
		return
	}

	x.renderHTML(w, r, http.StatusOK, "commits.html", result.config.DisplayName, &commitsPage{
		Config:  result.config,
		Repo:    result.repo,
		Folder:  result.folder,
		Since:   result.since,
		Folders: x.subFolders(r, result),
		Commits: newCommitViews(result.commits),
	})
}

// subFolders returns folders under the requested folder for navigation. Failure of listing does
// not fail the page.
func (x *Server) subFolders(r *http.Request, result *retrieval) []*model.DirEntry {
	entries, err := x.uc.ListFolder(r.Context(), x.requestCaller(r), result.repo, result.folder)
	if err != nil {
		logging.From(r.Context()).Warn("failed to list sub folders", slog.Any("error", err))
		return nil
	}

	var folders []*model.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry)
		}
	}
	return folders
}

func (x *Server) getCommitsAPI(w http.ResponseWriter, r *http.Request) {
	result, err := x.retrieveCommits(r, chi.URLParam(r, "*"))
	if err != nil {
		x.handleError(w, r, formatJSON, err)
		return
	}

	renderJSON(w, r, http.StatusOK, &commitsResponse{
		Repository: result.repo,
		Folder:     result.folder,
		Since:      result.since,
		Commits:    result.commits,
	})
}

func (x *Server) favicon(w http.ResponseWriter, r *http.Request) {
	body, err := staticFS.ReadFile("static/favicon.svg")
	if err != nil {
		x.handleError(w, r, formatText, goerr.Wrap(err, "failed to read favicon"))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	safeWrite(w, http.StatusOK, body)
}

type retrieval struct {
	config  *model.RepoConfig
	repo    *model.GitHubRepository
	folder  string
	since   int
	commits []*model.Commit
}

// retrieveCommits resolves the repository in the URL and returns its commits in folder. The
// watched folder of the repository is used when folder is empty.
func (x *Server) retrieveCommits(r *http.Request, folder string) (*retrieval, error) {
	ctx := r.Context()
	caller := x.requestCaller(r)
	cfg := x.uc.RepoConfig(chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))

	since, err := x.parseSince(r)
	if err != nil {
		return nil, err
	}

	if strings.Trim(folder, "/") == "" {
		folder = cfg.Folder
	}

	repo, err := x.uc.LookupRepository(ctx, caller, cfg)
	if err != nil {
		return nil, err
	}

	commits, err := x.uc.GetCommits(ctx, &model.GetCommitsInput{
		Caller:    caller,
		Repo:      repo,
		Folder:    folder,
		SinceDays: since,
		CacheKey:  caller.CacheKey(cfg.Owner, cfg.Name),
	})
	if err != nil {
		return nil, err
	}

	return &retrieval{
		config:  cfg,
		repo:    repo,
		folder:  folder,
		since:   since,
		commits: commits,
	}, nil
}

func (x *Server) parseSince(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return x.cfg.sinceDays, nil
	}

	since, err := strconv.Atoi(raw)
	if err != nil || since < 0 || since > model.MaxSinceDays {
		return 0, goerr.Wrap(types.ErrInvalidRequest, "since must be a number of days in range", goerr.V("since", raw))
	}
	return since, nil
}
