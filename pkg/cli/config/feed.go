package config

import (
	"log/slog"

	"github.com/m-mizutani/docswatch/pkg/controller/server"
	"github.com/urfave/cli/v3"
)

// Feed is the public facing metadata of the server.
type Feed struct {
	author      string
	authorEmail string
	baseURL     string
}

func (x *Feed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "app-author",
			Usage:       "Author name in feeds",
			Category:    "Feed",
			Destination: &x.author,
			Sources:     cli.EnvVars("DOCSWATCH_APP_AUTHOR"),
		},
		&cli.StringFlag{
			Name:        "app-author-email",
			Usage:       "Author email in feeds",
			Category:    "Feed",
			Destination: &x.authorEmail,
			Sources:     cli.EnvVars("DOCSWATCH_APP_AUTHOR_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public URL of the server, e.g. https://docswatch.example.com",
			Category:    "Feed",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("DOCSWATCH_BASE_URL"),
		},
	}
}

func (x Feed) BaseURL() string {
	return x.baseURL
}

func (x Feed) Meta() server.FeedMeta {
	return server.FeedMeta{
		Author:      x.author,
		AuthorEmail: x.authorEmail,
		Description: "Track changes in __repo__",
	}
}

func (x Feed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Author", x.author),
		slog.String("AuthorEmail", x.authorEmail),
		slog.String("BaseURL", x.baseURL),
	)
}
