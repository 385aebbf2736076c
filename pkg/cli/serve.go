package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/docswatch/pkg/cli/config"
	"github.com/m-mizutani/docswatch/pkg/controller/server"
	"github.com/m-mizutani/docswatch/pkg/utils/logging"
	"github.com/m-mizutani/docswatch/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		ucCfg  useCaseConfig
		oauth  config.OAuth
		feed   config.Feed
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("DOCSWATCH_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			ucCfg.github.Flags(),
			oauth.Flags(),
			ucCfg.cache.Flags(),
			ucCfg.retrieval.Flags(),
			ucCfg.registry.Flags(),
			feed.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", ucCfg.github),
				slog.Any("OAuth", oauth),
				slog.Any("Cache", ucCfg.cache),
				slog.Any("Retrieval", ucCfg.retrieval),
				slog.Any("Registry", ucCfg.registry),
				slog.Any("Feed", feed),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, stores, err := ucCfg.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(stores)

			serverOptions := []server.Option{
				server.WithSharedToken(ucCfg.github.SharedToken()),
				server.WithBaseURL(feed.BaseURL()),
				server.WithSinceDays(ucCfg.retrieval.SinceDays()),
				server.WithMaxCommits(ucCfg.retrieval.MaxCommits()),
				server.WithFeedMeta(feed.Meta()),
			}

			oauthClient, err := oauth.NewClient(feed.BaseURL())
			if err != nil {
				return err
			}
			if oauthClient != nil {
				secret, err := oauth.SessionSecret(ctx)
				if err != nil {
					return err
				}
				serverOptions = append(serverOptions, server.WithOAuth(oauthClient, secret))
			} else {
				logging.Default().Info("GitHub sign-in is disabled, all requests use the shared credential")
			}

			s := server.New(uc, serverOptions...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
