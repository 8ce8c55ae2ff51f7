package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/cli/config"
	"github.com/m-mizutani/pipeboard/pkg/controller/server"
	"github.com/m-mizutani/pipeboard/pkg/infra"
	"github.com/m-mizutani/pipeboard/pkg/usecase"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr string

		board    config.Board
		jenkins  config.Jenkins
		github   config.GitHub
		docker   config.Docker
		monitor  config.Monitor
		identity config.Identity
		sentry   config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("PIPEBOARD_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			board.Flags(),
			jenkins.Flags(),
			github.Flags(),
			docker.Flags(),
			monitor.Flags(),
			identity.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			logger.Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Board", board),
				slog.Any("Jenkins", jenkins),
				slog.Any("GitHub", github),
				slog.Any("Docker", docker),
				slog.Any("Monitor", monitor),
				slog.Any("Identity", identity),
				slog.Any("Sentry", sentry),
			)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			boardClient, err := board.New()
			if err != nil {
				return err
			}
			ci, err := jenkins.New()
			if err != nil {
				return err
			}
			sc, err := github.New()
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithBoard(boardClient),
				infra.WithCI(ci),
				infra.WithSourceControl(sc),
				infra.WithContainerRuntime(docker.New()),
			)
			uc := usecase.New(clients,
				usecase.WithIdentityPolicy(identity.Policy()),
				usecase.WithNameLimit(board.NameLimit()),
				usecase.WithDefaultJob(jenkins.DefaultJob()),
				usecase.WithMonitorConfig(monitor.Config()),
			)
			s := server.New(uc, server.WithWebhookSecret(github.WebhookSecret()))

			return runServer(ctx, addr, s.Mux())
		},
	}
}

func runServer(ctx context.Context, addr string, handler http.Handler) error {
	serverErr := make(chan error, 1)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		logging.From(ctx).Info("starting http server", "addr", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", addr))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err

	case sig := <-quit:
		logging.From(ctx).Info("shutting down server", "signal", sig)

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
	}

	return nil
}
