package cli

import (
	"context"

	"github.com/m-mizutani/pipeboard/pkg/cli/config"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "pipeboard",
		Usage: "Sync GitHub webhooks, Jenkins builds and containers to a project board",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			simulateCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			logging.Default().Debug("logging configured", "config", logCfg)
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
