package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/infra/docker"
)

type Docker struct {
	path     string
	disabled bool
}

func (x *Docker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "docker-path",
			Usage:       "Path to docker binary",
			Category:    "Docker",
			Destination: &x.path,
			Sources:     cli.EnvVars("PIPEBOARD_DOCKER_PATH"),
			Value:       "docker",
		},
		&cli.BoolFlag{
			Name:        "docker-disabled",
			Usage:       "Disable container inspection and control",
			Category:    "Docker",
			Destination: &x.disabled,
			Sources:     cli.EnvVars("PIPEBOARD_DOCKER_DISABLED"),
		},
	}
}

func (x Docker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
		slog.Bool("Disabled", x.disabled),
	)
}

// New returns nil when container features are disabled.
func (x Docker) New() interfaces.ContainerRuntime {
	if x.disabled {
		return nil
	}
	return docker.New(docker.WithPath(x.path))
}
