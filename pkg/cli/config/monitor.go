package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/usecase"
)

type Monitor struct {
	settleDelay  time.Duration
	pollInterval time.Duration
	deployDelay  time.Duration
	stageDelay   time.Duration
}

func (x *Monitor) Flags() []cli.Flag {
	defaults := usecase.DefaultMonitorConfig()
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "monitor-settle-delay",
			Usage:       "Wait before the first build lookup after a merge",
			Category:    "Monitor",
			Destination: &x.settleDelay,
			Sources:     cli.EnvVars("PIPEBOARD_MONITOR_SETTLE_DELAY"),
			Value:       defaults.SettleDelay,
		},
		&cli.DurationFlag{
			Name:        "monitor-poll-interval",
			Usage:       "Interval of build state polling",
			Category:    "Monitor",
			Destination: &x.pollInterval,
			Sources:     cli.EnvVars("PIPEBOARD_MONITOR_POLL_INTERVAL"),
			Value:       defaults.PollInterval,
		},
		&cli.DurationFlag{
			Name:        "monitor-deploy-delay",
			Usage:       "Wait before inspecting the deployed container",
			Category:    "Monitor",
			Destination: &x.deployDelay,
			Sources:     cli.EnvVars("PIPEBOARD_MONITOR_DEPLOY_DELAY"),
			Value:       defaults.DeployDelay,
		},
		&cli.DurationFlag{
			Name:        "monitor-stage-delay",
			Usage:       "Wait between stage updates",
			Category:    "Monitor",
			Destination: &x.stageDelay,
			Sources:     cli.EnvVars("PIPEBOARD_MONITOR_STAGE_DELAY"),
			Value:       defaults.StageDelay,
		},
	}
}

func (x Monitor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("SettleDelay", x.settleDelay),
		slog.Duration("PollInterval", x.pollInterval),
		slog.Duration("DeployDelay", x.deployDelay),
		slog.Duration("StageDelay", x.stageDelay),
	)
}

func (x Monitor) Config() usecase.MonitorConfig {
	return usecase.MonitorConfig{
		SettleDelay:  x.settleDelay,
		PollInterval: x.pollInterval,
		DeployDelay:  x.deployDelay,
		StageDelay:   x.stageDelay,
	}
}
