package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/cli/config"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	names := flagNames(sentryConfig.Flags())

	gt.V(t, len(names)).Equal(3)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])
}

func TestSentryConfigureWithoutDSN(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flush := gt.R1(sentryConfig.Configure(t.Context())).NoError(t)
	flush()
}
