package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/usecase"
)

type Identity struct {
	stripTicketSuffix bool
}

func (x *Identity) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "strip-ticket-suffix",
			Usage:       "Strip a trailing 9-10 digit ticket ID from branch names",
			Category:    "Identity",
			Destination: &x.stripTicketSuffix,
			Sources:     cli.EnvVars("PIPEBOARD_STRIP_TICKET_SUFFIX"),
		},
	}
}

func (x Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("StripTicketSuffix", x.stripTicketSuffix),
	)
}

func (x Identity) Policy() usecase.IdentityPolicy {
	if x.stripTicketSuffix {
		return usecase.StripTrailingID
	}
	return usecase.KeepIdentity
}
