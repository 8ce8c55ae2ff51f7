package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra/github"
)

type GitHub struct {
	webhookSecret types.GitHubWebhookSecret `masq:"secret"`
	token         types.GitHubToken         `masq:"secret"`

	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Secret to validate webhook signatures. Signatures are not checked if not set",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("PIPEBOARD_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("PIPEBOARD_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("PIPEBOARD_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("PIPEBOARD_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("PIPEBOARD_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webhookSecret.len", len(x.webhookSecret)),
		slog.Int("token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallationID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

func (x GitHub) WebhookSecret() types.GitHubWebhookSecret {
	return x.webhookSecret
}

// New returns a source-control client authenticated by token or by GitHub App. It
// returns nil without error when neither is configured.
func (x GitHub) New() (interfaces.SourceControl, error) {
	switch {
	case x.token != "" && x.appID != 0:
		return nil, goerr.Wrap(types.ErrInvalidOption, "github-token and github-app-id are exclusive")

	case x.token != "":
		client, err := github.NewWithToken(x.token)
		if err != nil {
			return nil, err
		}
		return client, nil

	case x.appID != 0:
		client, err := github.NewWithApp(x.appID, x.installID, x.privateKey)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, nil
	}
}
