package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra/jenkins"
)

type Jenkins struct {
	url        string
	user       string
	token      types.CIAPIToken `masq:"secret"`
	defaultJob string
}

func (x *Jenkins) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jenkins-url",
			Usage:       "Jenkins base URL. Build monitoring is disabled if not set",
			Category:    "Jenkins",
			Destination: &x.url,
			Sources:     cli.EnvVars("PIPEBOARD_JENKINS_URL"),
		},
		&cli.StringFlag{
			Name:        "jenkins-user",
			Usage:       "Jenkins user",
			Category:    "Jenkins",
			Destination: &x.user,
			Sources:     cli.EnvVars("PIPEBOARD_JENKINS_USER"),
		},
		&cli.StringFlag{
			Name:        "jenkins-api-token",
			Usage:       "Jenkins API token",
			Category:    "Jenkins",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("PIPEBOARD_JENKINS_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "jenkins-default-job",
			Usage:       "Job used when it cannot be derived from the repository name",
			Category:    "Jenkins",
			Destination: &x.defaultJob,
			Sources:     cli.EnvVars("PIPEBOARD_JENKINS_DEFAULT_JOB"),
		},
	}
}

func (x Jenkins) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.String("User", x.user),
		slog.Int("token.len", len(x.token)),
		slog.String("DefaultJob", x.defaultJob),
	)
}

func (x Jenkins) DefaultJob() types.JobName {
	return types.JobName(x.defaultJob)
}

// New returns nil without error when Jenkins is not configured.
func (x Jenkins) New() (interfaces.CI, error) {
	if x.url == "" {
		return nil, nil
	}

	client, err := jenkins.New(x.url, x.user, x.token)
	if err != nil {
		return nil, err
	}
	return client, nil
}
