package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . CI SourceControl ContainerRuntime

import (
	"context"

	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// CI is a client of the continuous-integration server.
type CI interface {
	GetLastBuild(ctx context.Context, job types.JobName) (*model.BuildRecord, error)
	GetBuild(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.BuildRecord, error)
	GetStages(ctx context.Context, job types.JobName, number types.BuildNumber) ([]model.StageResult, error)
	GetTestReport(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.TestReport, error)
	GetConsole(ctx context.Context, job types.JobName, number types.BuildNumber) (string, error)
	// TriggerBuild returns the queue location of the scheduled build, not a build number.
	TriggerBuild(ctx context.Context, job types.JobName, params map[string]string) (model.QueueLocation, error)
	JobURL(job types.JobName) string
}

// SourceControl is a read-only client of the source-control API.
type SourceControl interface {
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
	GetCommit(ctx context.Context, owner, repo string, sha types.CommitSHA) (*github.RepositoryCommit, error)
	GetPullRequest(ctx context.Context, owner, repo string, number types.PullRequestNumber) (*github.PullRequest, error)
}

// ContainerRuntime runs the container engine's command interface.
type ContainerRuntime interface {
	List(ctx context.Context) ([]model.ContainerSummary, error)
	Inspect(ctx context.Context, name types.ContainerName) (*model.ContainerRecord, error)
	Start(ctx context.Context, name types.ContainerName) error
	Stop(ctx context.Context, name types.ContainerName) error
	Restart(ctx context.Context, name types.ContainerName) error
	Logs(ctx context.Context, name types.ContainerName, lines int) (string, error)
}
