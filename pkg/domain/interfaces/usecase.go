package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type UseCase interface {
	// Ingress
	NormalizeWebhook(ctx context.Context, eventType types.GitHubEventType, body []byte) (*model.PipelineEvent, error)
	HandlePipelineEvent(ctx context.Context, ev *model.PipelineEvent) (*model.EventResult, error)
	HandleDeployment(ctx context.Context, n *model.DeploymentNotification) (*model.NotificationResult, error)
	HandleDeploymentFailure(ctx context.Context, f *model.DeploymentFailure) (*model.NotificationResult, error)
	RefreshContainerStatus(ctx context.Context, req *model.ContainerStatusRequest) (*model.NotificationResult, error)

	// Build monitor
	StartMonitor(ctx context.Context, target model.MonitorTarget) bool
	RunMonitor(ctx context.Context, target model.MonitorTarget) error
	ListMonitors(ctx context.Context) []model.MonitorRun
	TriggerBuild(ctx context.Context, job types.JobName, params map[string]string) (model.QueueLocation, error)

	// Operational passthroughs
	ListBoardItems(ctx context.Context) ([]*model.BoardItem, error)
	CommentBoardItem(ctx context.Context, id types.ItemID, body string) error
	GetLastBuild(ctx context.Context, job types.JobName) (*model.BuildRecord, error)
	GetBuildDetail(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.BuildDetail, error)
	ListContainers(ctx context.Context) ([]model.ContainerSummary, error)
	InspectContainer(ctx context.Context, name types.ContainerName) (*model.ContainerRecord, error)
	ControlContainer(ctx context.Context, name types.ContainerName, op model.ContainerOp) error
	ContainerLogs(ctx context.Context, name types.ContainerName, lines int) (string, error)
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
	GetCommit(ctx context.Context, owner, repo string, sha types.CommitSHA) (*github.RepositoryCommit, error)
	GetPullRequest(ctx context.Context, owner, repo string, number types.PullRequestNumber) (*github.PullRequest, error)
}
