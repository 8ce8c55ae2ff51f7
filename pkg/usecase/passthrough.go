package usecase

import (
	"context"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
)

func (x *UseCase) ci() (interfaces.CI, error) {
	ci := x.clients.CI()
	if ci == nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable, "CI is not configured")
	}
	return ci, nil
}

func (x *UseCase) board() (interfaces.Board, error) {
	board := x.clients.Board()
	if board == nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable, "board is not configured")
	}
	return board, nil
}

func (x *UseCase) sourceControl() (interfaces.SourceControl, error) {
	sc := x.clients.SourceControl()
	if sc == nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable, "source control is not configured")
	}
	return sc, nil
}

func (x *UseCase) ListBoardItems(ctx context.Context) ([]*model.BoardItem, error) {
	board, err := x.board()
	if err != nil {
		return nil, err
	}
	return board.ListItems(ctx)
}

func (x *UseCase) CommentBoardItem(ctx context.Context, id types.ItemID, body string) error {
	if body == "" {
		return goerr.Wrap(types.ErrValidationFailed, "comment body is empty")
	}
	board, err := x.board()
	if err != nil {
		return err
	}
	return board.CreateComment(ctx, id, body)
}

// TriggerBuild schedules a build. It returns the queue location, the build number is not known yet.
func (x *UseCase) TriggerBuild(ctx context.Context, job types.JobName, params map[string]string) (model.QueueLocation, error) {
	ci, err := x.ci()
	if err != nil {
		return "", err
	}
	if job == "" {
		job = x.defaultJob
	}
	if job == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "job name is required")
	}
	return ci.TriggerBuild(ctx, job, params)
}

func (x *UseCase) GetLastBuild(ctx context.Context, job types.JobName) (*model.BuildRecord, error) {
	ci, err := x.ci()
	if err != nil {
		return nil, err
	}
	return ci.GetLastBuild(ctx, job)
}

// GetBuildDetail returns a build with stages and console. Missing stages or
// console do not fail the call.
func (x *UseCase) GetBuildDetail(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.BuildDetail, error) {
	ci, err := x.ci()
	if err != nil {
		return nil, err
	}

	build, err := ci.GetBuild(ctx, job, number)
	if err != nil {
		return nil, err
	}
	detail := &model.BuildDetail{Build: build, Stages: []model.StageResult{}}

	if stages, err := ci.GetStages(ctx, job, number); err != nil {
		errutil.Warn(ctx, "stage list is not available", err)
	} else {
		detail.Stages = stages
	}

	if console, err := ci.GetConsole(ctx, job, number); err != nil {
		errutil.Warn(ctx, "console output is not available", err)
	} else {
		detail.Console = console
	}

	return detail, nil
}

func (x *UseCase) ListContainers(ctx context.Context) ([]model.ContainerSummary, error) {
	runtime, err := x.containerRuntime()
	if err != nil {
		return nil, err
	}
	return runtime.List(ctx)
}

func (x *UseCase) InspectContainer(ctx context.Context, name types.ContainerName) (*model.ContainerRecord, error) {
	runtime, err := x.containerRuntime()
	if err != nil {
		return nil, err
	}
	return runtime.Inspect(ctx, name)
}

func (x *UseCase) ControlContainer(ctx context.Context, name types.ContainerName, op model.ContainerOp) error {
	runtime, err := x.containerRuntime()
	if err != nil {
		return err
	}

	switch op {
	case model.ContainerStart:
		return runtime.Start(ctx, name)
	case model.ContainerStop:
		return runtime.Stop(ctx, name)
	case model.ContainerRestart:
		return runtime.Restart(ctx, name)
	default:
		return goerr.Wrap(types.ErrValidationFailed, "unsupported container operation", goerr.V("op", op))
	}
}

func (x *UseCase) ContainerLogs(ctx context.Context, name types.ContainerName, lines int) (string, error) {
	runtime, err := x.containerRuntime()
	if err != nil {
		return "", err
	}
	if lines <= 0 {
		lines = 100
	}
	return runtime.Logs(ctx, name, lines)
}

func (x *UseCase) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	sc, err := x.sourceControl()
	if err != nil {
		return nil, err
	}
	return sc.GetRepository(ctx, owner, repo)
}

func (x *UseCase) GetCommit(ctx context.Context, owner, repo string, sha types.CommitSHA) (*github.RepositoryCommit, error) {
	sc, err := x.sourceControl()
	if err != nil {
		return nil, err
	}
	return sc.GetCommit(ctx, owner, repo, sha)
}

func (x *UseCase) GetPullRequest(ctx context.Context, owner, repo string, number types.PullRequestNumber) (*github.PullRequest, error) {
	sc, err := x.sourceControl()
	if err != nil {
		return nil, err
	}
	return sc.GetPullRequest(ctx, owner, repo, number)
}
