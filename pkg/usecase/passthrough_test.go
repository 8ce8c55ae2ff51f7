package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/mock"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra"
	"github.com/m-mizutani/pipeboard/pkg/usecase"
)

func TestTriggerBuild(t *testing.T) {
	t.Run("default job is used when job is empty", func(t *testing.T) {
		ci := &mock.CIMock{
			TriggerBuildFunc: func(ctx context.Context, job types.JobName, params map[string]string) (model.QueueLocation, error) {
				return model.QueueLocation("https://ci.example.com/queue/item/17/"), nil
			},
		}
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithCI(ci)}, usecase.WithDefaultJob("fallback-job"))

		loc := gt.R1(uc.TriggerBuild(t.Context(), "", map[string]string{"BRANCH": "main"})).NoError(t)
		gt.V(t, loc).Equal(model.QueueLocation("https://ci.example.com/queue/item/17/"))
		gt.V(t, ci.TriggerBuildCalls()[0].Job).Equal(types.JobName("fallback-job"))
		gt.V(t, ci.TriggerBuildCalls()[0].Params["BRANCH"]).Equal("main")
	})

	t.Run("no job at all is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithCI(&mock.CIMock{})})
		_, err := uc.TriggerBuild(t.Context(), "", nil)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("CI not configured", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)
		_, err := uc.TriggerBuild(t.Context(), "job", nil)
		gt.True(t, errors.Is(err, types.ErrCollaboratorUnavailable))
	})
}

func TestGetBuildDetail(t *testing.T) {
	t.Run("stage and console failures are tolerated", func(t *testing.T) {
		ci := &mock.CIMock{
			GetBuildFunc: func(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.BuildRecord, error) {
				return &model.BuildRecord{JobName: job, BuildNumber: number, State: model.BuildSuccess}, nil
			},
			GetStagesFunc: func(ctx context.Context, job types.JobName, number types.BuildNumber) ([]model.StageResult, error) {
				return nil, errors.New("404")
			},
			GetConsoleFunc: func(ctx context.Context, job types.JobName, number types.BuildNumber) (string, error) {
				return "Started by user admin\nFinished: SUCCESS\n", nil
			},
		}
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithCI(ci)})

		detail := gt.R1(uc.GetBuildDetail(t.Context(), "sample-app", 42)).NoError(t)
		gt.V(t, detail.Build.BuildNumber).Equal(types.BuildNumber(42))
		gt.A(t, detail.Stages).Length(0)
		gt.S(t, detail.Console).Contains("Finished: SUCCESS")
	})
}

func TestControlContainer(t *testing.T) {
	rt := newRuntimeMock()
	rt.StartFunc = func(ctx context.Context, name types.ContainerName) error { return nil }
	rt.StopFunc = func(ctx context.Context, name types.ContainerName) error { return nil }
	rt.RestartFunc = func(ctx context.Context, name types.ContainerName) error { return nil }
	rt.LogsFunc = func(ctx context.Context, name types.ContainerName, lines int) (string, error) {
		return "listening on :8080", nil
	}
	uc, _ := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(rt)})

	t.Run("operations are dispatched", func(t *testing.T) {
		gt.NoError(t, uc.ControlContainer(t.Context(), "app", model.ContainerStart))
		gt.NoError(t, uc.ControlContainer(t.Context(), "app", model.ContainerStop))
		gt.NoError(t, uc.ControlContainer(t.Context(), "app", model.ContainerRestart))
		gt.V(t, len(rt.StartCalls())).Equal(1)
		gt.V(t, len(rt.StopCalls())).Equal(1)
		gt.V(t, len(rt.RestartCalls())).Equal(1)
	})

	t.Run("unknown operation is rejected", func(t *testing.T) {
		err := uc.ControlContainer(t.Context(), "app", model.ContainerOp("kill"))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("logs default to 100 lines", func(t *testing.T) {
		gt.R1(uc.ContainerLogs(t.Context(), "app", 0)).NoError(t)
		gt.V(t, rt.LogsCalls()[0].Lines).Equal(100)
	})
}

func TestCommentBoardItem(t *testing.T) {
	t.Run("empty body is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)
		err := uc.CommentBoardItem(t.Context(), "1", "")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("comment on existing item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		item := gt.R1(board.CreateItem(t.Context(), "feature-x", model.ColumnValues{})).NoError(t)
		gt.NoError(t, uc.CommentBoardItem(t.Context(), item.ID, "deployed to staging"))
	})
}
