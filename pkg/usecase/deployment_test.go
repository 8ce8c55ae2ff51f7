package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra"
)

func TestHandleDeployment(t *testing.T) {
	t.Run("container located by repository name", func(t *testing.T) {
		rt := newRuntimeMock()
		uc, board := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(rt)})

		result := gt.R1(uc.HandleDeployment(t.Context(), &model.DeploymentNotification{
			ContainerName:  "ignored",
			BranchName:     "feature-x",
			BuildNumber:    "42",
			ImageTag:       "acme/sample-app:feature-x-42",
			RepositoryName: "acme/sample-app",
		})).NoError(t)
		gt.True(t, result.Reconciled)
		gt.V(t, result.Container.Name).Equal(types.ContainerName("sample-app-web-1"))

		item := findByName(t, board, "feature-x")
		gt.V(t, item.Columns[types.ColumnDockerStatus].Text).Equal("Running")
		gt.V(t, item.Columns[types.ColumnDeployStatus].Text).Equal("Success")
		gt.V(t, item.Columns[types.ColumnImageVersion].Text).Equal("acme/sample-app:feature-x-42")
		gt.V(t, item.Columns[types.ColumnBuildNumber].Text).Equal("42")
		gt.V(t, item.Columns[types.ColumnHealth].Text).Equal("healthy")
	})

	t.Run("notified container name is used when no container matches", func(t *testing.T) {
		rt := newRuntimeMock()
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(rt)})

		gt.R1(uc.HandleDeployment(t.Context(), &model.DeploymentNotification{
			ContainerName:  "legacy-app",
			FeatureName:    "feature-legacy",
			RepositoryName: "acme/unrelated",
		})).NoError(t)
		gt.V(t, rt.InspectCalls()[0].Name).Equal(types.ContainerName("legacy-app"))
	})

	t.Run("notification without feature nor branch is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(newRuntimeMock())})
		_, err := uc.HandleDeployment(t.Context(), &model.DeploymentNotification{ContainerName: "app"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("inspect failure is collaborator unavailable", func(t *testing.T) {
		rt := newRuntimeMock()
		rt.InspectFunc = func(ctx context.Context, name types.ContainerName) (*model.ContainerRecord, error) {
			return nil, errors.New("no such container")
		}
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(rt)})
		_, err := uc.HandleDeployment(t.Context(), &model.DeploymentNotification{ContainerName: "app", BranchName: "feature-x"})
		gt.True(t, errors.Is(err, types.ErrCollaboratorUnavailable))
	})

	t.Run("runtime not configured", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)
		_, err := uc.HandleDeployment(t.Context(), &model.DeploymentNotification{ContainerName: "app", BranchName: "feature-x"})
		gt.True(t, errors.Is(err, types.ErrCollaboratorUnavailable))
	})
}

func TestHandleDeploymentFailure(t *testing.T) {
	t.Run("failure is written to feature item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		result := gt.R1(uc.HandleDeploymentFailure(t.Context(), &model.DeploymentFailure{
			FeatureName:  "login",
			BranchName:   "feature-login",
			ErrorMessage: "image pull failed",
			BuildNumber:  "7",
		})).NoError(t)
		gt.V(t, result.Identity.CanonicalName).Equal("feature-login")
		gt.V(t, result.Identity.SecondaryName).Equal("login")

		item := findByName(t, board, "feature-login")
		gt.V(t, item.Columns[types.ColumnDeployStatus].Text).Equal("Failed")
		gt.V(t, item.Columns[types.ColumnDockerStatus].Text).Equal("Failed")
		gt.V(t, item.Columns[types.ColumnBuildTimeline].Text).Equal("image pull failed")
		gt.V(t, item.Columns[types.ColumnBuildNumber].Text).Equal("7")
	})

	t.Run("feature name alone is canonical", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		gt.R1(uc.HandleDeploymentFailure(t.Context(), &model.DeploymentFailure{FeatureName: "login"})).NoError(t)
		item := findByName(t, board, "login")
		gt.V(t, item.Columns[types.ColumnBuildTimeline].Text).Equal("Docker deployment failed")
	})
}

func TestRefreshContainerStatus(t *testing.T) {
	t.Run("status is written", func(t *testing.T) {
		uc, board := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(newRuntimeMock())})
		result := gt.R1(uc.RefreshContainerStatus(t.Context(), &model.ContainerStatusRequest{
			ContainerName: "sample-app-web-1",
			BranchName:    "feature-x",
		})).NoError(t)
		gt.True(t, result.Reconciled)

		item := findByName(t, board, "feature-x")
		gt.V(t, item.Columns[types.ColumnDockerStatus].Text).Equal("Running")
		gt.V(t, item.Columns[types.ColumnResourceUsage].Text).Equal("CPU: 0.50%, Memory: 64MiB / 1GiB")
		_, hasImage := item.Columns[types.ColumnImageVersion]
		gt.False(t, hasImage)
	})

	t.Run("unknown container is not found", func(t *testing.T) {
		rt := newRuntimeMock()
		rt.InspectFunc = func(ctx context.Context, name types.ContainerName) (*model.ContainerRecord, error) {
			return nil, errors.New("no such container")
		}
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(rt)})
		_, err := uc.RefreshContainerStatus(t.Context(), &model.ContainerStatusRequest{ContainerName: "ghost", BranchName: "feature-x"})
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("container name is required", func(t *testing.T) {
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithContainerRuntime(newRuntimeMock())})
		_, err := uc.RefreshContainerStatus(t.Context(), &model.ContainerStatusRequest{BranchName: "feature-x"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}
