package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// HandleDeployment writes the state of a container deployed by CI to the feature's
// item. The container is located by repository name first, then the notified
// container name is used as is.
func (x *UseCase) HandleDeployment(ctx context.Context, n *model.DeploymentNotification) (*model.NotificationResult, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	runtime, err := x.containerRuntime()
	if err != nil {
		return nil, err
	}

	name := n.ContainerName
	if n.RepositoryName != "" {
		containers, err := runtime.List(ctx)
		if err != nil {
			errutil.Warn(ctx, "failed to list containers", err)
		} else if found, ok := LocateContainer(types.RepositoryFullName(n.RepositoryName).Name(), containers); ok {
			name = found
		}
	}
	if name == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no container matched and containerName is empty",
			goerr.V("repository", n.RepositoryName),
		)
	}

	record, err := runtime.Inspect(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable.Wrap(err), "failed to inspect container",
			goerr.V("container", name),
		)
	}

	columns := deployedColumns(record)
	if n.ImageTag != "" {
		columns[types.ColumnImageVersion] = model.Text(n.ImageTag)
	}
	if n.BuildNumber != "" {
		columns[types.ColumnBuildNumber] = model.Text(n.BuildNumber)
	}

	logging.From(ctx).Info("deployment notified", slog.String("container", string(name)), slog.String("status", record.Status))
	return x.notify(ctx, n.Identity(), columns, record), nil
}

// HandleDeploymentFailure marks the deployment of the feature as failed.
func (x *UseCase) HandleDeploymentFailure(ctx context.Context, f *model.DeploymentFailure) (*model.NotificationResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	columns := deployFailedColumns(f.ErrorMessage)
	if f.BuildNumber != "" {
		columns[types.ColumnBuildNumber] = model.Text(f.BuildNumber)
	}

	logging.From(ctx).Warn("deployment failure notified", slog.String("message", f.ErrorMessage))
	return x.notify(ctx, f.Identity(), columns, nil), nil
}

// RefreshContainerStatus writes current status, health and resource usage of a
// container to the item.
func (x *UseCase) RefreshContainerStatus(ctx context.Context, req *model.ContainerStatusRequest) (*model.NotificationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	runtime, err := x.containerRuntime()
	if err != nil {
		return nil, err
	}

	record, err := runtime.Inspect(ctx, req.ContainerName)
	if err != nil {
		return nil, goerr.Wrap(types.ErrNotFound.Wrap(err), "failed to inspect container",
			goerr.V("container", req.ContainerName),
		)
	}

	return x.notify(ctx, req.Identity(), containerStatusColumns(record), record), nil
}

func (x *UseCase) notify(ctx context.Context, id model.TrackingIdentity, columns model.ColumnValues, record *model.ContainerRecord) *model.NotificationResult {
	result := &model.NotificationResult{Identity: id, Container: record}
	upsert, err := x.Upsert(ctx, id, columns, nil)
	if err != nil {
		errutil.HandleError(ctx, "failed to reconcile board item", err)
		return result
	}
	result.Reconciled = true
	result.Upsert = upsert
	return result
}

func (x *UseCase) containerRuntime() (interfaces.ContainerRuntime, error) {
	runtime := x.clients.ContainerRuntime()
	if runtime == nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable, "container runtime is not configured")
	}
	return runtime, nil
}
