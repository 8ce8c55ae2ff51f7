package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/mock"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/infra"
	"github.com/m-mizutani/pipeboard/pkg/repository/memory"
	"github.com/m-mizutani/pipeboard/pkg/usecase"
)

// newTestUseCase builds a UseCase on an in-memory board with every delay disabled.
// Container features are off unless a runtime option is passed.
func newTestUseCase(t *testing.T, clientOpts []infra.Option, opts ...usecase.Option) (*usecase.UseCase, interfaces.Board) {
	t.Helper()
	board := memory.New()
	clientOpts = append([]infra.Option{
		infra.WithBoard(board),
		infra.WithContainerRuntime(nil),
	}, clientOpts...)

	opts = append([]usecase.Option{usecase.WithMonitorConfig(usecase.MonitorConfig{})}, opts...)
	return usecase.New(infra.New(clientOpts...), opts...), board
}

func findByName(t *testing.T, board interfaces.Board, name string) *model.BoardItem {
	t.Helper()
	items := gt.R1(board.ListItems(t.Context())).NoError(t)
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func TestNew(t *testing.T) {
	t.Run("use case satisfies interface", func(t *testing.T) {
		var uc interfaces.UseCase = usecase.New(infra.New(infra.WithContainerRuntime(nil)))
		gt.True(t, uc != nil)
	})

	t.Run("nil container runtime disables container features", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithContainerRuntime(nil)))
		_, err := uc.ListContainers(t.Context())
		gt.Error(t, err)
	})

	t.Run("mock runtime is used", func(t *testing.T) {
		rt := &mock.ContainerRuntimeMock{
			ListFunc: func(ctx context.Context) ([]model.ContainerSummary, error) {
				return []model.ContainerSummary{{Name: "app-1", Status: "running"}}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithContainerRuntime(rt)))
		got := gt.R1(uc.ListContainers(t.Context())).NoError(t)
		gt.A(t, got).Length(1)
		gt.V(t, len(rt.ListCalls())).Equal(1)
	})
}
