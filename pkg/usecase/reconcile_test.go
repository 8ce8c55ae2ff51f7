package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/mock"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra"
	"github.com/m-mizutani/pipeboard/pkg/usecase"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

func TestUpsert(t *testing.T) {
	commit := &model.CommitRef{ID: "abc123", Message: "Add login form"}

	t.Run("second upsert updates the same item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		id := model.TrackingIdentity{CanonicalName: "feature-login"}

		first := gt.R1(uc.Upsert(t.Context(), id, model.ColumnValues{
			types.ColumnGitHubStatus: model.Label("In Progress"),
		}, commit)).NoError(t)
		gt.V(t, first.Action).Equal(model.UpsertCreated)

		second := gt.R1(uc.Upsert(t.Context(), id, model.ColumnValues{
			types.ColumnJenkinsStatus: model.Label("Building"),
		}, commit)).NoError(t)
		gt.V(t, second.Action).Equal(model.UpsertUpdated)
		gt.V(t, second.ItemID).Equal(first.ItemID)

		items := gt.R1(board.ListItems(t.Context())).NoError(t)
		gt.A(t, items).Length(1)
		gt.V(t, items[0].Columns[types.ColumnGitHubStatus].Text).Equal("In Progress")
		gt.V(t, items[0].Columns[types.ColumnJenkinsStatus].Text).Equal("Building")
	})

	t.Run("last updated is set from context time", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(t.Context(), func() time.Time { return now })

		gt.R1(uc.Upsert(ctx, model.TrackingIdentity{CanonicalName: "feature-a"}, model.ColumnValues{}, commit)).NoError(t)
		item := findByName(t, board, "feature-a")
		gt.V(t, item.Columns[types.ColumnLastUpdated].Text).Equal("2024-03-15")
	})

	t.Run("empty values do not clear existing columns", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		id := model.TrackingIdentity{CanonicalName: "feature-b"}

		gt.R1(uc.Upsert(t.Context(), id, model.ColumnValues{
			types.ColumnPRURL: model.Link("https://github.com/acme/app/pull/9", "PR #9"),
		}, commit)).NoError(t)
		gt.R1(uc.Upsert(t.Context(), id, model.ColumnValues{
			types.ColumnPRURL:        model.Link("", "Pull Request"),
			types.ColumnGitHubStatus: model.Label("Closed"),
		}, commit)).NoError(t)

		item := findByName(t, board, "feature-b")
		gt.V(t, item.Columns[types.ColumnPRURL].URL).Equal("https://github.com/acme/app/pull/9")
		gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("Closed")
	})

	t.Run("event without commit data is skipped", func(t *testing.T) {
		board := &mock.BoardMock{}
		uc := usecase.New(infra.New(infra.WithBoard(board), infra.WithContainerRuntime(nil)))

		for _, msg := range []string{"", model.PlaceholderCommitMessage} {
			result := gt.R1(uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "x"}, model.ColumnValues{
				types.ColumnGitHubStatus: model.Label("In Progress"),
			}, &model.CommitRef{Message: msg})).NoError(t)
			gt.True(t, result.Skipped())
		}
		gt.V(t, len(board.ListItemsCalls())).Equal(0)
		gt.V(t, len(board.CreateItemCalls())).Equal(0)
		gt.V(t, len(board.UpdateItemCalls())).Equal(0)
	})

	t.Run("upsert without commit reference is never skipped", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		result := gt.R1(uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "feature-c"}, model.ColumnValues{
			types.ColumnJenkinsStatus: model.Label("Success"),
		}, nil)).NoError(t)
		gt.V(t, result.Action).Equal(model.UpsertCreated)
		gt.True(t, findByName(t, board, "feature-c") != nil)
	})

	t.Run("secondary name finds existing item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		created := gt.R1(board.CreateItem(t.Context(), "PR-8", model.ColumnValues{})).NoError(t)

		result := gt.R1(uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "feature-x", SecondaryName: "PR-8"}, model.ColumnValues{
			types.ColumnGitHubStatus: model.Label("Open"),
		}, commit)).NoError(t)
		gt.V(t, result.Action).Equal(model.UpsertUpdated)
		gt.V(t, result.ItemID).Equal(created.ID)
	})

	t.Run("long name is truncated at creation", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil, usecase.WithNameLimit(10))
		gt.R1(uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "feature-with-a-very-long-name"}, model.ColumnValues{}, commit)).NoError(t)
		gt.True(t, findByName(t, board, "feature-w") == nil)
		gt.True(t, findByName(t, board, "feature-wi") != nil)
	})

	t.Run("long name finds its truncated item again", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil, usecase.WithNameLimit(10))
		id := model.TrackingIdentity{CanonicalName: "feature-with-a-very-long-name"}

		first := gt.R1(uc.Upsert(t.Context(), id, model.ColumnValues{
			types.ColumnGitHubStatus: model.Label("In Progress"),
		}, commit)).NoError(t)
		second := gt.R1(uc.Upsert(t.Context(), id, model.ColumnValues{
			types.ColumnJenkinsStatus: model.Label("Building"),
		}, commit)).NoError(t)

		gt.V(t, first.Action).Equal(model.UpsertCreated)
		gt.V(t, second.Action).Equal(model.UpsertUpdated)
		gt.V(t, second.ItemID).Equal(first.ItemID)
		gt.A(t, gt.R1(board.ListItems(t.Context())).NoError(t)).Length(1)
	})

	t.Run("board failure is reconciliation error", func(t *testing.T) {
		board := &mock.BoardMock{
			ListItemsFunc: func(ctx context.Context) ([]*model.BoardItem, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := usecase.New(infra.New(infra.WithBoard(board), infra.WithContainerRuntime(nil)))
		_, err := uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "x"}, model.ColumnValues{}, commit)
		gt.True(t, errors.Is(err, types.ErrReconciliation))
		gt.S(t, err.Error()).Contains("connection refused")
	})

	t.Run("board failure keeps the cause in the chain", func(t *testing.T) {
		board := &mock.BoardMock{
			ListItemsFunc: func(ctx context.Context) ([]*model.BoardItem, error) {
				return nil, context.DeadlineExceeded
			},
		}
		uc := usecase.New(infra.New(infra.WithBoard(board), infra.WithContainerRuntime(nil)))
		_, err := uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "x"}, model.ColumnValues{}, commit)
		gt.True(t, errors.Is(err, types.ErrReconciliation))
		gt.True(t, errors.Is(err, context.DeadlineExceeded))
		gt.False(t, errors.Is(err, types.ErrMonitoring))
	})

	t.Run("missing board is collaborator unavailable", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithContainerRuntime(nil)))
		_, err := uc.Upsert(t.Context(), model.TrackingIdentity{CanonicalName: "x"}, model.ColumnValues{}, commit)
		gt.True(t, errors.Is(err, types.ErrCollaboratorUnavailable))
	})

	t.Run("concurrent upserts of one identity create one item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		id := model.TrackingIdentity{CanonicalName: "feature-race"}

		done := make(chan error)
		for i := 0; i < 8; i++ {
			go func() {
				_, err := uc.Upsert(t.Context(), id, model.ColumnValues{
					types.ColumnDeveloper: model.Text("alice"),
				}, commit)
				done <- err
			}()
		}
		for i := 0; i < 8; i++ {
			gt.NoError(t, <-done)
		}

		items := gt.R1(board.ListItems(t.Context())).NoError(t)
		gt.A(t, items).Length(1)
	})
}

func TestFindItem(t *testing.T) {
	items := []*model.BoardItem{
		{ID: "1", Name: "feature-login"},
		{ID: "2", Name: "Fix header (#12)"},
		{ID: "3", Name: "PR-120 refactor"},
	}

	testCases := []struct {
		name   string
		id     model.TrackingIdentity
		expect types.ItemID
	}{
		{
			name:   "exact canonical name",
			id:     model.TrackingIdentity{CanonicalName: "feature-login"},
			expect: "1",
		},
		{
			name:   "pull request number in item name",
			id:     model.TrackingIdentity{CanonicalName: "fix-header", SecondaryName: "PR-12"},
			expect: "2",
		},
		{
			name:   "longer number does not match",
			id:     model.TrackingIdentity{CanonicalName: "PR-1"},
			expect: "",
		},
		{
			name:   "PR prefix in item name",
			id:     model.TrackingIdentity{CanonicalName: "PR-120"},
			expect: "3",
		},
		{
			name:   "no match",
			id:     model.TrackingIdentity{CanonicalName: "feature-unknown"},
			expect: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := usecase.FindItemForTest(items, tc.id, 200)
			if tc.expect == "" {
				gt.True(t, item == nil)
				return
			}
			gt.True(t, item != nil)
			gt.V(t, item.ID).Equal(tc.expect)
		})
	}
}

func TestFindItemTruncated(t *testing.T) {
	items := []*model.BoardItem{{ID: "1", Name: "feature-wi"}}
	id := model.TrackingIdentity{CanonicalName: "feature-with-a-very-long-name"}

	item := usecase.FindItemForTest(items, id, 10)
	gt.True(t, item != nil)
	gt.V(t, item.ID).Equal(types.ItemID("1"))

	gt.True(t, usecase.FindItemForTest(items, id, 0) == nil)
}

func TestLockKeys(t *testing.T) {
	t.Run("canonical name only", func(t *testing.T) {
		gt.V(t, usecase.LockKeysForTest(model.TrackingIdentity{CanonicalName: "feature-x"})).Equal([]string{"feature-x"})
	})

	t.Run("pull request fallback shares a key with the branch identity", func(t *testing.T) {
		pr := usecase.LockKeysForTest(model.TrackingIdentity{CanonicalName: "PR-12"})
		branch := usecase.LockKeysForTest(model.TrackingIdentity{CanonicalName: "feature-x", SecondaryName: "PR-12"})
		gt.A(t, pr).Have("pr:12")
		gt.A(t, branch).Have("pr:12")
	})

	t.Run("hash reference in name", func(t *testing.T) {
		keys := usecase.LockKeysForTest(model.TrackingIdentity{CanonicalName: "Fix header (#7)"})
		gt.A(t, keys).Have("pr:7")
	})
}

func TestTruncateName(t *testing.T) {
	t.Run("short name is kept", func(t *testing.T) {
		gt.V(t, usecase.TruncateNameForTest("feature", 200)).Equal("feature")
	})
	t.Run("multibyte name is cut by rune", func(t *testing.T) {
		name := strings.Repeat("機能", 5)
		gt.V(t, usecase.TruncateNameForTest(name, 3)).Equal("機能機")
	})
	t.Run("zero limit disables truncation", func(t *testing.T) {
		gt.V(t, usecase.TruncateNameForTest("feature", 0)).Equal("feature")
	})
}
