package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// TestAll runs all test cases for Board
// This is the main entry point for testing any Board implementation
func TestAll(t *testing.T, board interfaces.Board) {
	t.Run("ItemLifecycle", func(t *testing.T) {
		TestItemLifecycle(t, board)
	})
	t.Run("UpdatePreservesColumns", func(t *testing.T) {
		TestUpdatePreservesColumns(t, board)
	})
	t.Run("UpdateUnknownItem", func(t *testing.T) {
		TestUpdateUnknownItem(t, board)
	})
	t.Run("CreateComment", func(t *testing.T) {
		TestCreateComment(t, board)
	})
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

func findByID(t *testing.T, board interfaces.Board, id types.ItemID) *model.BoardItem {
	t.Helper()
	items := gt.R1(board.ListItems(context.Background())).NoError(t)
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not found in board", id)
	return nil
}

// TestItemLifecycle creates an item and reads it back
func TestItemLifecycle(t *testing.T, board interfaces.Board) {
	ctx := context.Background()
	name := uniqueName("feature")

	created := gt.R1(board.CreateItem(ctx, name, model.ColumnValues{
		types.ColumnDeveloper:    model.Text("alice"),
		types.ColumnGitHubStatus: model.Label("In Progress"),
	})).NoError(t)
	gt.V(t, created.ID).NotEqual("")
	gt.V(t, created.Name).Equal(name)

	item := findByID(t, board, created.ID)
	gt.V(t, item.Name).Equal(name)
	gt.V(t, item.Columns[types.ColumnDeveloper].Text).Equal("alice")
	gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("In Progress")
}

// TestUpdatePreservesColumns checks that columns absent from an update keep their value
func TestUpdatePreservesColumns(t *testing.T, board interfaces.Board) {
	ctx := context.Background()

	created := gt.R1(board.CreateItem(ctx, uniqueName("feature"), model.ColumnValues{
		types.ColumnDeveloper:     model.Text("alice"),
		types.ColumnCommitMessage: model.Text("first commit"),
		types.ColumnGitHubStatus:  model.Label("Open"),
	})).NoError(t)

	gt.NoError(t, board.UpdateItem(ctx, created.ID, model.ColumnValues{
		types.ColumnGitHubStatus:  model.Label("Closed"),
		types.ColumnCommitMessage: model.Text("second commit"),
	}))

	item := findByID(t, board, created.ID)
	gt.V(t, item.Columns[types.ColumnDeveloper].Text).Equal("alice")
	gt.V(t, item.Columns[types.ColumnCommitMessage].Text).Equal("second commit")
	gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("Closed")
}

// TestUpdateUnknownItem checks that updating a missing item fails
func TestUpdateUnknownItem(t *testing.T, board interfaces.Board) {
	ctx := context.Background()
	err := board.UpdateItem(ctx, "999999999999", model.ColumnValues{
		types.ColumnDeveloper: model.Text("nobody"),
	})
	gt.Error(t, err)
}

// TestCreateComment posts a comment on an existing item
func TestCreateComment(t *testing.T, board interfaces.Board) {
	ctx := context.Background()

	created := gt.R1(board.CreateItem(ctx, uniqueName("comment"), model.ColumnValues{
		types.ColumnDeveloper: model.Text("bob"),
	})).NoError(t)

	gt.NoError(t, board.CreateComment(ctx, created.ID, "Build #1 finished: Success"))
}
