package interfaces

import (
	"context"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

//go:generate moq -out ../mock/board_mock.go -pkg mock . Board

// Board is the external project-tracking board. It is the only durable store.
type Board interface {
	// ListItems returns every item of the configured board. Column values are
	// keyed by semantic column key.
	ListItems(ctx context.Context) ([]*model.BoardItem, error)
	CreateItem(ctx context.Context, name string, columns model.ColumnValues) (*model.BoardItem, error)
	// UpdateItem writes only the given columns. Other columns of the item are untouched.
	UpdateItem(ctx context.Context, id types.ItemID, columns model.ColumnValues) error
	CreateComment(ctx context.Context, id types.ItemID, body string) error
}
