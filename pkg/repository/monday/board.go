package monday

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/machinebox/graphql"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

const (
	DefaultEndpoint = "https://api.monday.com/v2"
	apiVersion      = "2024-10"
	defaultPageSize = 500
)

// Board is a monday.com board accessed by the GraphQL API. Items are board items,
// columns are mapped by ColumnMap.
type Board struct {
	endpoint   string
	httpClient *http.Client
	token      types.BoardAPIToken
	boardID    types.BoardID
	columns    repository.ColumnMap
	pageSize   int

	client *graphql.Client
}

var _ interfaces.Board = (*Board)(nil)

type Option func(*Board)

func WithEndpoint(endpoint string) Option {
	return func(x *Board) {
		x.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Board) {
		x.httpClient = client
	}
}

func WithColumnMap(columns repository.ColumnMap) Option {
	return func(x *Board) {
		x.columns = columns
	}
}

func WithPageSize(size int) Option {
	return func(x *Board) {
		x.pageSize = size
	}
}

func New(token types.BoardAPIToken, boardID types.BoardID, options ...Option) (*Board, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "monday API token is empty")
	}
	if boardID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "monday board ID is empty")
	}

	board := &Board{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		boardID:    boardID,
		columns:    repository.ColumnMap{},
		pageSize:   defaultPageSize,
	}
	for _, opt := range options {
		opt(board)
	}
	if board.pageSize <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "page size must be positive", goerr.V("size", board.pageSize))
	}

	board.client = graphql.NewClient(board.endpoint, graphql.WithHTTPClient(board.httpClient))
	return board, nil
}

func (x *Board) newRequest(query string) *graphql.Request {
	req := graphql.NewRequest(query)
	req.Header.Set("Authorization", string(x.token))
	req.Header.Set("API-Version", apiVersion)
	return req
}

func (x *Board) run(ctx context.Context, op string, req *graphql.Request, resp any) error {
	logging.From(ctx).Debug("sending monday request", slog.String("op", op), slog.Any("board_id", x.boardID))

	if err := x.client.Run(ctx, req, resp); err != nil {
		return goerr.Wrap(repository.ErrRemote.Wrap(err), "monday request failed",
			goerr.V("op", op),
			goerr.V("board_id", x.boardID),
		)
	}
	return nil
}

const itemFields = `id name column_values { id type text value }`

const listItemsQuery = `query ($boardId: [ID!], $limit: Int!) {
  boards(ids: $boardId) {
    items_page(limit: $limit) {
      cursor
      items { ` + itemFields + ` }
    }
  }
}`

const nextItemsQuery = `query ($cursor: String!, $limit: Int!) {
  next_items_page(cursor: $cursor, limit: $limit) {
    cursor
    items { ` + itemFields + ` }
  }
}`

type itemsPage struct {
	Cursor *string      `json:"cursor"`
	Items  []mondayItem `json:"items"`
}

type mondayItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ColumnValues []columnValue `json:"column_values"`
}

func (x *Board) toItem(item mondayItem) *model.BoardItem {
	return &model.BoardItem{
		ID:      types.ItemID(item.ID),
		Name:    item.Name,
		Columns: decodeColumns(x.columns, item.ColumnValues),
	}
}

// ListItems reads every page of the board.
func (x *Board) ListItems(ctx context.Context) ([]*model.BoardItem, error) {
	var first struct {
		Boards []struct {
			ItemsPage itemsPage `json:"items_page"`
		} `json:"boards"`
	}

	req := x.newRequest(listItemsQuery)
	req.Var("boardId", []string{string(x.boardID)})
	req.Var("limit", x.pageSize)
	if err := x.run(ctx, "items_page", req, &first); err != nil {
		return nil, err
	}
	if len(first.Boards) == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "monday board not found", goerr.V("board_id", x.boardID))
	}

	var items []*model.BoardItem
	page := first.Boards[0].ItemsPage
	for {
		for _, item := range page.Items {
			items = append(items, x.toItem(item))
		}
		if page.Cursor == nil || *page.Cursor == "" {
			break
		}

		var next struct {
			NextItemsPage itemsPage `json:"next_items_page"`
		}
		req := x.newRequest(nextItemsQuery)
		req.Var("cursor", *page.Cursor)
		req.Var("limit", x.pageSize)
		if err := x.run(ctx, "next_items_page", req, &next); err != nil {
			return nil, err
		}
		page = next.NextItemsPage
	}

	return items, nil
}

const createItemMutation = `mutation ($boardId: ID!, $name: String!, $values: JSON) {
  create_item(board_id: $boardId, item_name: $name, column_values: $values, create_labels_if_missing: true) {
    ` + itemFields + `
  }
}`

func (x *Board) CreateItem(ctx context.Context, name string, columns model.ColumnValues) (*model.BoardItem, error) {
	if name == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "item name is empty")
	}
	values, err := encodeColumns(x.columns, columns)
	if err != nil {
		return nil, err
	}

	var resp struct {
		CreateItem mondayItem `json:"create_item"`
	}
	req := x.newRequest(createItemMutation)
	req.Var("boardId", string(x.boardID))
	req.Var("name", name)
	req.Var("values", values)
	if err := x.run(ctx, "create_item", req, &resp); err != nil {
		return nil, err
	}

	return x.toItem(resp.CreateItem), nil
}

const updateItemMutation = `mutation ($boardId: ID!, $itemId: ID!, $values: JSON!) {
  change_multiple_column_values(board_id: $boardId, item_id: $itemId, column_values: $values, create_labels_if_missing: true) {
    id
  }
}`

// UpdateItem writes only the given columns; monday.com keeps the other column values.
func (x *Board) UpdateItem(ctx context.Context, id types.ItemID, columns model.ColumnValues) error {
	values, err := encodeColumns(x.columns, columns)
	if err != nil {
		return err
	}

	var resp struct {
		ChangeMultipleColumnValues struct {
			ID string `json:"id"`
		} `json:"change_multiple_column_values"`
	}
	req := x.newRequest(updateItemMutation)
	req.Var("boardId", string(x.boardID))
	req.Var("itemId", string(id))
	req.Var("values", values)
	if err := x.run(ctx, "change_multiple_column_values", req, &resp); err != nil {
		return err
	}
	if resp.ChangeMultipleColumnValues.ID == "" {
		return goerr.Wrap(repository.ErrNotFound, "monday item not found", goerr.V("item_id", id))
	}
	return nil
}

const createUpdateMutation = `mutation ($itemId: ID!, $body: String!) {
  create_update(item_id: $itemId, body: $body) {
    id
  }
}`

// CreateComment posts an update on the item.
func (x *Board) CreateComment(ctx context.Context, id types.ItemID, body string) error {
	var resp struct {
		CreateUpdate struct {
			ID string `json:"id"`
		} `json:"create_update"`
	}
	req := x.newRequest(createUpdateMutation)
	req.Var("itemId", string(id))
	req.Var("body", body)
	return x.run(ctx, "create_update", req, &resp)
}
