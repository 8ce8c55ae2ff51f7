package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
)

type itemData struct {
	item *model.BoardItem
	seq  int
}

type board struct {
	mu       sync.RWMutex
	items    map[string]*itemData
	comments map[string][]string
	seq      int
}

func (r *board) ListItems(ctx context.Context) ([]*model.BoardItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := make([]*itemData, 0, len(r.items))
	for _, data := range r.items {
		ordered = append(ordered, data)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].seq < ordered[j].seq
	})

	items := make([]*model.BoardItem, len(ordered))
	for i, data := range ordered {
		items[i] = copyItem(data.item)
	}
	return items, nil
}

func (r *board) CreateItem(ctx context.Context, name string, columns model.ColumnValues) (*model.BoardItem, error) {
	if name == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "item name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	item := &model.BoardItem{
		ID:      types.ItemID(uuid.NewString()),
		Name:    name,
		Columns: columns.Compact(),
	}
	r.items[string(item.ID)] = &itemData{item: item, seq: r.seq}

	return copyItem(item), nil
}

func (r *board) UpdateItem(ctx context.Context, id types.ItemID, columns model.ColumnValues) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.items[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "item not found",
			goerr.V("itemID", id),
		)
	}

	data.item.Columns = data.item.Columns.Merge(columns)
	return nil
}

func (r *board) CreateComment(ctx context.Context, id types.ItemID, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[string(id)]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "item not found",
			goerr.V("itemID", id),
		)
	}

	r.comments[string(id)] = append(r.comments[string(id)], body)
	return nil
}

func copyItem(item *model.BoardItem) *model.BoardItem {
	return &model.BoardItem{
		ID:      item.ID,
		Name:    item.Name,
		Columns: item.Columns.Copy(),
	}
}
