package monday_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
	"github.com/m-mizutani/pipeboard/pkg/repository/monday"
	"github.com/m-mizutani/pipeboard/pkg/repository/testhelper"
	"github.com/m-mizutani/pipeboard/pkg/utils/testutil"
)

// fakeMonday serves the subset of the monday.com GraphQL API used by the board.
type fakeMonday struct {
	mutex    sync.Mutex
	seq      int
	items    map[string]*fakeItem
	comments map[string][]string
	pageSize int
	token    string
}

type fakeItem struct {
	id      string
	name    string
	columns map[string]json.RawMessage
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newFakeMonday(t *testing.T) (*fakeMonday, *httptest.Server) {
	f := &fakeMonday{
		items:    make(map[string]*fakeItem),
		comments: make(map[string][]string),
		seq:      1000,
		token:    "monday-test-token",
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeMonday) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if r.Header.Get("Authorization") != f.token {
		writeData(w, nil, "Not Authenticated")
		return
	}

	var req gqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch q := req.Query; {
	case strings.Contains(q, "next_items_page"):
		offset, _ := strconv.Atoi(req.Variables["cursor"].(string))
		writeData(w, map[string]any{"next_items_page": f.page(offset, int(req.Variables["limit"].(float64)))}, "")

	case strings.Contains(q, "items_page"):
		writeData(w, map[string]any{"boards": []any{
			map[string]any{"items_page": f.page(0, int(req.Variables["limit"].(float64)))},
		}}, "")

	case strings.Contains(q, "change_multiple_column_values"):
		item, ok := f.items[req.Variables["itemId"].(string)]
		if !ok {
			writeData(w, nil, "Item not found in board")
			return
		}
		f.apply(item, req.Variables["values"].(string))
		writeData(w, map[string]any{"change_multiple_column_values": map[string]any{"id": item.id}}, "")

	case strings.Contains(q, "create_item"):
		f.seq++
		item := &fakeItem{
			id:      strconv.Itoa(f.seq),
			name:    req.Variables["name"].(string),
			columns: make(map[string]json.RawMessage),
		}
		if v, ok := req.Variables["values"].(string); ok {
			f.apply(item, v)
		}
		f.items[item.id] = item
		writeData(w, map[string]any{"create_item": f.render(item)}, "")

	case strings.Contains(q, "create_update"):
		id := req.Variables["itemId"].(string)
		if _, ok := f.items[id]; !ok {
			writeData(w, nil, "Item not found")
			return
		}
		f.comments[id] = append(f.comments[id], req.Variables["body"].(string))
		writeData(w, map[string]any{"create_update": map[string]any{"id": "1"}}, "")

	default:
		writeData(w, nil, "unsupported query")
	}
}

func (f *fakeMonday) apply(item *fakeItem, values string) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(values), &m); err != nil {
		panic(err)
	}
	for k, v := range m {
		item.columns[k] = v
	}
}

func (f *fakeMonday) page(offset, limit int) map[string]any {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	end := min(offset+limit, len(ids))
	var items []any
	for _, id := range ids[min(offset, len(ids)):end] {
		items = append(items, f.render(f.items[id]))
	}

	var cursor any
	if end < len(ids) {
		cursor = strconv.Itoa(end)
	}
	return map[string]any{"cursor": cursor, "items": items}
}

// render returns the item as monday.com does: a type, a display text and a JSON value per column.
func (f *fakeMonday) render(item *fakeItem) map[string]any {
	var columns []any
	for id, raw := range item.columns {
		var obj map[string]string
		var text string
		colType := "text"
		if json.Unmarshal(raw, &obj) == nil {
			switch {
			case obj["label"] != "":
				colType, text = "status", obj["label"]
			case obj["url"] != "":
				colType, text = "link", obj["text"]+" - "+obj["url"]
			case obj["date"] != "":
				colType, text = "date", obj["date"]
			}
		} else {
			_ = json.Unmarshal(raw, &text)
		}
		columns = append(columns, map[string]any{
			"id": id, "type": colType, "text": text, "value": string(raw),
		})
	}
	return map[string]any{"id": item.id, "name": item.name, "column_values": columns}
}

func writeData(w http.ResponseWriter, data any, errMsg string) {
	resp := map[string]any{"data": data}
	if errMsg != "" {
		resp["errors"] = []any{map[string]any{"message": errMsg}}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestNew(t *testing.T) {
	t.Run("token is required", func(t *testing.T) {
		_, err := monday.New("", "123")
		gt.Error(t, err)
	})
	t.Run("board ID is required", func(t *testing.T) {
		_, err := monday.New("token", "")
		gt.Error(t, err)
	})
}

func TestMondayBoard(t *testing.T) {
	_, srv := newFakeMonday(t)
	board := gt.R1(monday.New("monday-test-token", "123",
		monday.WithEndpoint(srv.URL),
		monday.WithPageSize(2),
	)).NoError(t)

	testhelper.TestAll(t, board)
}

func TestMondayColumns(t *testing.T) {
	f, srv := newFakeMonday(t)
	board := gt.R1(monday.New("monday-test-token", "123",
		monday.WithEndpoint(srv.URL),
		monday.WithColumnMap(repository.ColumnMap{
			types.ColumnGitHubStatus: {ID: "color_mkq1"},
			types.ColumnPRURL:        {ID: "link_mkq2"},
			types.ColumnLastUpdated:  {ID: "date4"},
			types.ColumnBuildNumber:  {ID: "text_mkq3"},
		}),
	)).NoError(t)

	created := gt.R1(board.CreateItem(t.Context(), "feature-x", model.ColumnValues{
		types.ColumnGitHubStatus: model.Label("Open"),
		types.ColumnPRURL:        model.Link("https://github.com/acme/app/pull/8", "PR #8"),
		types.ColumnLastUpdated:  model.Date("2024-03-15"),
		types.ColumnBuildNumber:  model.Text("42"),
		types.ColumnDeveloper:    model.Text("alice"),
		types.ColumnReviewer:     model.Text(""),
	})).NoError(t)

	t.Run("values are written in monday format", func(t *testing.T) {
		columns := f.items[string(created.ID)].columns
		gt.V(t, string(columns["color_mkq1"])).Equal(`{"label":"Open"}`)
		gt.V(t, string(columns["link_mkq2"])).Equal(`{"url":"https://github.com/acme/app/pull/8","text":"PR #8"}`)
		gt.V(t, string(columns["date4"])).Equal(`{"date":"2024-03-15"}`)
		gt.V(t, string(columns["text_mkq3"])).Equal(`"42"`)
		gt.V(t, string(columns["developer"])).Equal(`"alice"`)
		_, hasReviewer := columns["reviewer"]
		gt.False(t, hasReviewer)
	})

	t.Run("values are read back by semantic key", func(t *testing.T) {
		items := gt.R1(board.ListItems(t.Context())).NoError(t)
		gt.A(t, items).Length(1)
		cols := items[0].Columns
		gt.V(t, cols[types.ColumnGitHubStatus]).Equal(model.Label("Open"))
		gt.V(t, cols[types.ColumnPRURL]).Equal(model.Link("https://github.com/acme/app/pull/8", "PR #8"))
		gt.V(t, cols[types.ColumnLastUpdated]).Equal(model.Date("2024-03-15"))
		gt.V(t, cols[types.ColumnBuildNumber]).Equal(model.Text("42"))
		gt.V(t, cols[types.ColumnDeveloper]).Equal(model.Text("alice"))
	})

	t.Run("comment is posted as update", func(t *testing.T) {
		gt.NoError(t, board.CreateComment(t.Context(), created.ID, "Build #42 finished: Success"))
		gt.V(t, f.comments[string(created.ID)]).Equal([]string{"Build #42 finished: Success"})
	})

	t.Run("wrong token is remote error", func(t *testing.T) {
		bad := gt.R1(monday.New("wrong", "123", monday.WithEndpoint(srv.URL))).NoError(t)
		_, err := bad.ListItems(t.Context())
		gt.Error(t, err)
	})
}

func TestLiveMonday(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_MONDAY_API_TOKEN")
	boardID := testutil.GetEnvOrSkip(t, "TEST_MONDAY_BOARD_ID")

	board := gt.R1(monday.New(types.BoardAPIToken(token), types.BoardID(boardID))).NoError(t)
	testhelper.TestAll(t, board)
}
