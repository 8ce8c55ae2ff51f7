package jira

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trivago/tgo/tcontainer"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

const (
	defaultIssueType = "Task"
	defaultPageSize  = 100
)

// Board uses the issues of one Jira project as board items. The issue summary is
// the item name and columns are issue fields, usually custom fields.
type Board struct {
	client     *jira.Client
	projectKey string
	issueType  string
	columns    repository.ColumnMap
	pageSize   int
	transport  http.RoundTripper
}

var _ interfaces.Board = (*Board)(nil)

type Option func(*Board)

// WithIssueType sets the type of issues created for new items. Default is "Task".
func WithIssueType(issueType string) Option {
	return func(x *Board) {
		x.issueType = issueType
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

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Board) {
		x.transport = tr
	}
}

func New(baseURL, user string, token types.BoardAPIToken, projectKey string, options ...Option) (*Board, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "jira URL is empty")
	}
	if projectKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "jira project key is empty")
	}

	board := &Board{
		projectKey: projectKey,
		issueType:  defaultIssueType,
		columns:    repository.ColumnMap{},
		pageSize:   defaultPageSize,
	}
	for _, opt := range options {
		opt(board)
	}

	tp := jira.BasicAuthTransport{
		Username:  user,
		Password:  string(token),
		Transport: board.transport,
	}
	httpClient := tp.Client()
	httpClient.Timeout = 30 * time.Second

	client, err := jira.NewClient(httpClient, baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to create jira client",
			goerr.V("url", baseURL),
		)
	}
	board.client = client
	return board, nil
}

func (x *Board) fieldIDs() []string {
	ids := []string{"summary"}
	for _, key := range types.AllColumnKeys() {
		ids = append(ids, string(x.columns.Spec(key, model.ColumnValue{}).ID))
	}
	return ids
}

func wrapResponseError(resp *jira.Response, err error, msg string, opts ...goerr.Option) error {
	base := repository.ErrRemote
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		base = repository.ErrNotFound
	}
	if resp != nil {
		opts = append(opts, goerr.V("status", resp.StatusCode))
	}
	return goerr.Wrap(base.Wrap(err), msg, opts...)
}

// ListItems returns every issue of the project, oldest first.
func (x *Board) ListItems(ctx context.Context) ([]*model.BoardItem, error) {
	jql := fmt.Sprintf(`project = "%s" ORDER BY created ASC`, strings.ReplaceAll(x.projectKey, `"`, `\"`))
	logging.From(ctx).Debug("searching jira issues", slog.String("jql", jql))

	var items []*model.BoardItem
	opt := &jira.SearchOptions{
		MaxResults: x.pageSize,
		Fields:     x.fieldIDs(),
	}
	for {
		issues, resp, err := x.client.Issue.SearchWithContext(ctx, jql, opt)
		if err != nil {
			return nil, wrapResponseError(resp, err, "failed to search jira issues", goerr.V("project", x.projectKey))
		}

		for _, issue := range issues {
			items = append(items, x.toItem(issue))
		}

		opt.StartAt += len(issues)
		if len(issues) == 0 || resp == nil || opt.StartAt >= resp.Total {
			break
		}
	}

	return items, nil
}

func (x *Board) toItem(issue jira.Issue) *model.BoardItem {
	item := &model.BoardItem{
		ID:      types.ItemID(issue.Key),
		Columns: model.ColumnValues{},
	}
	if issue.Fields == nil {
		return item
	}
	item.Name = issue.Fields.Summary
	item.Columns = decodeFields(x.columns, issue.Fields.Unknowns)
	return item
}

func (x *Board) CreateItem(ctx context.Context, name string, columns model.ColumnValues) (*model.BoardItem, error) {
	if name == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "item name is empty")
	}

	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project:  jira.Project{Key: x.projectKey},
			Type:     jira.IssueType{Name: x.issueType},
			Summary:  name,
			Unknowns: tcontainer.MarshalMap(encodeFields(x.columns, columns)),
		},
	}

	created, resp, err := x.client.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		return nil, wrapResponseError(resp, err, "failed to create jira issue", goerr.V("name", name))
	}

	logging.From(ctx).Debug("jira issue created", slog.String("key", created.Key))
	return &model.BoardItem{
		ID:      types.ItemID(created.Key),
		Name:    name,
		Columns: columns.Compact(),
	}, nil
}

// UpdateItem sets only the given fields of the issue.
func (x *Board) UpdateItem(ctx context.Context, id types.ItemID, columns model.ColumnValues) error {
	data := map[string]any{
		"fields": encodeFields(x.columns, columns),
	}
	resp, err := x.client.Issue.UpdateIssueWithContext(ctx, string(id), data)
	if err != nil {
		return wrapResponseError(resp, err, "failed to update jira issue", goerr.V("item_id", id))
	}
	return nil
}

func (x *Board) CreateComment(ctx context.Context, id types.ItemID, body string) error {
	_, resp, err := x.client.Issue.AddCommentWithContext(ctx, string(id), &jira.Comment{Body: body})
	if err != nil {
		return wrapResponseError(resp, err, "failed to add jira comment", goerr.V("item_id", id))
	}
	return nil
}
