package jenkins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
	"github.com/m-mizutani/pipeboard/pkg/utils/safe"
)

// Client is a Jenkins REST API client authenticated by user name and API token.
type Client struct {
	baseURL    *url.URL
	user       string
	token      types.CIAPIToken
	httpClient *http.Client
}

var _ interfaces.CI = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(baseURL, user string, token types.CIAPIToken, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "jenkins URL is empty")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid jenkins URL", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    u,
		user:       user,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// JobURL returns the browser URL of the job.
func (x *Client) JobURL(job types.JobName) string {
	return x.baseURL.String() + x.jobPath(job) + "/"
}

func (x *Client) jobPath(job types.JobName) string {
	// folder jobs are written as "folder/job"
	var parts []string
	for _, p := range strings.Split(string(job), "/") {
		if p != "" {
			parts = append(parts, "job", url.PathEscape(p))
		}
	}
	return "/" + strings.Join(parts, "/")
}

func (x *Client) buildPath(job types.JobName, number types.BuildNumber) string {
	return fmt.Sprintf("%s/%d", x.jobPath(job), number)
}

func (x *Client) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	u := *x.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create jenkins request", goerr.V("url", u.String()))
	}
	if x.user != "" || x.token != "" {
		req.SetBasicAuth(x.user, string(x.token))
	}
	return req, nil
}

func (x *Client) do(req *http.Request) (*http.Response, error) {
	logging.From(req.Context()).Debug("sending jenkins request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send jenkins request",
			goerr.V("method", req.Method),
			goerr.V("path", req.URL.Path),
		)
	}

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		safe.Close(resp.Body)

		base := types.ErrCollaboratorUnavailable
		if resp.StatusCode == http.StatusNotFound {
			base = types.ErrNotFound
		}
		return nil, goerr.Wrap(base, "jenkins returned error status",
			goerr.V("method", req.Method),
			goerr.V("path", req.URL.Path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}
	return resp, nil
}

func (x *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := x.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := x.do(req)
	if err != nil {
		return err
	}
	defer safe.Close(resp.Body)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode jenkins response", goerr.V("path", path))
	}
	return nil
}

type buildResponse struct {
	Number    int64  `json:"number"`
	URL       string `json:"url"`
	Building  bool   `json:"building"`
	Result    string `json:"result"`
	Duration  int64  `json:"duration"`
	Timestamp int64  `json:"timestamp"`
}

func (x *buildResponse) record(job types.JobName) *model.BuildRecord {
	return &model.BuildRecord{
		JobName:     job,
		BuildNumber: types.BuildNumber(x.Number),
		BuildURL:    x.URL,
		State:       buildState(x.Building, x.Result),
		Duration:    time.Duration(x.Duration) * time.Millisecond,
		Timestamp:   time.UnixMilli(x.Timestamp),
	}
}

// buildState maps building flag and result of Jenkins. A finished build without
// result is still queued for our purpose.
func buildState(building bool, result string) model.BuildState {
	if building {
		return model.BuildBuilding
	}
	switch result {
	case "SUCCESS":
		return model.BuildSuccess
	case "FAILURE":
		return model.BuildFailed
	case "UNSTABLE":
		return model.BuildUnstable
	case "ABORTED", "NOT_BUILT":
		return model.BuildAborted
	default:
		return model.BuildQueued
	}
}

func (x *Client) GetLastBuild(ctx context.Context, job types.JobName) (*model.BuildRecord, error) {
	var resp buildResponse
	if err := x.getJSON(ctx, x.jobPath(job)+"/lastBuild/api/json", &resp); err != nil {
		return nil, err
	}
	return resp.record(job), nil
}

func (x *Client) GetBuild(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.BuildRecord, error) {
	var resp buildResponse
	if err := x.getJSON(ctx, x.buildPath(job, number)+"/api/json", &resp); err != nil {
		return nil, err
	}
	return resp.record(job), nil
}

type describeResponse struct {
	Stages []struct {
		Name           string `json:"name"`
		Status         string `json:"status"`
		DurationMillis int64  `json:"durationMillis"`
	} `json:"stages"`
}

// GetStages reads the stage view of a pipeline build. Freestyle jobs have no stage
// view and return ErrNotFound.
func (x *Client) GetStages(ctx context.Context, job types.JobName, number types.BuildNumber) ([]model.StageResult, error) {
	var resp describeResponse
	if err := x.getJSON(ctx, x.buildPath(job, number)+"/wfapi/describe", &resp); err != nil {
		return nil, err
	}

	stages := make([]model.StageResult, 0, len(resp.Stages))
	for _, s := range resp.Stages {
		stages = append(stages, model.StageResult{
			Name:       s.Name,
			Status:     s.Status,
			DurationMs: s.DurationMillis,
		})
	}
	return stages, nil
}

type testReportResponse struct {
	TotalCount int `json:"totalCount"`
	PassCount  int `json:"passCount"`
	FailCount  int `json:"failCount"`
	SkipCount  int `json:"skipCount"`
}

func (x *Client) GetTestReport(ctx context.Context, job types.JobName, number types.BuildNumber) (*model.TestReport, error) {
	var resp testReportResponse
	if err := x.getJSON(ctx, x.buildPath(job, number)+"/testReport/api/json", &resp); err != nil {
		return nil, err
	}

	report := &model.TestReport{
		Total:   resp.TotalCount,
		Passed:  resp.PassCount,
		Failed:  resp.FailCount,
		Skipped: resp.SkipCount,
	}
	// plain junit reports carry only the per-result counts
	if report.Total == 0 {
		report.Total = report.Passed + report.Failed + report.Skipped
	}
	if report.Passed == 0 && report.Total > 0 {
		report.Passed = report.Total - report.Failed - report.Skipped
	}
	return report, nil
}

func (x *Client) GetConsole(ctx context.Context, job types.JobName, number types.BuildNumber) (string, error) {
	req, err := x.newRequest(ctx, http.MethodGet, x.buildPath(job, number)+"/consoleText", nil)
	if err != nil {
		return "", err
	}
	resp, err := x.do(req)
	if err != nil {
		return "", err
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read console output")
	}
	return string(raw), nil
}

// TriggerBuild schedules a build with parameters. Empty parameter values are not sent.
func (x *Client) TriggerBuild(ctx context.Context, job types.JobName, params map[string]string) (model.QueueLocation, error) {
	query := url.Values{}
	for k, v := range params {
		if v != "" {
			query.Set(k, v)
		}
	}

	path := x.jobPath(job) + "/build"
	if len(query) > 0 {
		path = x.jobPath(job) + "/buildWithParameters"
	}

	req, err := x.newRequest(ctx, http.MethodPost, path, query)
	if err != nil {
		return "", err
	}
	resp, err := x.do(req)
	if err != nil {
		return "", err
	}
	safe.DrainClose(resp.Body)

	loc := model.QueueLocation(resp.Header.Get("Location"))
	logging.From(ctx).Info("jenkins build triggered",
		slog.String("job", string(job)),
		slog.String("queue", string(loc)),
	)
	return loc, nil
}
