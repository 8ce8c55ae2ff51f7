package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// Client is a read-only source-control client. It authenticates with a static
// token or as a GitHub App installation.
type Client struct {
	client *github.Client
}

var _ interfaces.SourceControl = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL points the client to GitHub Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(x *config) {
		x.baseURL = baseURL
	}
}

// WithTransport sets the base transport under the authentication layer.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *config) {
		x.transport = tr
	}
}

func newConfig(options []Option) *config {
	cfg := &config{transport: http.DefaultTransport}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

func (x *config) build(httpClient *http.Client) (*Client, error) {
	client := github.NewClient(httpClient)
	if x.baseURL != "" {
		u, err := url.Parse(strings.TrimRight(x.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", x.baseURL))
		}
		client.BaseURL = u
	}
	return &Client{client: client}, nil
}

// NewWithToken creates a client with a personal access token.
func NewWithToken(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}
	cfg := newConfig(options)

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: cfg.transport})
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return cfg.build(oauth2.NewClient(ctx, src))
}

// NewWithApp creates a client authenticated as an installation of a GitHub App.
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}
	cfg := newConfig(options)

	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to create GitHub App transport")
	}
	if cfg.baseURL != "" {
		itr.BaseURL = strings.TrimRight(cfg.baseURL, "/")
	}
	return cfg.build(&http.Client{Transport: itr})
}

func (x *Client) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	logging.From(ctx).Debug("get repository", slog.String("owner", owner), slog.String("repo", repo))

	r, resp, err := x.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, wrapError(resp, err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", repo))
	}
	return r, nil
}

func (x *Client) GetCommit(ctx context.Context, owner, repo string, sha types.CommitSHA) (*github.RepositoryCommit, error) {
	logging.From(ctx).Debug("get commit", slog.String("owner", owner), slog.String("repo", repo), slog.String("sha", string(sha)))

	c, resp, err := x.client.Repositories.GetCommit(ctx, owner, repo, string(sha), nil)
	if err != nil {
		return nil, wrapError(resp, err, "failed to get commit", goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("sha", sha))
	}
	return c, nil
}

func (x *Client) GetPullRequest(ctx context.Context, owner, repo string, number types.PullRequestNumber) (*github.PullRequest, error) {
	logging.From(ctx).Debug("get pull request", slog.String("owner", owner), slog.String("repo", repo), slog.Int("number", int(number)))

	pr, resp, err := x.client.PullRequests.Get(ctx, owner, repo, int(number))
	if err != nil {
		return nil, wrapError(resp, err, "failed to get pull request", goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
	}
	return pr, nil
}

func wrapError(resp *github.Response, err error, msg string, opts ...goerr.Option) error {
	base := types.ErrCollaboratorUnavailable
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		base = types.ErrNotFound
	}
	if resp != nil {
		opts = append(opts, goerr.V("status", resp.StatusCode))
	}
	return goerr.Wrap(base.Wrap(err), msg, opts...)
}
