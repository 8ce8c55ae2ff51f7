package cli

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
	"github.com/m-mizutani/pipeboard/pkg/utils/safe"
)

func simulateCommand() *cli.Command {
	var (
		dir       string
		serverURL string
		secret    types.GitHubWebhookSecret
		meta      gitMetadata
	)

	return &cli.Command{
		Name:  "simulate",
		Usage: "Send a push webhook built from a local git repository to a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Directory of the git repository",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "url",
				Aliases:     []string{"u"},
				Usage:       "Base URL of the pipeboard server",
				Value:       "http://127.0.0.1:8000",
				Sources:     cli.EnvVars("PIPEBOARD_SIMULATE_URL"),
				Destination: &serverURL,
			},
			&cli.StringFlag{
				Name:        "github-webhook-secret",
				Usage:       "Secret to sign the payload with",
				Sources:     cli.EnvVars("PIPEBOARD_GITHUB_WEBHOOK_SECRET"),
				Destination: (*string)(&secret),
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch name (default: current branch)",
				Destination: &meta.Branch,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "Commit message (default: HEAD commit message)",
				Destination: &meta.Message,
			},
			&cli.StringFlag{
				Name:    "repository",
				Aliases: []string{"r"},
				Usage:   "Repository as owner/repo (default: origin remote)",
				Action: func(ctx context.Context, c *cli.Command, v string) error {
					full := types.RepositoryFullName(v)
					if full.Owner() == "" || full.Name() == "" {
						return goerr.Wrap(types.ErrInvalidOption, "repository must be owner/repo", goerr.V("repository", v))
					}
					meta.Owner, meta.RepoName = full.Owner(), full.Name()
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := readGitMetadata(dir, &meta); err != nil {
				return err
			}
			if meta.Branch == "" {
				return goerr.Wrap(types.ErrInvalidOption, "HEAD is detached, set --branch")
			}

			payload, err := buildPushPayload(meta, logging.CtxTime(ctx))
			if err != nil {
				return err
			}

			logging.From(ctx).Info("sending push webhook",
				slog.String("url", serverURL),
				slog.String("repository", meta.Owner+"/"+meta.RepoName),
				slog.String("branch", meta.Branch),
				slog.String("commit", meta.CommitID),
			)

			body, err := sendWebhook(ctx, serverURL, "push", payload, secret)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(c.Root().Writer, string(body))
			return nil
		},
	}
}

func buildPushPayload(meta gitMetadata, now time.Time) ([]byte, error) {
	fullName := meta.Owner + "/" + meta.RepoName
	repoURL := "https://github.com/" + fullName
	commit := &github.HeadCommit{
		ID:        github.String(meta.CommitID),
		Message:   github.String(meta.Message),
		Timestamp: &github.Timestamp{Time: now},
		URL:       github.String(repoURL + "/commit/" + meta.CommitID),
		Author: &github.CommitAuthor{
			Name:  github.String(meta.AuthorName),
			Email: github.String(meta.AuthorEmail),
		},
	}

	ev := &github.PushEvent{
		Ref:   github.String("refs/heads/" + meta.Branch),
		After: github.String(meta.CommitID),
		Repo: &github.PushEventRepository{
			Name:          github.String(meta.RepoName),
			FullName:      github.String(fullName),
			HTMLURL:       github.String(repoURL),
			DefaultBranch: github.String("main"),
			Owner:         &github.User{Login: github.String(meta.Owner)},
		},
		HeadCommit: commit,
		Commits:    []*github.HeadCommit{commit},
	}

	raw, err := json.Marshal(ev)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode push payload")
	}
	return raw, nil
}

func signPayload(secret types.GitHubWebhookSecret, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// sendWebhook posts payload to the GitHub webhook endpoint of the server and
// returns the response body.
func sendWebhook(ctx context.Context, serverURL, event string, payload []byte, secret types.GitHubWebhookSecret) ([]byte, error) {
	endpoint := strings.TrimSuffix(serverURL, "/") + "/webhook/github"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption.Wrap(err), "invalid server URL",
			goerr.V("url", serverURL),
		)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", uuid.NewString())
	if secret != "" {
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, payload))
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable.Wrap(err), "failed to send webhook",
			goerr.V("url", endpoint),
		)
	}
	defer safe.Close(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable.Wrap(err), "failed to read webhook response")
	}
	if resp.StatusCode >= 300 {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable, "webhook was rejected",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}
	return body, nil
}
