package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// webhookPayload is the union of fields used from push, pull_request and
// pull_request_review payloads.
type webhookPayload struct {
	Action      string                    `json:"action"`
	Number      int                       `json:"number"`
	Ref         string                    `json:"ref"`
	Repository  *payloadRepository        `json:"repository"`
	Sender      *github.User              `json:"sender"`
	HeadCommit  *github.HeadCommit        `json:"head_commit"`
	Commits     []*github.HeadCommit      `json:"commits"`
	PullRequest *github.PullRequest       `json:"pull_request"`
	Review      *github.PullRequestReview `json:"review"`
}

type payloadRepository struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

var (
	mergeMarkers = []string{
		"Merge pull request",
		"Merge branch",
	}

	// Tried in order. The first capture group is the merged source branch.
	mergeSourcePatterns = []*regexp.Regexp{
		regexp.MustCompile(`from [^/\s]+/(\S+)`),
		regexp.MustCompile(`^Merge branch '([^']+)'`),
	}

	mergePullRequestPattern = regexp.MustCompile(`Merge pull request #(\d+)`)
)

// NormalizeWebhook converts a source-control webhook body into a PipelineEvent.
func (x *UseCase) NormalizeWebhook(ctx context.Context, eventType types.GitHubEventType, body []byte) (*model.PipelineEvent, error) {
	ev, err := Normalize(eventType, body)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("webhook normalized",
		slog.String("event_type", string(eventType)),
		slog.Any("event", ev),
	)
	return ev, nil
}

// Normalize converts a raw webhook body into a PipelineEvent. Missing optional
// fields get placeholders; only a body that is not a JSON object, or a pull
// request without head branch, is rejected with ErrMalformedPayload.
func Normalize(eventType types.GitHubEventType, body []byte) (*model.PipelineEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "webhook body is not a JSON object",
			goerr.V("event_type", eventType),
		)
	}

	var payload webhookPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload.Wrap(err), "failed to decode webhook body",
			goerr.V("event_type", eventType),
		)
	}

	ev := &model.PipelineEvent{
		Kind:   model.EventUnknown,
		Action: payload.Action,
		Actor:  payload.Sender.GetLogin(),
	}
	if payload.Repository != nil {
		ev.Repository = model.Repository{
			FullName: types.RepositoryFullName(payload.Repository.FullName),
			HTMLURL:  payload.Repository.HTMLURL,
		}
	}
	ev.RefBranch = refToBranch(payload.Ref)
	ev.CommitID = types.CommitSHA(payload.HeadCommit.GetID())
	if ev.CommitID == "" && len(payload.Commits) > 0 {
		ev.CommitID = types.CommitSHA(payload.Commits[0].GetID())
	}

	switch {
	case payload.PullRequest != nil:
		if err := normalizePullRequest(ev, &payload); err != nil {
			return nil, err
		}

	case payload.HeadCommit != nil:
		if err := normalizePush(ev, &payload); err != nil {
			return nil, err
		}
	}

	if ev.CommitMessage == "" {
		ev.CommitMessage = model.PlaceholderCommitMessage
	}
	if ev.Actor == "" {
		ev.Actor = model.PlaceholderActor
	}

	return ev, nil
}

func normalizePullRequest(ev *model.PipelineEvent, payload *webhookPayload) error {
	pr := payload.PullRequest

	ev.Kind = model.EventPullRequest
	if payload.Review != nil {
		ev.Kind = model.EventPullRequestReview
		ev.Review = &model.Review{
			State: payload.Review.GetState(),
			User:  payload.Review.GetUser().GetLogin(),
		}
	}

	ev.SourceBranch = types.BranchName(pr.GetHead().GetRef())
	ev.TargetBranch = types.BranchName(pr.GetBase().GetRef())
	if ev.SourceBranch == "" {
		return goerr.Wrap(types.ErrMalformedPayload, "pull request has no head branch",
			goerr.V("action", payload.Action),
			goerr.V("number", pr.GetNumber()),
		)
	}

	ev.PullRequestURL = pr.GetHTMLURL()
	ev.PullRequestTitle = pr.GetTitle()
	ev.PullRequestNumber = types.PullRequestNumber(pr.GetNumber())
	if ev.PullRequestNumber == 0 {
		ev.PullRequestNumber = types.PullRequestNumber(payload.Number)
	}
	ev.CommitMessage = pr.GetTitle()
	if sha := pr.GetHead().GetSHA(); sha != "" {
		ev.CommitID = types.CommitSHA(sha)
	}
	if login := pr.GetUser().GetLogin(); login != "" {
		ev.Actor = login
	}

	ev.Merged = pr.GetMerged()
	if payload.Action == "closed" && ev.Merged {
		ev.IsMergeCommit = true
		ev.Reviewer = pr.GetMergedBy().GetLogin()
		if ev.Reviewer == "" {
			ev.Reviewer = payload.Sender.GetLogin()
		}
		if ev.Reviewer == "" {
			ev.Reviewer = model.PlaceholderActor
		}
	}

	return nil
}

func normalizePush(ev *model.PipelineEvent, payload *webhookPayload) error {
	commit := payload.HeadCommit

	ev.Kind = model.EventPush
	ev.CommitMessage = commit.GetMessage()
	if author := commit.GetAuthor(); author != nil {
		if login := author.GetLogin(); login != "" {
			ev.Actor = login
		} else if name := author.GetName(); name != "" {
			ev.Actor = name
		}
	}

	if isMergeMessage(ev.CommitMessage) {
		ev.IsMergeCommit = true
		ev.TargetBranch = ev.RefBranch
		ev.SourceBranch = extractMergeSource(ev.CommitMessage)

		if ev.SourceBranch == "" {
			if n := extractMergePullRequest(ev.CommitMessage); n > 0 {
				ev.PullRequestNumber = n
				ev.SourceBranch = types.BranchName(fmt.Sprintf("PR-%d", n))
			}
		}
	}

	if ev.SourceBranch == "" {
		ev.SourceBranch = ev.RefBranch
	}
	if ev.SourceBranch == "" && ev.CommitID != "" {
		ev.SourceBranch = types.BranchName(commitIdentity(ev.CommitID))
	}
	if ev.SourceBranch == "" {
		return goerr.Wrap(types.ErrMalformedPayload, "push has neither branch ref nor commit id")
	}

	ev.IsMainBranch = model.IsMainBranchName(ev.SourceBranch)
	return nil
}

func isMergeMessage(msg string) bool {
	for _, marker := range mergeMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// extractMergeSource returns the merged branch named in the first line of a merge
// commit message. A merge of main or master itself is not a feature source and
// yields empty.
func extractMergeSource(msg string) types.BranchName {
	line, _, _ := strings.Cut(msg, "\n")
	line = strings.TrimSpace(line)

	for _, ptn := range mergeSourcePatterns {
		m := ptn.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		branch := types.BranchName(strings.TrimSpace(m[1]))
		if branch == "" || model.IsMainBranchName(branch) {
			continue
		}
		return branch
	}
	return ""
}

func extractMergePullRequest(msg string) types.PullRequestNumber {
	m := mergePullRequestPattern.FindStringSubmatch(msg)
	if len(m) < 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return types.PullRequestNumber(n)
}

func refToBranch(ref string) types.BranchName {
	return types.BranchName(strings.TrimPrefix(ref, "refs/heads/"))
}

func commitIdentity(id types.CommitSHA) string {
	s := string(id)
	if len(s) > 8 {
		s = s[:8]
	}
	return "Commit-" + s
}
