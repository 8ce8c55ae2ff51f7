package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/mock"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra"
	"github.com/m-mizutani/pipeboard/pkg/usecase"
)

func handle(t *testing.T, uc *usecase.UseCase, eventType types.GitHubEventType, body []byte) *model.EventResult {
	t.Helper()
	ev := gt.R1(uc.NormalizeWebhook(t.Context(), eventType, body)).NoError(t)
	return gt.R1(uc.HandlePipelineEvent(t.Context(), ev)).NoError(t)
}

func TestHandlePipelineEvent(t *testing.T) {
	t.Run("feature push creates in progress item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		result := handle(t, uc, types.GitHubEventPush, pushFeaturePayload)

		gt.True(t, result.Reconciled)
		gt.V(t, result.Upsert.Action).Equal(model.UpsertCreated)
		gt.True(t, result.Monitor == nil)

		item := findByName(t, board, "feature-login")
		gt.True(t, item != nil)
		gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("In Progress")
		gt.V(t, item.Columns[types.ColumnDeveloper].Text).Equal("alice")
		gt.V(t, item.Columns[types.ColumnCommitMessage].Text).Equal("Add login form")
		gt.V(t, item.Columns[types.ColumnRepoName].Text).Equal("sample-app")
		gt.V(t, item.Columns[types.ColumnJenkinsJob].Text).Equal("sample-app")
	})

	t.Run("feature lifecycle keeps one item", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)

		opened := handle(t, uc, types.GitHubEventPullRequest, prOpenedPayload)
		gt.V(t, opened.Identity.CanonicalName).Equal("feature-x")
		gt.V(t, opened.Identity.SecondaryName).Equal("PR-8")
		handle(t, uc, types.GitHubEventPullRequestReview, prReviewPayload)

		item := findByName(t, board, "feature-x")
		gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("Review - Approved")
		gt.V(t, item.Columns[types.ColumnCommitMessage].Text).Equal("PR Review: Approved by dave")

		handle(t, uc, types.GitHubEventPullRequest, prMergedPayload)
		merged := handle(t, uc, types.GitHubEventPush, pushMergePayload)
		gt.V(t, merged.Upsert.Action).Equal(model.UpsertUpdated)
		gt.True(t, merged.Monitor != nil)
		gt.V(t, merged.Monitor.JobName).Equal(types.JobName("sample-app"))
		gt.V(t, merged.Monitor.Identity.CanonicalName).Equal("feature-x")

		items := gt.R1(board.ListItems(t.Context())).NoError(t)
		gt.A(t, items).Length(1)

		item = items[0]
		gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("Completed")
		gt.V(t, item.Columns[types.ColumnReviewer].Text).Equal("bob")
		gt.V(t, item.Columns[types.ColumnJenkinsStatus].Text).Equal("Building")
		gt.V(t, item.Columns[types.ColumnPRURL].URL).Equal("https://github.com/acme/sample-app/pull/8")
	})

	t.Run("closed without merge keeps pull request link", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		handle(t, uc, types.GitHubEventPullRequest, prClosedPayload)

		item := findByName(t, board, "feature-y")
		gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("Closed")
		gt.V(t, item.Columns[types.ColumnPRURL].URL).Equal("https://github.com/acme/sample-app/pull/9")
	})

	t.Run("direct push to main", func(t *testing.T) {
		ci := &mock.CIMock{
			JobURLFunc: func(job types.JobName) string {
				return "https://ci.example.com/job/" + string(job) + "/"
			},
		}
		uc, board := newTestUseCase(t, []infra.Option{infra.WithCI(ci)})
		result := handle(t, uc, types.GitHubEventPush, pushMainDirectPayload)

		gt.V(t, result.Identity.CanonicalName).Equal(model.MainDirectPushName)
		gt.True(t, result.Monitor != nil)

		item := findByName(t, board, model.MainDirectPushName)
		gt.True(t, item != nil)
		gt.V(t, item.Columns[types.ColumnGitHubStatus].Text).Equal("Direct Push to Main")
		gt.V(t, item.Columns[types.ColumnJenkinsStatus].Text).Equal("Building")
		gt.V(t, item.Columns[types.ColumnBuildNumber].Text).Equal("Auto-triggered by GitHub")
		gt.V(t, item.Columns[types.ColumnBuildURL].URL).Equal("https://ci.example.com/job/sample-app/")
		gt.V(t, item.Columns[types.ColumnDeveloper].Text).Equal("Carol White")
	})

	t.Run("ping is ignored", func(t *testing.T) {
		uc, board := newTestUseCase(t, nil)
		result := handle(t, uc, types.GitHubEventPing, pingPayload)
		gt.True(t, result.Ignored)
		gt.A(t, gt.R1(board.ListItems(t.Context())).NoError(t)).Length(0)
	})

	t.Run("board failure does not fail the event", func(t *testing.T) {
		board := &mock.BoardMock{
			ListItemsFunc: func(ctx context.Context) ([]*model.BoardItem, error) {
				return nil, errors.New("service unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithBoard(board), infra.WithContainerRuntime(nil)))
		result := handle(t, uc, types.GitHubEventPush, pushFeaturePayload)
		gt.False(t, result.Reconciled)
		gt.V(t, result.Identity.CanonicalName).Equal("feature-login")
	})

	t.Run("merge source is resolved by pull request number", func(t *testing.T) {
		sc := &mock.SourceControlMock{
			GetPullRequestFunc: func(ctx context.Context, owner, repo string, number types.PullRequestNumber) (*github.PullRequest, error) {
				gt.V(t, owner).Equal("acme")
				gt.V(t, repo).Equal("sample-app")
				gt.V(t, number).Equal(types.PullRequestNumber(42))
				return &github.PullRequest{
					Head: &github.PullRequestBranch{Ref: github.String("feature-z")},
				}, nil
			},
		}
		uc, board := newTestUseCase(t, []infra.Option{infra.WithSourceControl(sc)})

		body := []byte(`{"ref":"refs/heads/main","repository":{"full_name":"acme/sample-app"},"head_commit":{"id":"abcdef0123456789","message":"Merge pull request #42 from acme/main"}}`)
		result := handle(t, uc, types.GitHubEventPush, body)
		gt.V(t, result.Identity.CanonicalName).Equal("feature-z")
		gt.V(t, result.Identity.SecondaryName).Equal("PR-42")
		gt.True(t, findByName(t, board, "feature-z") != nil)
	})

	t.Run("merge source stays PR name when lookup fails", func(t *testing.T) {
		sc := &mock.SourceControlMock{
			GetPullRequestFunc: func(ctx context.Context, owner, repo string, number types.PullRequestNumber) (*github.PullRequest, error) {
				return nil, errors.New("not found")
			},
		}
		uc, _ := newTestUseCase(t, []infra.Option{infra.WithSourceControl(sc)})

		body := []byte(`{"ref":"refs/heads/main","repository":{"full_name":"acme/sample-app"},"head_commit":{"id":"abcdef0123456789","message":"Merge pull request #42 from acme/main"}}`)
		result := handle(t, uc, types.GitHubEventPush, body)
		gt.V(t, result.Identity.CanonicalName).Equal("PR-42")
	})
}
