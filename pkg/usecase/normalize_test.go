package usecase_test

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/usecase"
)

//go:embed testdata/push_feature.json
var pushFeaturePayload []byte

//go:embed testdata/push_merge_pr.json
var pushMergePayload []byte

//go:embed testdata/push_main_direct.json
var pushMainDirectPayload []byte

//go:embed testdata/pull_request_opened.json
var prOpenedPayload []byte

//go:embed testdata/pull_request_closed_merged.json
var prMergedPayload []byte

//go:embed testdata/pull_request_closed_unmerged.json
var prClosedPayload []byte

//go:embed testdata/pull_request_review.json
var prReviewPayload []byte

//go:embed testdata/ping.json
var pingPayload []byte

func TestNormalizePush(t *testing.T) {
	t.Run("feature branch push", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPush, pushFeaturePayload)).NoError(t)
		gt.V(t, ev.Kind).Equal(model.EventPush)
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("feature-login"))
		gt.V(t, ev.RefBranch).Equal(types.BranchName("feature-login"))
		gt.V(t, ev.TargetBranch).Equal(types.BranchName(""))
		gt.V(t, ev.Actor).Equal("alice")
		gt.V(t, ev.CommitID).Equal(types.CommitSHA("3f1c2e5a9b7d4c6e8f0a1b2c3d4e5f6a7b8c9d0e"))
		gt.V(t, ev.CommitMessage).Equal("Add login form")
		gt.V(t, ev.Repository.FullName).Equal(types.RepositoryFullName("acme/sample-app"))
		gt.V(t, ev.Repository.HTMLURL).Equal("https://github.com/acme/sample-app")
		gt.False(t, ev.IsMergeCommit)
		gt.False(t, ev.IsMainBranch)
	})

	t.Run("merge pull request commit yields feature branch", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPush, pushMergePayload)).NoError(t)
		gt.V(t, ev.Kind).Equal(model.EventPush)
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("feature-x"))
		gt.V(t, ev.TargetBranch).Equal(types.BranchName("main"))
		gt.True(t, ev.IsMergeCommit)
		gt.False(t, ev.IsMainBranch)
		gt.True(t, ev.IsMergeToMain())
	})

	t.Run("direct push to main", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPush, pushMainDirectPayload)).NoError(t)
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("main"))
		gt.True(t, ev.IsMainBranch)
		gt.False(t, ev.IsMergeCommit)
		gt.True(t, ev.IsDirectMainPush())
		// author has no username, name is used
		gt.V(t, ev.Actor).Equal("Carol White")
	})

	t.Run("merge markers", func(t *testing.T) {
		testCases := []struct {
			name    string
			message string
			ref     string
			source  types.BranchName
			pr      types.PullRequestNumber
		}{
			{
				name:    "round trip of merge pull request message",
				message: "Merge pull request #8 from alice/feature-x",
				ref:     "refs/heads/main",
				source:  "feature-x",
			},
			{
				name:    "branch with slash",
				message: "Merge pull request #9 from alice/feature/nested-name",
				ref:     "refs/heads/main",
				source:  "feature/nested-name",
			},
			{
				name:    "merge branch message",
				message: "Merge branch 'feature-y' into main",
				ref:     "refs/heads/main",
				source:  "feature-y",
			},
			{
				name:    "merge of main into feature falls back to ref",
				message: "Merge branch 'main' into feature-z",
				ref:     "refs/heads/feature-z",
				source:  "feature-z",
			},
			{
				name:    "pull request number when branch is not extractable",
				message: "Merge pull request #42 from alice/main",
				ref:     "refs/heads/main",
				source:  "PR-42",
				pr:      42,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				body := []byte(`{"ref":"` + tc.ref + `","repository":{"full_name":"acme/app"},"head_commit":{"id":"abcdef0123456789","message":"` + tc.message + `"}}`)
				ev := gt.R1(usecase.Normalize(types.GitHubEventPush, body)).NoError(t)
				gt.True(t, ev.IsMergeCommit)
				gt.V(t, ev.SourceBranch).Equal(tc.source)
				gt.V(t, ev.PullRequestNumber).Equal(tc.pr)
			})
		}
	})

	t.Run("missing optional fields get placeholders", func(t *testing.T) {
		body := []byte(`{"ref":"refs/heads/feature-a","head_commit":{}}`)
		ev := gt.R1(usecase.Normalize(types.GitHubEventPush, body)).NoError(t)
		gt.V(t, ev.CommitMessage).Equal(model.PlaceholderCommitMessage)
		gt.V(t, ev.Actor).Equal(model.PlaceholderActor)
		gt.V(t, ev.CommitID).Equal(types.CommitSHA(""))
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("feature-a"))
	})

	t.Run("commit id is taken from commits when head commit has none", func(t *testing.T) {
		body := []byte(`{"ref":"refs/heads/feature-a","head_commit":{"message":"wip"},"commits":[{"id":"c0ffee00c0ffee00"}]}`)
		ev := gt.R1(usecase.Normalize(types.GitHubEventPush, body)).NoError(t)
		gt.V(t, ev.CommitID).Equal(types.CommitSHA("c0ffee00c0ffee00"))
	})

	t.Run("push without ref uses commit identity", func(t *testing.T) {
		body := []byte(`{"head_commit":{"id":"0123456789abcdef","message":"detached"}}`)
		ev := gt.R1(usecase.Normalize(types.GitHubEventPush, body)).NoError(t)
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("Commit-01234567"))
	})

	t.Run("push without ref nor commit id is malformed", func(t *testing.T) {
		body := []byte(`{"head_commit":{"message":"detached"}}`)
		_, err := usecase.Normalize(types.GitHubEventPush, body)
		gt.True(t, errors.Is(err, types.ErrMalformedPayload))
	})
}

func TestNormalizePullRequest(t *testing.T) {
	t.Run("opened pull request", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPullRequest, prOpenedPayload)).NoError(t)
		gt.V(t, ev.Kind).Equal(model.EventPullRequest)
		gt.V(t, ev.Action).Equal("opened")
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("feature-x"))
		gt.V(t, ev.TargetBranch).Equal(types.BranchName("main"))
		gt.V(t, ev.PullRequestNumber).Equal(types.PullRequestNumber(8))
		gt.V(t, ev.PullRequestURL).Equal("https://github.com/acme/sample-app/pull/8")
		gt.V(t, ev.CommitID).Equal(types.CommitSHA("aaaabbbbccccddddeeeeffff0000111122223333"))
		gt.V(t, ev.CommitMessage).Equal("Add feature x")
		gt.V(t, ev.Actor).Equal("alice")
		gt.False(t, ev.IsMergeCommit)
		gt.False(t, ev.IsMainBranch)
	})

	t.Run("merged pull request", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPullRequest, prMergedPayload)).NoError(t)
		gt.True(t, ev.IsMergeCommit)
		gt.True(t, ev.Merged)
		gt.V(t, ev.Reviewer).Equal("bob")
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("feature-x"))
	})

	t.Run("closed without merge", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPullRequest, prClosedPayload)).NoError(t)
		gt.False(t, ev.IsMergeCommit)
		gt.V(t, ev.Reviewer).Equal("")
	})

	t.Run("review", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPullRequestReview, prReviewPayload)).NoError(t)
		gt.V(t, ev.Kind).Equal(model.EventPullRequestReview)
		gt.V(t, ev.Review.State).Equal("approved")
		gt.V(t, ev.Review.User).Equal("dave")
		gt.V(t, ev.SourceBranch).Equal(types.BranchName("feature-x"))
	})

	t.Run("pull request without head branch is malformed", func(t *testing.T) {
		body := []byte(`{"action":"opened","pull_request":{"number":3,"base":{"ref":"main"}}}`)
		_, err := usecase.Normalize(types.GitHubEventPullRequest, body)
		gt.True(t, errors.Is(err, types.ErrMalformedPayload))
	})
}

func TestNormalizeUnknown(t *testing.T) {
	t.Run("ping is unknown but valid", func(t *testing.T) {
		ev := gt.R1(usecase.Normalize(types.GitHubEventPing, pingPayload)).NoError(t)
		gt.V(t, ev.Kind).Equal(model.EventUnknown)
		gt.V(t, ev.Actor).Equal("alice")
	})

	t.Run("non object bodies are malformed", func(t *testing.T) {
		for _, body := range []string{"", "null", "[]", `"push"`, "{broken"} {
			_, err := usecase.Normalize(types.GitHubEventPush, []byte(body))
			gt.True(t, errors.Is(err, types.ErrMalformedPayload))
		}
	})
}
