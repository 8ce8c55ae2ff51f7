package model

import (
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type EventKind string

const (
	EventPush              EventKind = "push"
	EventPullRequest       EventKind = "pull_request"
	EventPullRequestReview EventKind = "pull_request_review"
	EventUnknown           EventKind = "unknown"
)

const (
	PlaceholderCommitMessage = "No commit message"
	PlaceholderActor         = "Unknown"
)

type Repository struct {
	FullName types.RepositoryFullName `json:"full_name"`
	HTMLURL  string                   `json:"html_url"`
}

type Review struct {
	State string `json:"state"`
	User  string `json:"user"`
}

// PipelineEvent is the canonical form of an inbound source-control webhook.
type PipelineEvent struct {
	Kind       EventKind  `json:"kind"`
	Action     string     `json:"action,omitempty"`
	Repository Repository `json:"repository"`
	Actor      string     `json:"actor"`

	CommitID      types.CommitSHA `json:"commit_id"`
	CommitMessage string          `json:"commit_message"`

	SourceBranch types.BranchName `json:"source_branch"`
	TargetBranch types.BranchName `json:"target_branch,omitempty"`
	// RefBranch is the branch the push ref points at. For a merge push it is the merge target.
	RefBranch types.BranchName `json:"ref_branch,omitempty"`

	IsMergeCommit bool `json:"is_merge_commit"`
	IsMainBranch  bool `json:"is_main_branch"`

	PullRequestURL    string                  `json:"pull_request_url,omitempty"`
	PullRequestNumber types.PullRequestNumber `json:"pull_request_number,omitempty"`
	PullRequestTitle  string                  `json:"pull_request_title,omitempty"`
	Merged            bool                    `json:"merged,omitempty"`
	Reviewer          string                  `json:"reviewer,omitempty"`
	Review            *Review                 `json:"review,omitempty"`
}

// IsMergeToMain is true for a push that carries a merge commit into main or master.
func (x *PipelineEvent) IsMergeToMain() bool {
	return x.Kind == EventPush && x.IsMergeCommit && IsMainBranchName(x.RefBranch)
}

// IsDirectMainPush is true for a plain push to main or master.
func (x *PipelineEvent) IsDirectMainPush() bool {
	return x.Kind == EventPush && !x.IsMergeCommit && x.IsMainBranch
}

// HasCommit reports whether the event carries a commit id or a real commit message.
func (x *PipelineEvent) HasCommit() bool {
	if x.CommitID != "" {
		return true
	}
	return x.CommitMessage != "" && x.CommitMessage != PlaceholderCommitMessage
}

func IsMainBranchName(name types.BranchName) bool {
	return name == "main" || name == "master"
}

// EventResult reports what handling a PipelineEvent did.
type EventResult struct {
	Identity TrackingIdentity `json:"identity"`
	// Reconciled is false when the board write failed. The event itself was valid.
	Reconciled bool          `json:"reconciled"`
	Upsert     *UpsertResult `json:"upsert,omitempty"`
	Monitoring bool          `json:"monitoring"`
	Ignored    bool          `json:"ignored,omitempty"`

	// Monitor is set when the event should start a Build Monitor run.
	Monitor *MonitorTarget `json:"-"`
}
