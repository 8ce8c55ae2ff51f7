package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	GitHubWebhookSecret string
	GitHubEventType     string
	CommitSHA           string
	BranchName          string
	PullRequestNumber   int
	RepositoryFullName  string
)

const (
	GitHubEventPush              GitHubEventType = "push"
	GitHubEventPullRequest       GitHubEventType = "pull_request"
	GitHubEventPullRequestReview GitHubEventType = "pull_request_review"
	GitHubEventPing              GitHubEventType = "ping"
)

// Owner returns "owner" part of "owner/repo". Empty if the name has no slash.
func (x RepositoryFullName) Owner() string {
	for i := 0; i < len(x); i++ {
		if x[i] == '/' {
			return string(x[:i])
		}
	}
	return ""
}

// Name returns "repo" part of "owner/repo", or the whole value if it has no slash.
func (x RepositoryFullName) Name() string {
	for i := 0; i < len(x); i++ {
		if x[i] == '/' {
			return string(x[i+1:])
		}
	}
	return string(x)
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubWebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}
