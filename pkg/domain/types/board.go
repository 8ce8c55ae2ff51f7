package types

import "log/slog"

type (
	BoardID       string
	ItemID        string
	ColumnKey     string
	ColumnID      string
	BoardAPIToken string
	BoardBackend  string
)

const (
	BoardBackendMonday BoardBackend = "monday"
	BoardBackendJira   BoardBackend = "jira"
	BoardBackendMemory BoardBackend = "memory"
)

// Semantic column keys. Board backends map them to their own column IDs.
const (
	ColumnGitHubStatus  ColumnKey = "github_status"
	ColumnJenkinsStatus ColumnKey = "jenkins_status"
	ColumnPRURL         ColumnKey = "pr_url"
	ColumnBuildURL      ColumnKey = "build_url"
	ColumnDeveloper     ColumnKey = "developer"
	ColumnReviewer      ColumnKey = "reviewer"
	ColumnLastUpdated   ColumnKey = "last_updated"
	ColumnCommitMessage ColumnKey = "commit_message"
	ColumnTestStatus    ColumnKey = "test_status"
	ColumnBuildStatus   ColumnKey = "build_status"
	ColumnDeployStatus  ColumnKey = "deploy_status"
	ColumnBuildNumber   ColumnKey = "build_number"
	ColumnTestCount     ColumnKey = "test_count"
	ColumnBuildTimeline ColumnKey = "build_timeline"
	ColumnRepoName      ColumnKey = "repo_name"
	ColumnRepoURL       ColumnKey = "repo_url"
	ColumnJenkinsJob    ColumnKey = "jenkins_job"
	ColumnDockerStatus  ColumnKey = "docker_status"
	ColumnContainerID   ColumnKey = "container_id"
	ColumnImageVersion  ColumnKey = "image_version"
	ColumnPorts         ColumnKey = "ports"
	ColumnHealth        ColumnKey = "health"
	ColumnResourceUsage ColumnKey = "resource_usage"
	ColumnDeployedAt    ColumnKey = "deployed_at"
)

// AllColumnKeys lists every semantic column in board display order.
func AllColumnKeys() []ColumnKey {
	return []ColumnKey{
		ColumnGitHubStatus, ColumnJenkinsStatus, ColumnPRURL, ColumnBuildURL,
		ColumnDeveloper, ColumnReviewer, ColumnLastUpdated, ColumnCommitMessage,
		ColumnTestStatus, ColumnBuildStatus, ColumnDeployStatus, ColumnBuildNumber,
		ColumnTestCount, ColumnBuildTimeline, ColumnRepoName, ColumnRepoURL,
		ColumnJenkinsJob, ColumnDockerStatus, ColumnContainerID, ColumnImageVersion,
		ColumnPorts, ColumnHealth, ColumnResourceUsage, ColumnDeployedAt,
	}
}

func (x BoardAPIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x BoardAPIToken) String() string {
	return "***********"
}
