package usecase

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// Board labels
const (
	statusOpen             = "Open"
	statusInProgress       = "In Progress"
	statusCompleted        = "Completed"
	statusClosed           = "Closed"
	statusDirectPushToMain = "Direct Push to Main"

	jenkinsNotStarted = "Not Started"
	jenkinsBuilding   = "Building"
	jenkinsSuccess    = "Success"
	jenkinsFailed     = "Failed"
	jenkinsUnstable   = "Unstable"
	jenkinsAborted    = "Aborted"

	stagePending = "Pending"
	stageRunning = "Running"
	stageSuccess = "Success"
	stageFailed  = "Failed"
)

const autoTriggeredBuildNumber = "Auto-triggered by GitHub"

func repoColumns(ev *model.PipelineEvent) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnRepoName: model.Text(ev.Repository.FullName.Name()),
		types.ColumnRepoURL:  model.Text(ev.Repository.HTMLURL),
	}
}

func pullRequestLink(ev *model.PipelineEvent) model.ColumnValue {
	text := "Pull Request"
	if ev.PullRequestNumber > 0 {
		text = fmt.Sprintf("PR #%d", ev.PullRequestNumber)
	}
	return model.Link(ev.PullRequestURL, text)
}

func mergeColumns(base model.ColumnValues, extra ...model.ColumnValues) model.ColumnValues {
	for _, e := range extra {
		for k, v := range e {
			base[k] = v
		}
	}
	return base
}

// featurePushColumns is the projection of a push to a feature branch.
func featurePushColumns(ev *model.PipelineEvent, job types.JobName) model.ColumnValues {
	return mergeColumns(model.ColumnValues{
		types.ColumnGitHubStatus:  model.Label(statusInProgress),
		types.ColumnDeveloper:     model.Text(ev.Actor),
		types.ColumnCommitMessage: model.Text(ev.CommitMessage),
		types.ColumnPRURL:         pullRequestLink(ev),
		types.ColumnBuildStatus:   model.Label(stagePending),
		types.ColumnJenkinsJob:    model.Text(string(job)),
	}, repoColumns(ev))
}

// mergePushColumns is written to the feature item when its merge commit lands on main.
func mergePushColumns(ev *model.PipelineEvent, job types.JobName) model.ColumnValues {
	return mergeColumns(model.ColumnValues{
		types.ColumnGitHubStatus:  model.Label(statusCompleted),
		types.ColumnCommitMessage: model.Text(ev.CommitMessage),
		types.ColumnJenkinsStatus: model.Label(jenkinsBuilding),
		types.ColumnBuildStatus:   model.Label(stageRunning),
		types.ColumnJenkinsJob:    model.Text(string(job)),
	}, repoColumns(ev))
}

func directMainPushColumns(ev *model.PipelineEvent, job types.JobName, jobURL string) model.ColumnValues {
	return mergeColumns(model.ColumnValues{
		types.ColumnGitHubStatus:  model.Label(statusDirectPushToMain),
		types.ColumnDeveloper:     model.Text(ev.Actor),
		types.ColumnCommitMessage: model.Text(ev.CommitMessage),
	}, buildStartedColumns(autoTriggeredBuildNumber, jobURL, job), repoColumns(ev))
}

func pullRequestColumns(ev *model.PipelineEvent) model.ColumnValues {
	values := mergeColumns(model.ColumnValues{
		types.ColumnDeveloper: model.Text(ev.Actor),
		// carried on every transition so a close without merge never loses the link
		types.ColumnPRURL: pullRequestLink(ev),
	}, repoColumns(ev))

	switch ev.Action {
	case "opened":
		values[types.ColumnGitHubStatus] = model.Label(statusOpen)
		values[types.ColumnCommitMessage] = model.Text(ev.PullRequestTitle)

	case "closed":
		if ev.IsMergeCommit {
			values[types.ColumnGitHubStatus] = model.Label(statusCompleted)
			values[types.ColumnCommitMessage] = model.Text("Merged: " + ev.PullRequestTitle)
			values[types.ColumnReviewer] = model.Text(ev.Reviewer)
		} else {
			values[types.ColumnGitHubStatus] = model.Label(statusClosed)
		}

	default:
		// reopened, ready_for_review, synchronize and others
		values[types.ColumnGitHubStatus] = model.Label(statusInProgress)
	}

	return values
}

func reviewLabel(state string) string {
	switch strings.ToLower(state) {
	case "approved":
		return "Approved"
	case "changes_requested":
		return "Changes Requested"
	case "commented":
		return "Commented"
	default:
		return state
	}
}

func reviewColumns(ev *model.PipelineEvent) model.ColumnValues {
	var state, user string
	if ev.Review != nil {
		state, user = ev.Review.State, ev.Review.User
	}
	label := reviewLabel(state)
	if user == "" {
		user = model.PlaceholderActor
	}
	return model.ColumnValues{
		types.ColumnGitHubStatus:  model.Label("Review - " + label),
		types.ColumnCommitMessage: model.Text(fmt.Sprintf("PR Review: %s by %s", label, user)),
		types.ColumnPRURL:         pullRequestLink(ev),
	}
}

func buildStartedColumns(buildNumber, buildURL string, job types.JobName) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnJenkinsStatus: model.Label(jenkinsBuilding),
		types.ColumnBuildStatus:   model.Label(stageRunning),
		types.ColumnTestStatus:    model.Label(stageRunning),
		types.ColumnBuildNumber:   model.Text(buildNumber),
		types.ColumnBuildURL:      model.Link(buildURL, buildNumber),
		types.ColumnJenkinsJob:    model.Text(string(job)),
	}
}

func jenkinsLabel(state model.BuildState) string {
	switch state {
	case model.BuildSuccess:
		return jenkinsSuccess
	case model.BuildUnstable:
		return jenkinsUnstable
	case model.BuildAborted:
		return jenkinsAborted
	case model.BuildBuilding, model.BuildQueued:
		return jenkinsBuilding
	case model.BuildFailed:
		return jenkinsFailed
	default:
		return jenkinsNotStarted
	}
}

func stageLabel(success bool) string {
	if success {
		return stageSuccess
	}
	return stageFailed
}

// buildCompletedColumns is written when the build reaches a terminal state. build
// may be nil when the monitor failed before seeing a build.
func buildCompletedColumns(build *model.BuildRecord, state model.BuildState) model.ColumnValues {
	success := state == model.BuildSuccess
	timeline := "Build failed"
	switch state {
	case model.BuildSuccess:
		timeline = "Build completed successfully"
	case model.BuildUnstable:
		timeline = "Build unstable"
	case model.BuildAborted:
		timeline = "Build aborted"
	}

	values := model.ColumnValues{
		types.ColumnBuildStatus:   model.Label(stageLabel(success)),
		types.ColumnJenkinsStatus: model.Label(jenkinsLabel(state)),
		types.ColumnBuildTimeline: model.Text(timeline),
		types.ColumnDeployStatus:  model.Label(stageLabel(success)),
	}
	if build != nil {
		if build.Duration > 0 {
			values[types.ColumnBuildTimeline] = model.Text(fmt.Sprintf("%s in %s", timeline, build.Duration))
		}
		number := fmt.Sprintf("%d", build.BuildNumber)
		values[types.ColumnBuildNumber] = model.Text(number)
		values[types.ColumnBuildURL] = model.Link(build.BuildURL, number)
	}
	return values
}

func testStageColumns(success bool, report *model.TestReport) model.ColumnValues {
	count := "N/A"
	if report != nil && report.Total > 0 {
		count = fmt.Sprintf("%d/%d", report.Passed, report.Total)
	} else if success {
		count = "All"
	}
	return model.ColumnValues{
		types.ColumnTestStatus: model.Label(stageLabel(success)),
		types.ColumnTestCount:  model.Text(count),
	}
}

func buildStageColumns(success bool) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnBuildStatus: model.Label(stageLabel(success)),
	}
}

func deployStageColumns(success bool) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnDeployStatus: model.Label(stageLabel(success)),
	}
}

func genericStageColumns(stage model.StageResult) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnBuildTimeline: model.Text(fmt.Sprintf("Stage: %s (%s, %dms)", stage.Name, stage.Status, stage.DurationMs)),
	}
}

func containerColumns(c *model.ContainerRecord) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnDockerStatus:  model.Label(c.Status),
		types.ColumnContainerID:   model.Text(c.ContainerID),
		types.ColumnImageVersion:  model.Text(c.ImageVersion),
		types.ColumnPorts:         model.Text(c.ExposedPorts),
		types.ColumnHealth:        model.Text(c.Health),
		types.ColumnResourceUsage: model.Text(c.ResourceUsage),
		types.ColumnDeployedAt:    model.Text(c.DeployedAt),
	}
}

func deployedColumns(c *model.ContainerRecord) model.ColumnValues {
	return mergeColumns(containerColumns(c), model.ColumnValues{
		types.ColumnDeployStatus: model.Label(stageSuccess),
	})
}

func deployFailedColumns(msg string) model.ColumnValues {
	if msg == "" {
		msg = "Docker deployment failed"
	}
	return model.ColumnValues{
		types.ColumnDeployStatus:  model.Label(stageFailed),
		types.ColumnDockerStatus:  model.Label("Failed"),
		types.ColumnBuildTimeline: model.Text(msg),
	}
}

func containerStatusColumns(c *model.ContainerRecord) model.ColumnValues {
	return model.ColumnValues{
		types.ColumnDockerStatus:  model.Label(c.Status),
		types.ColumnHealth:        model.Text(c.Health),
		types.ColumnResourceUsage: model.Text(c.ResourceUsage),
	}
}
