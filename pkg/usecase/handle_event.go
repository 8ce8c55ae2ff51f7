package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// HandlePipelineEvent reconciles the board item of the event. A board failure does
// not fail the event; it is reported by EventResult.Reconciled. When the event is
// a merge to main or a direct push to main, EventResult.Monitor describes the
// Build Monitor run to start.
func (x *UseCase) HandlePipelineEvent(ctx context.Context, ev *model.PipelineEvent) (*model.EventResult, error) {
	if ev.Kind == model.EventUnknown {
		logging.From(ctx).Info("ignore event without pull request nor head commit", slog.String("action", ev.Action))
		return &model.EventResult{Ignored: true}, nil
	}

	x.enrichMergeSource(ctx, ev)

	id, err := x.resolveIdentity(ev)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithIdentity(ctx, id.CanonicalName)

	job := x.jobName(ev.Repository.FullName)

	var columns model.ColumnValues
	switch {
	case ev.Kind == model.EventPullRequest:
		columns = pullRequestColumns(ev)
	case ev.Kind == model.EventPullRequestReview:
		columns = reviewColumns(ev)
	case ev.IsMergeToMain():
		columns = mergePushColumns(ev, job)
	case ev.IsDirectMainPush():
		columns = directMainPushColumns(ev, job, x.jobURL(job))
	default:
		columns = featurePushColumns(ev, job)
	}

	result := &model.EventResult{Identity: id}
	upsert, err := x.Upsert(ctx, id, columns, &model.CommitRef{ID: ev.CommitID, Message: ev.CommitMessage})
	if err != nil {
		errutil.HandleError(ctx, "failed to reconcile board item", err)
	} else {
		result.Reconciled = true
		result.Upsert = upsert
	}

	if ev.IsMergeToMain() || ev.IsDirectMainPush() {
		result.Monitor = &model.MonitorTarget{
			Identity:       id,
			JobName:        job,
			RepositoryName: string(ev.Repository.FullName),
			Commit:         model.CommitRef{ID: ev.CommitID, Message: ev.CommitMessage},
		}
	}

	return result, nil
}

func (x *UseCase) jobURL(job types.JobName) string {
	if ci := x.clients.CI(); ci != nil && job != "" {
		return ci.JobURL(job)
	}
	return ""
}

// enrichMergeSource replaces a synthesized PR-<n> source branch with the head
// branch of that pull request. The PR-<n> name is kept as secondary identity by
// the resolver.
func (x *UseCase) enrichMergeSource(ctx context.Context, ev *model.PipelineEvent) {
	sc := x.clients.SourceControl()
	if sc == nil || ev.Kind != model.EventPush || !ev.IsMergeCommit || ev.PullRequestNumber == 0 {
		return
	}
	if !strings.HasPrefix(string(ev.SourceBranch), "PR-") {
		return
	}

	owner, repo := ev.Repository.FullName.Owner(), ev.Repository.FullName.Name()
	if owner == "" {
		return
	}

	pr, err := sc.GetPullRequest(ctx, owner, repo, ev.PullRequestNumber)
	if err != nil {
		errutil.Warn(ctx, "failed to fetch pull request of merge commit", err)
		return
	}
	if head := pr.GetHead().GetRef(); head != "" && !model.IsMainBranchName(types.BranchName(head)) {
		logging.From(ctx).Info("merge source resolved by pull request",
			slog.Int("number", int(ev.PullRequestNumber)),
			slog.String("branch", head),
		)
		ev.SourceBranch = types.BranchName(head)
	}
}
