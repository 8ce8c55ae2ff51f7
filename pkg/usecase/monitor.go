package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

type stageKind int

const (
	stageGeneric stageKind = iota
	stageTest
	stageBuild
	stageDeploy
)

// Stage names are matched case-insensitively by substring, in this order.
var stageRules = []struct {
	keyword string
	kind    stageKind
}{
	{"test", stageTest},
	{"build", stageBuild},
	{"deploy", stageDeploy},
}

func classifyStage(name string) stageKind {
	lower := strings.ToLower(name)
	for _, rule := range stageRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.kind
		}
	}
	return stageGeneric
}

// jobName derives the CI job from "owner/<job>", falling back to the default job.
func (x *UseCase) jobName(repo types.RepositoryFullName) types.JobName {
	if repo.Owner() != "" && repo.Name() != "" {
		return types.JobName(repo.Name())
	}
	return x.defaultJob
}

// StartMonitor registers a run for the target and runs it in a new goroutine.
// ctx must outlive the caller's request. It returns false, and starts nothing,
// when CI is not configured or a run for the same identity is still active.
func (x *UseCase) StartMonitor(ctx context.Context, target model.MonitorTarget) bool {
	ctx = logging.WithIdentity(ctx, target.Identity.CanonicalName)
	logger := logging.From(ctx)

	if x.clients.CI() == nil {
		logger.Warn("CI is not configured, build monitor is not started")
		return false
	}
	if target.JobName == "" {
		logger.Warn("CI job is unknown, build monitor is not started", slog.String("repository", target.RepositoryName))
		return false
	}

	if !x.monitors.begin(target, logging.CtxTime(ctx)) {
		logger.Info("build monitor is already running for identity")
		return false
	}

	go func() {
		if err := x.runMonitor(ctx, target); err != nil {
			errutil.HandleError(ctx, "build monitor failed", err)
		}
	}()
	return true
}

// RunMonitor registers a run and blocks until it reaches a terminal state.
func (x *UseCase) RunMonitor(ctx context.Context, target model.MonitorTarget) error {
	if x.clients.CI() == nil {
		return goerr.Wrap(types.ErrCollaboratorUnavailable, "CI is not configured")
	}
	if !x.monitors.begin(target, logging.CtxTime(ctx)) {
		return goerr.Wrap(types.ErrMonitoring, "build monitor is already running",
			goerr.V("identity", target.Identity.CanonicalName),
		)
	}
	return x.runMonitor(ctx, target)
}

func (x *UseCase) ListMonitors(_ context.Context) []model.MonitorRun {
	return x.monitors.list()
}

func (x *UseCase) setMonitorState(ctx context.Context, target model.MonitorTarget, f func(run *model.MonitorRun)) {
	x.monitors.update(target.Identity.CanonicalName, logging.CtxTime(ctx), f)
}

func (x *UseCase) runMonitor(ctx context.Context, target model.MonitorTarget) error {
	ci := x.clients.CI()
	ctx = logging.WithIdentity(ctx, target.Identity.CanonicalName)
	ctx = logging.WithAttrs(ctx, slog.String("job", string(target.JobName)))
	logger := logging.From(ctx)
	logger.Info("build monitor started")

	var build *model.BuildRecord
	fail := func(err error) error {
		err = goerr.Wrap(types.ErrMonitoring.Wrap(err), "build monitor aborted",
			goerr.V("identity", target.Identity.CanonicalName),
			goerr.V("job", target.JobName),
		)
		x.setMonitorState(ctx, target, func(run *model.MonitorRun) {
			run.State = model.MonitorFailed
			run.Error = err.Error()
		})

		// the run context may be cancelled on shutdown; the failure is still written
		writeCtx := context.WithoutCancel(ctx)
		if _, uerr := x.Upsert(writeCtx, target.Identity, buildCompletedColumns(build, model.BuildFailed), nil); uerr != nil {
			errutil.HandleError(writeCtx, "failed to write monitor failure to board", uerr)
		}
		return err
	}

	if err := sleep(ctx, x.monitorCfg.SettleDelay); err != nil {
		return fail(err)
	}

	last, err := ci.GetLastBuild(ctx, target.JobName)
	if err != nil {
		return fail(err)
	}
	build = last

	x.setMonitorState(ctx, target, func(run *model.MonitorRun) {
		run.State = model.MonitorPolling
		run.BuildNumber = build.BuildNumber
	})
	started := buildStartedColumns(fmt.Sprintf("%d", build.BuildNumber), build.BuildURL, target.JobName)
	if _, err := x.Upsert(ctx, target.Identity, started, nil); err != nil {
		errutil.HandleError(ctx, "failed to write build start to board", err)
	}

	final, err := x.pollBuild(ctx, ci, target.JobName, build.BuildNumber)
	if err != nil {
		return fail(err)
	}
	build = final
	logger.Info("build finished", slog.Any("state", final.State), slog.Int64("number", int64(final.BuildNumber)))

	completed, err := x.Upsert(ctx, target.Identity, buildCompletedColumns(final, final.State), nil)
	if err != nil {
		errutil.HandleError(ctx, "failed to write build result to board", err)
	}

	if final.State == model.BuildSuccess {
		if err := sleep(ctx, x.monitorCfg.DeployDelay); err != nil {
			return fail(err)
		}
		x.updateDeployment(ctx, target)
	}

	if err := x.fanOutStages(ctx, ci, target, final); err != nil {
		return fail(err)
	}

	if completed != nil && completed.ItemID != "" {
		if err := x.clients.Board().CreateComment(ctx, completed.ItemID, buildSummary(final)); err != nil {
			errutil.Warn(ctx, "failed to post build summary", err)
		}
	}

	x.setMonitorState(ctx, target, func(run *model.MonitorRun) {
		run.State = model.MonitorStateFromBuild(final.State)
	})
	logger.Info("build monitor completed")
	return nil
}

// pollBuild re-fetches the build at a fixed interval until CI reports it is no longer building.
func (x *UseCase) pollBuild(ctx context.Context, ci interfaces.CI, job types.JobName, number types.BuildNumber) (*model.BuildRecord, error) {
	for {
		build, err := ci.GetBuild(ctx, job, number)
		if err != nil {
			return nil, err
		}
		if build.State.IsTerminal() {
			return build, nil
		}

		logging.From(ctx).Debug("build is still running", slog.Int64("number", int64(number)))
		if err := sleep(ctx, x.monitorCfg.PollInterval); err != nil {
			return nil, err
		}
	}
}

// updateDeployment locates the container of a successful build and writes its
// state. Every failure here is logged only; the container often runs on another
// host.
func (x *UseCase) updateDeployment(ctx context.Context, target model.MonitorTarget) {
	logger := logging.From(ctx)
	runtime := x.clients.ContainerRuntime()
	if runtime == nil {
		return
	}

	containers, err := runtime.List(ctx)
	if err != nil {
		errutil.Warn(ctx, "failed to list containers", err)
		return
	}

	name, ok := LocateContainer(string(target.JobName), containers)
	if !ok && target.RepositoryName != "" {
		name, ok = LocateContainer(types.RepositoryFullName(target.RepositoryName).Name(), containers)
	}
	if !ok {
		logger.Info("no container found for deployed job", slog.Int("containers", len(containers)))
		return
	}

	record, err := runtime.Inspect(ctx, name)
	if err != nil {
		errutil.Warn(ctx, "failed to inspect container", err)
		return
	}

	if _, err := x.Upsert(ctx, target.Identity, deployedColumns(record), nil); err != nil {
		errutil.HandleError(ctx, "failed to write deployment to board", err)
	}
}

// fanOutStages writes one update per CI stage, pausing between updates. A job
// without stage information is not an error.
func (x *UseCase) fanOutStages(ctx context.Context, ci interfaces.CI, target model.MonitorTarget, build *model.BuildRecord) error {
	stages, err := ci.GetStages(ctx, target.JobName, build.BuildNumber)
	if err != nil {
		errutil.Warn(ctx, "stage list is not available", err)
		return nil
	}

	var report *model.TestReport
	reportFetched := false

	for i, stage := range stages {
		if i > 0 {
			if err := sleep(ctx, x.monitorCfg.StageDelay); err != nil {
				return err
			}
		}

		var columns model.ColumnValues
		switch classifyStage(stage.Name) {
		case stageTest:
			if !reportFetched {
				reportFetched = true
				if r, err := ci.GetTestReport(ctx, target.JobName, build.BuildNumber); err != nil {
					logging.From(ctx).Debug("test report is not available", slog.Any("error", err))
				} else {
					report = r
				}
			}
			columns = testStageColumns(stage.Succeeded(), report)
		case stageBuild:
			columns = buildStageColumns(stage.Succeeded())
		case stageDeploy:
			columns = deployStageColumns(stage.Succeeded())
		default:
			columns = genericStageColumns(stage)
		}

		if _, err := x.Upsert(ctx, target.Identity, columns, nil); err != nil {
			errutil.HandleError(ctx, "failed to write stage to board", err)
			continue
		}
		logging.From(ctx).Info("stage written to board", slog.String("stage", stage.Name), slog.String("status", stage.Status))
	}
	return nil
}

func buildSummary(build *model.BuildRecord) string {
	summary := fmt.Sprintf("Build #%d of %s finished: %s", build.BuildNumber, build.JobName, jenkinsLabel(build.State))
	if build.Duration > 0 {
		summary += fmt.Sprintf(" (%s)", build.Duration)
	}
	if build.BuildURL != "" {
		summary += "\n" + build.BuildURL
	}
	return summary
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
