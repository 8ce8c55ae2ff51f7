package model

import (
	"time"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type BuildState string

const (
	BuildQueued   BuildState = "queued"
	BuildBuilding BuildState = "building"
	BuildSuccess  BuildState = "success"
	BuildFailed   BuildState = "failed"
	BuildUnstable BuildState = "unstable"
	BuildAborted  BuildState = "aborted"
)

func (x BuildState) IsTerminal() bool {
	switch x {
	case BuildSuccess, BuildFailed, BuildUnstable, BuildAborted:
		return true
	}
	return false
}

type BuildRecord struct {
	JobName     types.JobName     `json:"job_name"`
	BuildNumber types.BuildNumber `json:"build_number"`
	BuildURL    string            `json:"build_url"`
	State       BuildState        `json:"state"`
	Duration    time.Duration     `json:"duration"`
	Timestamp   time.Time         `json:"timestamp"`
	Stages      []StageResult     `json:"stages,omitempty"`
}

type StageResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
}

// Succeeded is true for CI stage statuses that mean the stage passed.
func (x StageResult) Succeeded() bool {
	return x.Status == "SUCCESS"
}

type TestReport struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

type QueueLocation string

// BuildDetail is a build with its stage list and console output.
type BuildDetail struct {
	Build   *BuildRecord  `json:"build"`
	Stages  []StageResult `json:"stages"`
	Console string        `json:"console,omitempty"`
}
