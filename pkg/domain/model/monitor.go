package model

import (
	"time"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type MonitorState string

const (
	MonitorStarting MonitorState = "starting"
	MonitorPolling  MonitorState = "polling"
	MonitorSuccess  MonitorState = "success"
	MonitorFailed   MonitorState = "failed"
	MonitorUnstable MonitorState = "unstable"
	MonitorAborted  MonitorState = "aborted"
)

func (x MonitorState) IsTerminal() bool {
	switch x {
	case MonitorSuccess, MonitorFailed, MonitorUnstable, MonitorAborted:
		return true
	}
	return false
}

// MonitorStateFromBuild maps a terminal build state to the monitor state.
func MonitorStateFromBuild(s BuildState) MonitorState {
	switch s {
	case BuildSuccess:
		return MonitorSuccess
	case BuildUnstable:
		return MonitorUnstable
	case BuildAborted:
		return MonitorAborted
	default:
		return MonitorFailed
	}
}

// MonitorTarget describes what a Build Monitor run watches.
type MonitorTarget struct {
	Identity       TrackingIdentity
	JobName        types.JobName
	RepositoryName string
	Commit         CommitRef
}

// MonitorRun is a snapshot of a Build Monitor run in the registry.
type MonitorRun struct {
	Identity    string            `json:"identity"`
	JobName     types.JobName     `json:"job_name"`
	BuildNumber types.BuildNumber `json:"build_number,omitempty"`
	State       MonitorState      `json:"state"`
	StartedAt   time.Time         `json:"started_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Error       string            `json:"error,omitempty"`
}
