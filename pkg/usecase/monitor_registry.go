package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
)

// monitorRegistry keeps the latest Build Monitor run per tracking identity.
type monitorRegistry struct {
	mutex sync.RWMutex
	runs  map[string]*model.MonitorRun
}

func newMonitorRegistry() *monitorRegistry {
	return &monitorRegistry{
		runs: make(map[string]*model.MonitorRun),
	}
}

// begin registers a new run. It returns false when a non-terminal run already
// exists for the identity.
func (x *monitorRegistry) begin(target model.MonitorTarget, now time.Time) bool {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	key := target.Identity.CanonicalName
	if run, ok := x.runs[key]; ok && !run.State.IsTerminal() {
		return false
	}

	x.runs[key] = &model.MonitorRun{
		Identity:  key,
		JobName:   target.JobName,
		State:     model.MonitorStarting,
		StartedAt: now,
		UpdatedAt: now,
	}
	return true
}

func (x *monitorRegistry) update(identity string, now time.Time, f func(run *model.MonitorRun)) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	run, ok := x.runs[identity]
	if !ok {
		return
	}
	f(run)
	run.UpdatedAt = now
}

func (x *monitorRegistry) get(identity string) (model.MonitorRun, bool) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()

	run, ok := x.runs[identity]
	if !ok {
		return model.MonitorRun{}, false
	}
	return *run, true
}

func (x *monitorRegistry) list() []model.MonitorRun {
	x.mutex.RLock()
	defer x.mutex.RUnlock()

	runs := make([]model.MonitorRun, 0, len(x.runs))
	for _, run := range x.runs {
		runs = append(runs, *run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs
}
