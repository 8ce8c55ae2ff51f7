package usecase

import (
	"time"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/infra"
	"github.com/m-mizutani/pipeboard/pkg/utils/keylock"
)

const defaultNameLimit = 200

type UseCase struct {
	clients *infra.Clients

	identityPolicy IdentityPolicy
	nameLimit      int
	defaultJob     types.JobName
	monitorCfg     MonitorConfig

	locks    *keylock.KeyLock
	monitors *monitorRegistry
}

// MonitorConfig holds the fixed delays of the Build Monitor.
type MonitorConfig struct {
	SettleDelay  time.Duration
	PollInterval time.Duration
	DeployDelay  time.Duration
	StageDelay   time.Duration
}

func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		SettleDelay:  10 * time.Second,
		PollInterval: 5 * time.Second,
		DeployDelay:  5 * time.Second,
		StageDelay:   2 * time.Second,
	}
}

type Option func(*UseCase)

// WithIdentityPolicy sets the policy applied to canonical names after resolution.
func WithIdentityPolicy(policy IdentityPolicy) Option {
	return func(x *UseCase) {
		x.identityPolicy = policy
	}
}

// WithNameLimit sets maximum length of board item name. Longer names are cut at creation.
func WithNameLimit(limit int) Option {
	return func(x *UseCase) {
		x.nameLimit = limit
	}
}

// WithDefaultJob sets CI job used when it cannot be derived from the repository name.
func WithDefaultJob(job types.JobName) Option {
	return func(x *UseCase) {
		x.defaultJob = job
	}
}

func WithMonitorConfig(cfg MonitorConfig) Option {
	return func(x *UseCase) {
		x.monitorCfg = cfg
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		identityPolicy: KeepIdentity,
		nameLimit:      defaultNameLimit,
		monitorCfg:     DefaultMonitorConfig(),
		locks:          keylock.New(),
		monitors:       newMonitorRegistry(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
