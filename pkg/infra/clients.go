package infra

import (
	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/infra/docker"
)

type Clients struct {
	board         interfaces.Board
	ci            interfaces.CI
	sourceControl interfaces.SourceControl
	runtime       interfaces.ContainerRuntime
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		runtime: docker.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Board() interfaces.Board {
	return x.board
}
func (x *Clients) CI() interfaces.CI {
	return x.ci
}
func (x *Clients) SourceControl() interfaces.SourceControl {
	return x.sourceControl
}
func (x *Clients) ContainerRuntime() interfaces.ContainerRuntime {
	return x.runtime
}

func WithBoard(board interfaces.Board) Option {
	return func(x *Clients) {
		x.board = board
	}
}

func WithCI(client interfaces.CI) Option {
	return func(x *Clients) {
		x.ci = client
	}
}

func WithSourceControl(client interfaces.SourceControl) Option {
	return func(x *Clients) {
		x.sourceControl = client
	}
}

// WithContainerRuntime replaces the default docker CLI runtime. nil disables container features.
func WithContainerRuntime(client interfaces.ContainerRuntime) Option {
	return func(x *Clients) {
		x.runtime = client
	}
}
