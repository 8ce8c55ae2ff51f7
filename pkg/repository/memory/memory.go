package memory

import (
	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
)

// New creates a new in-memory board. Items are lost when the process exits.
func New() interfaces.Board {
	return &board{
		items:    make(map[string]*itemData),
		comments: make(map[string][]string),
	}
}
