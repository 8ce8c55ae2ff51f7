package memory_test

import (
	"testing"

	"github.com/m-mizutani/pipeboard/pkg/repository/memory"
	"github.com/m-mizutani/pipeboard/pkg/repository/testhelper"
)

func TestMemoryBoard(t *testing.T) {
	board := memory.New()
	testhelper.TestAll(t, board)
}
