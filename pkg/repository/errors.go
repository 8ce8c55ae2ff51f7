package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNotFound     = goerr.New("not found", goerr.ID("repository.not_found"))
	ErrInvalidInput = goerr.New("invalid input", goerr.ID("repository.invalid_input"))
	// ErrRemote is an error reported by the board service itself, as opposed to a
	// transport failure.
	ErrRemote = goerr.New("board service error", goerr.ID("repository.remote"))
)
