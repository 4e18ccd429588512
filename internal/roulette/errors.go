package roulette

import "errors"

// Domain errors for selection runs.
var (
	// ErrNoItems indicates an animator was built over an empty item list.
	ErrNoItems = errors.New("roulette: no items to select from")

	// ErrStopped indicates a wait ended because the run was stopped before
	// it finalized.
	ErrStopped = errors.New("roulette: run stopped before selection")

	// ErrNoRun indicates a wait on a runner that was never triggered.
	ErrNoRun = errors.New("roulette: no run has been triggered")
)
