package model

import (
	"log"
	"time"
)

// Initialization selects how the first restart builds its state
type Initialization int

const (
	RandomInitialization Initialization = iota
	GreedyInitialization
)

type Scheduler interface {
	Build(
		modelInput ModelInput,
	) (schedule Schedule, err error)

	Verify(
		schedule Schedule,
		modelInput ModelInput,
	) bool
}

// Options tunes a scheduler run. Zero values fall back to sensible defaults: the input's own time
// budget, a stall limit of round(papers^1.5) and the system clock.
type Options struct {
	Initialization Initialization
	InitialState   State         // Used by the first restart instead of Initialization when not nil
	TimeBudget     time.Duration // Overrides ModelInput.TimeBudget when positive
	Seed           uint64
	StallLimit     int // Consecutive non-improving proposals before a restart
	Clock          Clock
	Logger         *log.Logger // Receives one line per restart when not nil
}

// Schedule is the best assignment found by a run
type Schedule struct {
	Assignment   State
	Score        float64
	Restarts     int
	Proposals    int
	Improvements int
}

// Sessions splits the assignment into its sessions (time slot first, then track)
func (schedule Schedule) Sessions(config GridConfig) [][]int {
	return schedule.Assignment.Sessions(config)
}
