package model

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidGrid = errors.New("invalid grid configuration")

// GridConfig describes the shape of a conference: ParallelTracks tracks run at the same time,
// each track holds SessionsPerTrack sessions and every session holds PapersPerSession papers.
// Tradeoff weighs the cross-track competition term against the in-session similarity term.
type GridConfig struct {
	ParallelTracks   int     `mapstructure:"parallelTracks"`
	SessionsPerTrack int     `mapstructure:"sessionsPerTrack"`
	PapersPerSession int     `mapstructure:"papersPerSession"`
	Tradeoff         float64 `mapstructure:"tradeoff"`
}

// Papers returns the total amount of papers (and positions) in the grid
func (config GridConfig) Papers() int {
	return config.ParallelTracks * config.SessionsPerTrack * config.PapersPerSession
}

// Sessions returns the total amount of sessions across all tracks
func (config GridConfig) Sessions() int {
	return config.ParallelTracks * config.SessionsPerTrack
}

// Validate requires every dimension to be positive, the grid to be countable without overflow
// and the trade-off to be a finite non-negative number
func (config GridConfig) Validate() error {
	if config.ParallelTracks <= 0 {
		return fmt.Errorf("%w: parallel tracks must be positive (got %d)", ErrInvalidGrid, config.ParallelTracks)
	} else if config.SessionsPerTrack <= 0 {
		return fmt.Errorf("%w: sessions per track must be positive (got %d)", ErrInvalidGrid, config.SessionsPerTrack)
	} else if config.PapersPerSession <= 0 {
		return fmt.Errorf("%w: papers per session must be positive (got %d)", ErrInvalidGrid, config.PapersPerSession)
	} else if config.SessionsPerTrack > math.MaxInt/config.ParallelTracks {
		return fmt.Errorf("%w: %d tracks of %d sessions overflow the amount of sessions", ErrInvalidGrid, config.ParallelTracks, config.SessionsPerTrack)
	} else if config.PapersPerSession > math.MaxInt/config.Sessions() {
		return fmt.Errorf("%w: %d sessions of %d papers overflow the amount of papers", ErrInvalidGrid, config.Sessions(), config.PapersPerSession)
	} else if math.IsNaN(config.Tradeoff) || math.IsInf(config.Tradeoff, 0) || config.Tradeoff < 0 {
		return fmt.Errorf("%w: trade-off coefficient must be a non-negative number (got %v)", ErrInvalidGrid, config.Tradeoff)
	}
	return nil
}
