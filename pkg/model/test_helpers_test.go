package model

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock moves forward by step every time it is read
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(0, 0), step: step}
}

func (clock *fakeClock) Now() time.Time {
	clock.now = clock.now.Add(clock.step)
	return clock.now
}

func generateInput(t *testing.T, config GridConfig, seed uint64) ModelInput {
	t.Helper()
	input, err := GenerateInput(config, time.Second, seed)
	require.NoError(t, err)
	return input
}

// naiveAggregate sums the distance from paper to every other member of session
func naiveAggregate(config GridConfig, distances *DistanceMatrix, state State, paper, session int) float64 {
	sum := 0.0
	for _, member := range state.Sessions(config)[session] {
		if member != paper {
			sum += distances.At(paper, member)
		}
	}
	return sum
}

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

var testGrids = []GridConfig{
	{ParallelTracks: 2, SessionsPerTrack: 1, PapersPerSession: 2, Tradeoff: 1},
	{ParallelTracks: 3, SessionsPerTrack: 2, PapersPerSession: 3, Tradeoff: 0.5},
	{ParallelTracks: 2, SessionsPerTrack: 4, PapersPerSession: 4, Tradeoff: 1.5},
	{ParallelTracks: 4, SessionsPerTrack: 3, PapersPerSession: 2, Tradeoff: 0},
	{ParallelTracks: 1, SessionsPerTrack: 5, PapersPerSession: 3, Tradeoff: 2},
}
