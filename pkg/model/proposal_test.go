package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextProposal(t *testing.T) {
	t.Run("Distinct positions in different sessions", func(t *testing.T) {
		config := GridConfig{ParallelTracks: 3, SessionsPerTrack: 2, PapersPerSession: 3}
		indexer := newIndexer(config)
		rng := newTestRand(1)

		for range 1000 {
			positionA, positionB := nextProposal(rng, indexer, config.Papers())
			assert.NotEqual(t, positionA, positionB)
			assert.GreaterOrEqual(t, positionA, 0)
			assert.Less(t, positionB, config.Papers())
			// With 6 sessions the chance of 10 same-session draws in a row is negligible
			assert.NotEqual(t, indexer.Session(positionA), indexer.Session(positionB))
		}
	})

	t.Run("Single session gives up after bounded attempts", func(t *testing.T) {
		config := GridConfig{ParallelTracks: 1, SessionsPerTrack: 1, PapersPerSession: 5}
		indexer := newIndexer(config)

		positionA, positionB := nextProposal(newTestRand(2), indexer, config.Papers())

		assert.NotEqual(t, positionA, positionB)
		assert.Equal(t, indexer.Session(positionA), indexer.Session(positionB))
	})

	t.Run("Single position", func(t *testing.T) {
		config := GridConfig{ParallelTracks: 1, SessionsPerTrack: 1, PapersPerSession: 1}

		positionA, positionB := nextProposal(newTestRand(3), newIndexer(config), config.Papers())

		assert.Equal(t, 0, positionA)
		assert.Equal(t, 0, positionB)
	})

	t.Run("Same seed same proposals", func(t *testing.T) {
		config := GridConfig{ParallelTracks: 2, SessionsPerTrack: 3, PapersPerSession: 2}
		indexer := newIndexer(config)
		rng1, rng2 := newTestRand(4), newTestRand(4)

		for range 100 {
			a1, b1 := nextProposal(rng1, indexer, config.Papers())
			a2, b2 := nextProposal(rng2, indexer, config.Papers())
			assert.Equal(t, [2]int{a1, b1}, [2]int{a2, b2})
		}
	})
}
