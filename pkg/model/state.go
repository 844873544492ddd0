package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var ErrNotPermutation = errors.New("state is not a permutation of the papers")

// State holds, for every linear position of the grid, the paper occupying it
type State []int

func (state State) Clone() State {
	return slices.Clone(state)
}

// Sessions splits the state into its sessions, ordered by session index (time slot first, then track)
func (state State) Sessions(config GridConfig) [][]int {
	return lo.Chunk([]int(state), config.PapersPerSession)
}

// ValidatePermutation checks the state holds every paper in [0, papers) exactly once
func (state State) ValidatePermutation(papers int) error {
	if len(state) != papers {
		return fmt.Errorf("%w: expected %d positions, got %d", ErrNotPermutation, papers, len(state))
	}

	seen := make([]bool, papers)
	for position, paper := range state {
		if paper < 0 || paper >= papers {
			return fmt.Errorf("%w: paper %d at position %d is out of range", ErrNotPermutation, paper, position)
		} else if seen[paper] {
			return fmt.Errorf("%w: paper %d is assigned more than once", ErrNotPermutation, paper)
		}
		seen[paper] = true
	}
	return nil
}

// swap exchanges the papers held by two positions
func (state State) swap(positionA, positionB int) {
	state[positionA], state[positionB] = state[positionB], state[positionA]
}
