package model

import (
	"math"
	"math/rand/v2"

	"github.com/samber/lo"
)

// randomInitialize returns a uniformly random permutation of the papers
func randomInitialize(rng *rand.Rand, papers int) State {
	state := State(lo.Range(papers))
	rng.Shuffle(len(state), state.swap)
	return state
}

// greedyInitialize fills sessions in position order. Every session is seeded with the lowest
// unplaced paper and then grows with the unplaced paper closest (by summed distance) to the
// papers already in it; ties go to the lowest paper.
func greedyInitialize(config GridConfig, distances *DistanceMatrix) State {
	papers, perSession := config.Papers(), config.PapersPerSession
	state := make(State, 0, papers)
	placed := make([]bool, papers)
	closeness := make([]float64, papers) // summed distance to the members of the current session

	for range config.Sessions() {
		clear(closeness)
		for slot := range perSession {
			chosen, best := -1, math.Inf(1)
			for paper := range papers {
				if placed[paper] {
					continue
				}
				if slot == 0 {
					chosen = paper
					break
				}
				if closeness[paper] < best {
					chosen, best = paper, closeness[paper]
				}
			}

			placed[chosen] = true
			state = append(state, chosen)

			row := distances.Row(chosen)
			for paper := range papers {
				closeness[paper] += row[paper]
			}
		}
	}

	return state
}
