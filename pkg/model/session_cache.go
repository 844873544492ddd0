package model

// sessionCache keeps, for every paper and every session, the summed distance from the paper to
// the members of the session (the paper itself excluded). It lets a swap be scored in O(tracks)
// and be applied in O(papers) instead of recomputing the objective.
type sessionCache struct {
	config    GridConfig
	indexer   indexer
	distances *DistanceMatrix
	papers    int
	sessions  int
	data      []float64 // papers x sessions, row-major
}

func newSessionCache(config GridConfig, distances *DistanceMatrix) *sessionCache {
	return &sessionCache{
		config:    config,
		indexer:   newIndexer(config),
		distances: distances,
		papers:    config.Papers(),
		sessions:  config.Sessions(),
		data:      make([]float64, config.Papers()*config.Sessions()),
	}
}

// rebuild recomputes every aggregate from scratch
func (cache *sessionCache) rebuild(state State) {
	clear(cache.data)

	for position, member := range state {
		session := cache.indexer.Session(position)
		// Distances are symmetric and zero on the diagonal, so the member's own entry adds nothing
		row := cache.distances.Row(member)
		for paper := range cache.papers {
			cache.data[paper*cache.sessions+session] += row[paper]
		}
	}
}

// applySwap exchanges the papers at both positions and patches the aggregates of every paper
// towards the two sessions whose membership changed
func (cache *sessionCache) applySwap(positionA, positionB int, state State) {
	sessionA, sessionB := cache.indexer.Session(positionA), cache.indexer.Session(positionB)
	if sessionA != sessionB {
		rowA, rowB := cache.distances.Row(state[positionA]), cache.distances.Row(state[positionB])
		for paper := range cache.papers {
			delta := rowB[paper] - rowA[paper]
			cache.data[paper*cache.sessions+sessionA] += delta
			cache.data[paper*cache.sessions+sessionB] -= delta
		}
	}
	state.swap(positionA, positionB)
}

func (cache *sessionCache) at(paper, session int) float64 {
	return cache.data[paper*cache.sessions+session]
}
