package model

// Score computes the objective of a state from scratch:
//
//	score1 = sum over sessions, over pairs of papers sharing the session, of (1 - distance)
//	score2 = sum over pairs of papers in the same time slot but different tracks, of distance
//	score  = score1 + tradeoff * score2
func Score(config GridConfig, distances *DistanceMatrix, state State) float64 {
	indexer := newIndexer(config)
	similarity, competition := 0.0, 0.0

	for positionA := range state {
		sessionA, timeSlotA := indexer.Session(positionA), indexer.TimeSlot(positionA)
		row := distances.Row(state[positionA])

		for positionB := positionA + 1; positionB < len(state); positionB++ {
			// Positions are ordered by time slot, nothing further ahead can share it
			if indexer.TimeSlot(positionB) != timeSlotA {
				break
			}

			distance := row[state[positionB]]
			if indexer.Session(positionB) == sessionA {
				similarity += 1 - distance
			} else {
				competition += distance
			}
		}
	}

	return similarity + config.Tradeoff*competition
}

// scoreIncrement returns the change in objective produced by swapping the papers at both
// positions, without touching the state or the cache. Swaps within a session change nothing.
func scoreIncrement(cache *sessionCache, positionA, positionB int, state State) float64 {
	indexer := cache.indexer
	sessionA, sessionB := indexer.Session(positionA), indexer.Session(positionB)
	if sessionA == sessionB {
		return 0
	}

	a, b := state[positionA], state[positionB]
	distance := cache.distances.At(a, b)

	// Each paper leaves its session and joins the other one; the pair (a, b) is counted in both
	// cross aggregates but never ends up sharing a session, hence the correction
	similarity := cache.at(a, sessionA) + cache.at(b, sessionB) - cache.at(a, sessionB) - cache.at(b, sessionA) + 2*distance

	timeSlotA, timeSlotB := indexer.TimeSlot(positionA), indexer.TimeSlot(positionB)
	if timeSlotA == timeSlotB {
		// The time slot keeps the same papers, so whatever distance stops (or starts) being
		// in-session becomes (or stops being) cross-track
		return (1 + cache.config.Tradeoff) * similarity
	}

	tracks := cache.config.ParallelTracks
	competition := 0.0
	for track := range tracks {
		// Competitors a gains and b loses in b's time slot
		if session := timeSlotB*tracks + track; session != sessionB {
			competition += cache.at(a, session) - cache.at(b, session)
		}
		// Competitors b gains and a loses in a's time slot
		if session := timeSlotA*tracks + track; session != sessionA {
			competition += cache.at(b, session) - cache.at(a, session)
		}
	}

	return similarity + cache.config.Tradeoff*competition
}
