package model

import "math/rand/v2"

// maxProposalAttempts bounds the resampling of same-session pairs so proposals always terminate
const maxProposalAttempts = 10

// nextProposal samples two distinct positions, preferring pairs that lie in different sessions.
// After maxProposalAttempts same-session pairs the last one is returned as is; it scores zero and
// gets rejected by the caller.
func nextProposal(rng *rand.Rand, indexer indexer, positions int) (positionA, positionB int) {
	if positions < 2 {
		return 0, 0
	}

	for range maxProposalAttempts {
		positionA = rng.IntN(positions)
		positionB = rng.IntN(positions - 1)
		if positionB >= positionA {
			positionB++
		}

		if indexer.Session(positionA) != indexer.Session(positionB) {
			break
		}
	}
	return positionA, positionB
}
