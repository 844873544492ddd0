package model

import (
	"math/rand/v2"
	"time"
)

// GenerateInput builds a random instance for the given grid: papers get a random topic in the
// unit square and their distance is the squared euclidean distance between topics, clamped to [0, 1]
func GenerateInput(config GridConfig, timeBudget time.Duration, seed uint64) (ModelInput, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	papers := config.Papers()

	topics := make([][2]float64, papers)
	for i := range topics {
		topics[i] = [2]float64{rng.Float64(), rng.Float64()}
	}

	distances := make([][]float64, papers)
	for i := range distances {
		distances[i] = make([]float64, papers)
	}
	for i := range papers {
		for j := i + 1; j < papers; j++ {
			dx, dy := topics[i][0]-topics[j][0], topics[i][1]-topics[j][1]
			distance := min(1, dx*dx+dy*dy)
			distances[i][j], distances[j][i] = distance, distance
		}
	}

	matrix, err := NewDistanceMatrix(distances)
	if err != nil {
		return ModelInput{}, err
	}

	input := ModelInput{
		Config:     config,
		Distances:  matrix,
		TimeBudget: timeBudget,
	}
	if err := input.Validate(); err != nil {
		return ModelInput{}, err
	}
	return input, nil
}
