package model

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultTimeBudget = time.Minute
	verifyTolerance   = 1e-6
)

type hillClimbingScheduler struct {
	options Options

	onAccept  func(restart int, increment float64)
	onRestart func(restart int, objective, best float64)
}

// NewHillClimbingScheduler returns a scheduler that restarts a strict-improvement hill climb over
// pairwise swaps until its time budget runs out, keeping the best state found
func NewHillClimbingScheduler(options Options) Scheduler {
	return &hillClimbingScheduler{
		options: options,
	}
}

func (scheduler *hillClimbingScheduler) Build(modelInput ModelInput) (Schedule, error) {
	//** Validate input
	if err := modelInput.Validate(); err != nil {
		return Schedule{}, err
	}
	config, distances := modelInput.Config, modelInput.Distances
	papers := config.Papers()

	if scheduler.options.InitialState != nil {
		if err := scheduler.options.InitialState.ValidatePermutation(papers); err != nil {
			return Schedule{}, fmt.Errorf("invalid initial state: %w", err)
		}
	}

	budget, err := scheduler.timeBudget(modelInput)
	if err != nil {
		return Schedule{}, err
	}
	stallLimit := scheduler.options.StallLimit
	if stallLimit <= 0 {
		stallLimit = defaultStallLimit(papers)
	}

	//** Initialize dependencies
	clock := scheduler.options.Clock
	if clock == nil {
		clock = SystemClock()
	}
	logger := scheduler.options.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	seed := scheduler.options.Seed
	rng := rand.New(rand.NewPCG(seed, seed))
	indexer := newIndexer(config)
	cache := newSessionCache(config, distances)

	deadline := clock.Now().Add(budget)
	expired := func() bool { return !clock.Now().Before(deadline) }

	//** Search
	best := Schedule{Score: math.Inf(-1)}
	// The first restart always runs so there is a state to return, even on an exhausted budget
	for restart := 0; restart == 0 || !expired(); restart++ {
		state := scheduler.initialState(restart, rng, config, distances)
		cache.rebuild(state)
		baseline := Score(config, distances, state)
		accumulated := 0.0

		for stalls := 0; stalls < stallLimit && !expired(); {
			positionA, positionB := nextProposal(rng, indexer, papers)
			best.Proposals++

			increment := scoreIncrement(cache, positionA, positionB, state)
			if increment <= 0 { // Ties are non-improving
				stalls++
				continue
			}

			cache.applySwap(positionA, positionB, state)
			accumulated += increment
			best.Improvements++
			stalls = 0
			if scheduler.onAccept != nil {
				scheduler.onAccept(restart, increment)
			}
		}

		objective := baseline + accumulated
		best.Restarts++
		if objective > best.Score {
			best.Assignment = state.Clone()
			best.Score = objective
		}

		logger.Printf("restart %d: initial score %.6f, final score %.6f, best score %.6f", restart, baseline, objective, best.Score)
		if scheduler.onRestart != nil {
			scheduler.onRestart(restart, objective, best.Score)
		}
	}

	return best, nil
}

func (scheduler *hillClimbingScheduler) Verify(schedule Schedule, modelInput ModelInput) bool {
	if err := modelInput.Validate(); err != nil {
		return false
	} else if err := schedule.Assignment.ValidatePermutation(modelInput.Config.Papers()); err != nil {
		return false
	}

	score := Score(modelInput.Config, modelInput.Distances, schedule.Assignment)
	return math.Abs(score-schedule.Score) <= verifyTolerance*math.Max(1, math.Abs(score))
}

func (scheduler *hillClimbingScheduler) timeBudget(modelInput ModelInput) (time.Duration, error) {
	budget := scheduler.options.TimeBudget
	if budget < 0 || modelInput.TimeBudget < 0 {
		return 0, fmt.Errorf("time budget must not be negative")
	}

	if budget == 0 {
		budget = modelInput.TimeBudget
	}
	if budget == 0 {
		budget = DefaultTimeBudget
	}
	return budget, nil
}

// initialState builds the state a restart climbs from. Only the first restart honours a supplied
// state or the greedy construction; the rest start from random permutations.
func (scheduler *hillClimbingScheduler) initialState(restart int, rng *rand.Rand, config GridConfig, distances *DistanceMatrix) State {
	if restart == 0 {
		if scheduler.options.InitialState != nil {
			return scheduler.options.InitialState.Clone()
		} else if scheduler.options.Initialization == GreedyInitialization {
			return greedyInitialize(config, distances)
		}
	}
	return randomInitialize(rng, config.Papers())
}

func defaultStallLimit(papers int) int {
	return max(1, int(math.Round(math.Pow(float64(papers), 1.5))))
}
