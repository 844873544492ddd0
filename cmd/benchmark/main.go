package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/paperscheduling/pkg/model"

	"github.com/samber/lo"
)

const resultsFile = "benchmark_results.csv"

type InitializationType = model.Initialization

var initializationTypes = map[InitializationType]string{
	model.RandomInitialization: "random",
	model.GreedyInitialization: "greedy",
}

type TestMetadata struct {
	Grid model.GridConfig
	Seed uint64
}

type BenchmarkResult struct {
	Initialization InitializationType
	Test           TestMetadata
	Duration       int64
	Score          float64
	Restarts       int
	Proposals      int
	Improvements   int
	Verified       bool
}

func main() {
	gridsPtr := flag.String("grids", "2x3x3,3x4x4,4x5x5,5x6x6", "Comma separated grids written as tracks x sessions x papers")
	seedsPtr := flag.Int("seeds", 3, "Amount of instances generated per grid")
	budgetPtr := flag.Duration("time", 2*time.Second, "Time budget of every run")
	tradeoffPtr := flag.Float64("tradeoff", 1, "Trade-off coefficient of every grid")
	flag.Parse()

	grids, err := parseGrids(*gridsPtr, *tradeoffPtr)
	if err != nil {
		log.Fatalf("invalid grids: %v", err)
	}

	tests := getTests(grids, *seedsPtr)
	initializations := []InitializationType{model.RandomInitialization, model.GreedyInitialization}
	results := make([]BenchmarkResult, 0, len(tests)*len(initializations))

	for _, test := range tests {
		input, err := model.GenerateInput(test.Grid, *budgetPtr, test.Seed)
		if err != nil {
			log.Fatalf("cannot generate instance: %v", err)
		}

		for _, initialization := range initializations {
			fmt.Printf("Benchmarking grid %v with seed \"%v\" and \"%v\" initialization\n", gridName(test.Grid), test.Seed, initializationTypes[initialization])
			results = append(results, measure(input, test, initialization))
		}
	}

	toCsv(results)
}

func getTests(grids []model.GridConfig, seeds int) []TestMetadata {
	tests := make([]TestMetadata, 0, len(grids)*seeds)
	for _, grid := range grids {
		for _, seed := range lo.Range(seeds) {
			tests = append(tests, TestMetadata{Grid: grid, Seed: uint64(seed)})
		}
	}
	return tests
}

func measure(input model.ModelInput, test TestMetadata, initialization InitializationType) BenchmarkResult {
	scheduler := model.NewHillClimbingScheduler(model.Options{
		Initialization: initialization,
		Seed:           test.Seed,
	})

	start := time.Now()
	schedule, err := scheduler.Build(input)
	if err != nil {
		log.Fatalf("an error occurred while scheduling grid %v with seed %v: %v", gridName(test.Grid), test.Seed, err)
	}

	return BenchmarkResult{
		Initialization: initialization,
		Test:           test,
		Duration:       time.Since(start).Milliseconds(),
		Score:          schedule.Score,
		Restarts:       schedule.Restarts,
		Proposals:      schedule.Proposals,
		Improvements:   schedule.Improvements,
		Verified:       scheduler.Verify(schedule, input),
	}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Grid", "Papers", "Tradeoff", "Seed", "Initialization", "Duration(ms)", "Score", "Restarts", "Proposals", "Improvements", "Verified"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		gridName(result.Test.Grid),
		fmt.Sprintf("%d", result.Test.Grid.Papers()),
		fmt.Sprintf("%g", result.Test.Grid.Tradeoff),
		fmt.Sprintf("%d", result.Test.Seed),
		initializationTypes[result.Initialization],
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.6f", result.Score),
		fmt.Sprintf("%d", result.Restarts),
		fmt.Sprintf("%d", result.Proposals),
		fmt.Sprintf("%d", result.Improvements),
		fmt.Sprintf("%v", result.Verified),
	}
}

func gridName(grid model.GridConfig) string {
	return fmt.Sprintf("%dx%dx%d", grid.ParallelTracks, grid.SessionsPerTrack, grid.PapersPerSession)
}

func parseGrids(gridsStr string, tradeoff float64) ([]model.GridConfig, error) {
	grids := make([]model.GridConfig, 0)
	for _, gridStr := range strings.Split(gridsStr, ",") {
		parts := strings.Split(strings.TrimSpace(gridStr), "x")
		if len(parts) != 3 {
			return nil, fmt.Errorf("grid %q must have the form tracks x sessions x papers", gridStr)
		}

		values := make([]int, 0, len(parts))
		for _, part := range parts {
			value, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("grid %q: %w", gridStr, err)
			}
			values = append(values, value)
		}

		grid := model.GridConfig{
			ParallelTracks:   values[0],
			SessionsPerTrack: values[1],
			PapersPerSession: values[2],
			Tradeoff:         tradeoff,
		}
		if err := grid.Validate(); err != nil {
			return nil, err
		}
		grids = append(grids, grid)
	}
	return grids, nil
}
