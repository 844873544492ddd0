package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/paperscheduling/pkg/model"
	"github.com/samber/lo"
)

var validFormats = []string{"text", "json"}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file (\".json\" files are read as JSON, anything else as the plain text format)")
	configPathPtr := flag.String("config", "", "Path to a JSON run configuration; if empty, config.json next to the executable is used when present")
	formatPtr := flag.String("format", "text", "Output format. Allowed values are: \"text\" (one line per track) and \"json\", where \"text\" is the default")
	timePtr := flag.Duration("time", 0, "Time budget (e.g. \"90s\"); overrides the configuration and the input's own budget")
	seedPtr := flag.Uint64("seed", 0, "Seed of the random generator")
	greedyPtr := flag.Bool("greedy", false, "Seed the first restart with the similarity-greedy construction instead of a random one")
	stallPtr := flag.Int("stall", 0, "Non-improving proposals before a restart; 0 means round(papers^1.5)")
	verbosePtr := flag.Bool("verbose", false, "Log every restart to the standard error")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	format := strings.ToLower(*formatPtr)

	// Validate arguments
	if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	} else if *filePathPtr == "" {
		log.Fatal("an input file must be specified")
	} else if *timePtr < 0 {
		log.Fatalf("time budget must not be negative: %v", *timePtr)
	} else if *stallPtr < 0 {
		log.Fatalf("stall limit must not be negative: %v", *stallPtr)
	}

	// Resolve options: configuration file first, explicitly set flags on top
	options := model.Options{}
	if configPath := resolveConfigPath(*configPathPtr); configPath != "" {
		config, err := model.RunConfigFromJson(configPath)
		if err != nil {
			log.Fatalf("cannot load configuration: %v", err)
		}
		options = config.Options()
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time":
			options.TimeBudget = *timePtr
		case "seed":
			options.Seed = *seedPtr
		case "greedy":
			options.Initialization = lo.Ternary(*greedyPtr, model.GreedyInitialization, model.RandomInitialization)
		case "stall":
			options.StallLimit = *stallPtr
		}
	})
	if *verbosePtr {
		options.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	// Extract input
	input, err := model.InputFromFile(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Build schedule
	scheduler := model.NewHillClimbingScheduler(options)
	start := time.Now()
	schedule, err := scheduler.Build(input)
	if err != nil {
		log.Fatalf("an error occurred during schedule construction: %v", err)
	}
	elapsed := time.Since(start)

	// Verify schedule correctness
	if !scheduler.Verify(schedule, input) {
		log.Fatal("schedule verification failed")
	}

	// Write schedule
	output := os.Stdout
	if *outFilePathPtr != "" {
		file, err := os.Create(*outFilePathPtr)
		if err != nil {
			log.Fatalf("an error occurred while creating the output file: %v", err)
		}
		defer file.Close()
		output = file
	}

	if format == "json" {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(model.NewScheduleJson(schedule, input.Config))
	} else {
		err = model.WriteSchedule(output, schedule, input.Config)
	}
	if err != nil {
		log.Fatalf("an error occurred while writing the schedule: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Score: %.6f\n", schedule.Score)
	fmt.Fprintf(os.Stderr, "Restarts: %v\n", schedule.Restarts)
	fmt.Fprintf(os.Stderr, "Elapsed: %v\n", elapsed.Round(time.Millisecond))
}

// resolveConfigPath returns the explicit configuration path, or config.json next to the
// executable when it exists, or an empty string
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = filepath.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, "config.json") {
		return ""
	}
	return filepath.Join(execPath, "config.json")
}
