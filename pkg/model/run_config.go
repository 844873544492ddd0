package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

// RunConfig holds run parameters that can be kept next to the executable instead of passed as flags
type RunConfig struct {
	TimeBudget time.Duration `mapstructure:"timeBudget"` // e.g. "90s" or "2m"
	Seed       uint64        `mapstructure:"seed"`
	Greedy     bool          `mapstructure:"greedy"`
	StallLimit int           `mapstructure:"stallLimit"`
}

func RunConfigFromJson(file string) (RunConfig, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return RunConfig{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return RunConfig{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	var config RunConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return RunConfig{}, err
	}
	if err := decoder.Decode(configJson); err != nil {
		return RunConfig{}, fmt.Errorf("cannot decode config file: %w", err)
	}

	if config.TimeBudget < 0 {
		return RunConfig{}, fmt.Errorf("time budget must not be negative: %v", config.TimeBudget)
	} else if config.StallLimit < 0 {
		return RunConfig{}, fmt.Errorf("stall limit must not be negative: %v", config.StallLimit)
	}
	return config, nil
}

// Options turns the configuration into scheduler options
func (config RunConfig) Options() Options {
	options := Options{
		TimeBudget: config.TimeBudget,
		Seed:       config.Seed,
		StallLimit: config.StallLimit,
	}
	if config.Greedy {
		options.Initialization = GreedyInitialization
	}
	return options
}
