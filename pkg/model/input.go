package model

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

var ErrDimensionMismatch = errors.New("distance matrix does not cover every paper of the grid")

type RawModelInput struct {
	GridConfig `mapstructure:",squash"`
	TimeBudget float64     `mapstructure:"timeBudget"` // Minutes
	Distances  [][]float64 `mapstructure:"distances"`
}

type ModelInput struct {
	Config     GridConfig
	Distances  *DistanceMatrix
	TimeBudget time.Duration
}

// Validate checks the grid is well formed and the distance matrix covers all of its papers
func (modelInput ModelInput) Validate() error {
	if err := modelInput.Config.Validate(); err != nil {
		return err
	} else if modelInput.Distances == nil {
		return fmt.Errorf("%w: no distance matrix", ErrDimensionMismatch)
	} else if papers := modelInput.Config.Papers(); modelInput.Distances.Size() < papers {
		return fmt.Errorf("%w: grid holds %d papers but the matrix is %dx%d", ErrDimensionMismatch, papers, modelInput.Distances.Size(), modelInput.Distances.Size())
	}
	return nil
}

// InputFromFile reads a JSON input when the file has a .json extension and the plain text format otherwise
func InputFromFile(file string) (ModelInput, error) {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return InputFromJson(file)
	}

	reader, err := os.Open(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot open input file: %w", err)
	}
	defer reader.Close()
	return InputFromText(reader)
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var rawInput RawModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: wholeNumberHookFunc(),
		Result:     &rawInput,
	})
	if err != nil {
		return ModelInput{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

// wholeNumberHookFunc stops JSON numbers from being truncated when decoded into int fields
func wholeNumberHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
			return data, nil
		}
		return wholeNumber(data.(float64))
	}
}

// wholeNumber converts value into an int, rejecting fractions and values out of the int range
func wholeNumber(value float64) (int, error) {
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("%v is not a whole number", value)
	} else if value >= math.MaxInt || value < math.MinInt {
		return 0, fmt.Errorf("%v is out of range", value)
	}
	return int(value), nil
}

// InputFromText reads the whitespace separated format: time budget in minutes, papers per
// session, parallel tracks, sessions per track, trade-off coefficient and then the
// papers x papers distance matrix in row-major order
func InputFromText(reader io.Reader) (ModelInput, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func(field string) (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("unexpected end of input while reading %v", field)
		}
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %v %q: %w", field, scanner.Text(), err)
		}
		return value, nil
	}
	nextInt := func(field string) (int, error) {
		value, err := next(field)
		if err != nil {
			return 0, err
		}
		integer, err := wholeNumber(value)
		if err != nil {
			return 0, fmt.Errorf("%v must be an integer: %w", field, err)
		}
		return integer, nil
	}

	var rawInput RawModelInput
	var err error
	if rawInput.TimeBudget, err = next("time budget"); err != nil {
		return ModelInput{}, err
	} else if rawInput.PapersPerSession, err = nextInt("papers per session"); err != nil {
		return ModelInput{}, err
	} else if rawInput.ParallelTracks, err = nextInt("parallel tracks"); err != nil {
		return ModelInput{}, err
	} else if rawInput.SessionsPerTrack, err = nextInt("sessions per track"); err != nil {
		return ModelInput{}, err
	} else if rawInput.Tradeoff, err = next("trade-off coefficient"); err != nil {
		return ModelInput{}, err
	}

	// Validate before sizing the matrix from the grid
	if err := rawInput.GridConfig.Validate(); err != nil {
		return ModelInput{}, err
	}

	papers := rawInput.Papers()
	rawInput.Distances = make([][]float64, papers)
	for i := range papers {
		rawInput.Distances[i] = make([]float64, papers)
		for j := range papers {
			if rawInput.Distances[i][j], err = next(fmt.Sprintf("distance (%d, %d)", i, j)); err != nil {
				return ModelInput{}, err
			}
		}
	}

	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	if math.IsNaN(rawInput.TimeBudget) || math.IsInf(rawInput.TimeBudget, 0) || rawInput.TimeBudget < 0 {
		return ModelInput{}, fmt.Errorf("time budget must be a non-negative amount of minutes: %v", rawInput.TimeBudget)
	}

	distances, err := NewDistanceMatrix(rawInput.Distances)
	if err != nil {
		return ModelInput{}, err
	}

	input := ModelInput{
		Config:     rawInput.GridConfig,
		Distances:  distances,
		TimeBudget: time.Duration(rawInput.TimeBudget * float64(time.Minute)),
	}
	if err := input.Validate(); err != nil {
		return ModelInput{}, err
	}
	return input, nil
}
