package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestInputFromJson(t *testing.T) {
	t.Run("Valid input", func(t *testing.T) {
		// Arrange
		file := writeFile(t, "input.json", `{
			"parallelTracks": 2,
			"sessionsPerTrack": 1,
			"papersPerSession": 2,
			"tradeoff": 1.5,
			"timeBudget": 0.5,
			"distances": [[0, 0, 1, 1], [0, 0, 1, 1], [1, 1, 0, 1], [1, 1, 1, 0]]
		}`)

		// Act
		input, err := InputFromFile(file)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, GridConfig{ParallelTracks: 2, SessionsPerTrack: 1, PapersPerSession: 2, Tradeoff: 1.5}, input.Config)
		assert.Equal(t, 30*time.Second, input.TimeBudget)
		assert.Equal(t, 4, input.Distances.Size())
		assert.Equal(t, 1.0, input.Distances.At(2, 3))
	})

	t.Run("Matrix too small", func(t *testing.T) {
		file := writeFile(t, "input.json", `{"parallelTracks": 2, "sessionsPerTrack": 2, "papersPerSession": 2, "distances": [[0, 1], [1, 0]]}`)

		_, err := InputFromJson(file)

		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Asymmetric matrix", func(t *testing.T) {
		file := writeFile(t, "input.json", `{"parallelTracks": 2, "sessionsPerTrack": 1, "papersPerSession": 1, "distances": [[0, 1], [0.5, 0]]}`)

		_, err := InputFromJson(file)

		assert.ErrorIs(t, err, ErrAsymmetricMatrix)
	})

	t.Run("Fractional grid size", func(t *testing.T) {
		file := writeFile(t, "input.json", `{"parallelTracks": 2.7, "sessionsPerTrack": 1, "papersPerSession": 1, "distances": [[0, 1], [1, 0]]}`)

		_, err := InputFromJson(file)

		assert.ErrorContains(t, err, "not a whole number")
	})

	t.Run("Whole floating point grid size", func(t *testing.T) {
		file := writeFile(t, "input.json", `{"parallelTracks": 2.0, "sessionsPerTrack": 1, "papersPerSession": 1, "distances": [[0, 1], [1, 0]]}`)

		input, err := InputFromJson(file)

		require.NoError(t, err)
		assert.Equal(t, 2, input.Config.ParallelTracks)
	})

	t.Run("Overflowing grid", func(t *testing.T) {
		file := writeFile(t, "input.json", `{"parallelTracks": 4294967296, "sessionsPerTrack": 4294967296, "papersPerSession": 1, "distances": []}`)

		_, err := InputFromJson(file)

		assert.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Malformed json", func(t *testing.T) {
		file := writeFile(t, "input.json", `{"parallelTracks": `)

		_, err := InputFromJson(file)

		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := InputFromJson(filepath.Join(t.TempDir(), "missing.json"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestInputFromText(t *testing.T) {
	t.Run("Valid input", func(t *testing.T) {
		// Arrange
		text := `2
2
2
1
1
0 0 1 1
0 0 1 1
1 1 0 1
1 1 1 0
`

		// Act
		input, err := InputFromText(strings.NewReader(text))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, GridConfig{ParallelTracks: 2, SessionsPerTrack: 1, PapersPerSession: 2, Tradeoff: 1}, input.Config)
		assert.Equal(t, 2*time.Minute, input.TimeBudget)
		assert.Equal(t, twoPairsInput(t).Distances.Rows(), input.Distances.Rows())
	})

	t.Run("Read from file", func(t *testing.T) {
		file := writeFile(t, "input.txt", "0.1 1 2 1 0.5\n0 0.3\n0.3 0\n")

		input, err := InputFromFile(file)

		require.NoError(t, err)
		assert.Equal(t, 6*time.Second, input.TimeBudget)
		assert.Equal(t, 0.3, input.Distances.At(0, 1))
	})

	t.Run("Truncated matrix", func(t *testing.T) {
		_, err := InputFromText(strings.NewReader("1 2 2 1 1\n0 0 1 1\n0 0 1"))

		assert.ErrorContains(t, err, "unexpected end of input")
	})

	t.Run("Non integer grid", func(t *testing.T) {
		_, err := InputFromText(strings.NewReader("1 2.5 2 1 1"))

		assert.ErrorContains(t, err, "must be an integer")
	})

	t.Run("Invalid grid", func(t *testing.T) {
		_, err := InputFromText(strings.NewReader("1 2 0 1 1"))

		assert.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Overflowing grid", func(t *testing.T) {
		_, err := InputFromText(strings.NewReader("1 1 4294967296 4294967296 1"))

		assert.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Grid size out of range", func(t *testing.T) {
		_, err := InputFromText(strings.NewReader("1 1e30 1 1 1"))

		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("Invalid number", func(t *testing.T) {
		_, err := InputFromText(strings.NewReader("1 2 2 1 one"))

		assert.ErrorContains(t, err, "invalid trade-off coefficient")
	})
}
