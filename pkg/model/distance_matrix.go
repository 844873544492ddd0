package model

import (
	"errors"
	"fmt"
	"math"
)

const symmetryTolerance = 1e-9

var (
	ErrMatrixDimension  = errors.New("distance matrix is not square")
	ErrInvalidDistance  = errors.New("distance must be a finite non-negative number")
	ErrAsymmetricMatrix = errors.New("distance matrix is not symmetric")
	ErrNonZeroDiagonal  = errors.New("distance from a paper to itself must be zero")
)

// DistanceMatrix is an immutable, symmetric paper-to-paper distance matrix stored in a flat row-major buffer
type DistanceMatrix struct {
	size int
	data []float64
}

// NewDistanceMatrix copies rows into a DistanceMatrix after checking it is square, symmetric,
// zero on the diagonal and made of finite non-negative values
func NewDistanceMatrix(rows [][]float64) (*DistanceMatrix, error) {
	size := len(rows)
	data := make([]float64, 0, size*size)

	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d entries, expected %d", ErrMatrixDimension, i, len(row), size)
		}
		for j, distance := range row {
			if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
				return nil, fmt.Errorf("%w: entry (%d, %d) is %v", ErrInvalidDistance, i, j, distance)
			}
		}
		data = append(data, row...)
	}

	for i := range size {
		if data[i*size+i] != 0 {
			return nil, fmt.Errorf("%w: entry (%d, %d) is %v", ErrNonZeroDiagonal, i, i, data[i*size+i])
		}
		for j := i + 1; j < size; j++ {
			if math.Abs(data[i*size+j]-data[j*size+i]) > symmetryTolerance {
				return nil, fmt.Errorf("%w: entries (%d, %d) and (%d, %d) differ", ErrAsymmetricMatrix, i, j, j, i)
			}
		}
	}

	return &DistanceMatrix{size: size, data: data}, nil
}

// Size returns the amount of papers covered by the matrix
func (matrix *DistanceMatrix) Size() int {
	return matrix.size
}

// At returns the distance between papers i and j
func (matrix *DistanceMatrix) At(i, j int) float64 {
	return matrix.data[i*matrix.size+j]
}

// Row returns the distances from paper i to every paper. The returned slice must not be modified
func (matrix *DistanceMatrix) Row(i int) []float64 {
	return matrix.data[i*matrix.size : (i+1)*matrix.size : (i+1)*matrix.size]
}

// Rows returns a copy of the matrix as a slice of rows
func (matrix *DistanceMatrix) Rows() [][]float64 {
	rows := make([][]float64, matrix.size)
	for i := range rows {
		rows[i] = append([]float64(nil), matrix.Row(i)...)
	}
	return rows
}
