package domain

import "fmt"

// Pairwise travel costs between stops: distances in meters and durations in
// seconds, both indexed by stop position. A Matrix is read-only once built.
// The all-zero form is the documented degraded state substituted when travel
// data could not be fetched; it keeps every optimization runnable.
type Matrix struct {
	distances [][]float64
	durations [][]float64
}

// Build an all-zero n-by-n matrix, the degraded fallback form.
func NewMatrix(n int) Matrix {
	if n < 0 {
		n = 0
	}
	m := Matrix{
		distances: make([][]float64, n),
		durations: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		m.distances[i] = make([]float64, n)
		m.durations[i] = make([]float64, n)
	}
	return m
}

// Build a matrix from prefilled tables. Both tables must be square and of the
// same size; the rows are copied so later edits to the inputs cannot leak in.
func MatrixFromTables(distances, durations [][]float64) (Matrix, error) {
	n := len(distances)
	if len(durations) != n {
		return Matrix{}, fmt.Errorf("build matrix: distance table has %d rows, duration table has %d", n, len(durations))
	}
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		if len(distances[i]) != n || len(durations[i]) != n {
			return Matrix{}, fmt.Errorf("build matrix: row %d is not of length %d", i, n)
		}
		copy(m.distances[i], distances[i])
		copy(m.durations[i], durations[i])
	}
	return m, nil
}

// Number of stops the matrix covers.
func (m Matrix) Size() int { return len(m.distances) }

// Travel distance in meters from stop i to stop j.
func (m Matrix) Distance(i, j int) float64 { return m.distances[i][j] }

// Travel duration in seconds from stop i to stop j.
func (m Matrix) Duration(i, j int) float64 { return m.durations[i][j] }

// Reports whether every cell is zero, i.e. the matrix is the degraded form.
func (m Matrix) Zero() bool {
	for i := range m.distances {
		for j := range m.distances[i] {
			if m.distances[i][j] != 0 || m.durations[i][j] != 0 {
				return false
			}
		}
	}
	return true
}
