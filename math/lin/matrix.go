// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/ierr"
)

// Matrix is a dense, dynamically-sized M-row by N-column matrix of
// scalars. Unlike fixed 3x3/4x4 matrices, dimensions are checked at
// construction and at every operation that combines two matrices, so a
// caller gets an InvalidDimensions error instead of a silent out-of-bounds
// access when shapes don't line up.
//
// Matrix values are immutable: every operation returns a new Matrix rather
// than mutating the receiver in place.
type Matrix struct {
	rows, cols int
	data       []float64 // row-major, len == rows*cols
}

// Empty returns a rows x cols matrix of zeroes.
func Empty(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// New builds a rows x cols matrix from content given row by row. It fails
// with InvalidDimensions if len(content) != rows*cols.
func New(rows, cols int, content []float64) (Matrix, error) {
	if len(content) != rows*cols {
		return Matrix{}, ierr.New(ierr.InvalidDimensions)
	}
	data := make([]float64, len(content))
	copy(data, content)
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the scalar at (row, col), zero-indexed.
func (m Matrix) At(row, col int) float64 { return m.data[row*m.cols+col] }

// sameShape reports whether m and o have equal dimensions.
func (m Matrix) sameShape(o Matrix) bool { return m.rows == o.rows && m.cols == o.cols }

// Plus returns the elementwise sum of m and o. It fails with
// InvalidDimensions if the shapes don't match.
func (m Matrix) Plus(o Matrix) (Matrix, error) {
	if !m.sameShape(o) {
		return Matrix{}, ierr.New(ierr.InvalidDimensions)
	}
	out := Empty(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}
	return out, nil
}

// Scale returns m with every element multiplied by s.
func (m Matrix) Scale(s float64) Matrix {
	out := Empty(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * s
	}
	return out
}

// Multiply returns the matrix product m*o. It fails with InvalidDimensions
// unless m.Cols() == o.Rows().
func (m Matrix) Multiply(o Matrix) (Matrix, error) {
	if m.cols != o.rows {
		return Matrix{}, ierr.New(ierr.InvalidDimensions)
	}
	out := Empty(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.At(i, k) * o.At(k, j)
			}
			out.data[i*out.cols+j] = sum
		}
	}
	return out, nil
}

// Det returns the determinant of a 2x2 matrix. It fails with
// InvalidDimensions for any other shape.
func (m Matrix) Det() (float64, error) {
	if m.rows != 2 || m.cols != 2 {
		return 0, ierr.New(ierr.InvalidDimensions)
	}
	return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0), nil
}

// Rotation2D builds the 2x2 rotation matrix for a counter-clockwise
// rotation of theta radians.
func Rotation2D(theta float64) Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	m, _ := New(2, 2, []float64{c, -s, s, c})
	return m
}
