// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/ierr"
)

// Column is an M-row, 1-column Matrix: the Vector capability of spec's data
// model. It is still backed by Matrix so Plus/Scale reuse the matrix path,
// but adds the vector-only operations (Get, Magnitude, Unit, Dot).
type Column struct {
	Matrix
}

// EmptyColumn returns a dof-length column of zeroes.
func EmptyColumn(dof int) Column {
	return Column{Empty(dof, 1)}
}

// NewColumn builds a column vector from values. It fails with
// InvalidDimensions if len(values) != dof.
func NewColumn(dof int, values []float64) (Column, error) {
	m, err := New(dof, 1, values)
	if err != nil {
		return Column{}, err
	}
	return Column{m}, nil
}

// Dof returns the number of scalar components (degrees of freedom).
func (c Column) Dof() int { return c.rows }

// Get returns the i'th component.
func (c Column) Get(i int) float64 { return c.At(i, 0) }

// Magnitude returns the Euclidean length of c.
func (c Column) Magnitude() float64 {
	var sumSq float64
	for _, v := range c.data {
		sumSq += v * v
	}
	return math.Sqrt(sumSq)
}

// Unit returns c scaled to unit length. A zero-magnitude vector is
// returned unchanged rather than dividing by zero.
func (c Column) Unit() Column {
	mag := c.Magnitude()
	if mag == 0 {
		return c
	}
	return Column{c.Scale(1 / mag)}
}

// PlusCol returns the componentwise sum of c and o. Fails with
// InvalidDimensions if the degrees of freedom differ.
func (c Column) PlusCol(o Column) (Column, error) {
	m, err := c.Matrix.Plus(o.Matrix)
	if err != nil {
		return Column{}, err
	}
	return Column{m}, nil
}

// ScaleCol returns c scaled by s.
func (c Column) ScaleCol(s float64) Column {
	return Column{c.Matrix.Scale(s)}
}

// Dot returns the dot product of c and o. Fails with InvalidDimensions if
// the degrees of freedom differ.
func (c Column) Dot(o Column) (float64, error) {
	if c.Dof() != o.Dof() {
		return 0, ierr.New(ierr.InvalidDimensions)
	}
	var sum float64
	for i := 0; i < c.Dof(); i++ {
		sum += c.Get(i) * o.Get(i)
	}
	return sum, nil
}
