// Package collide implements 2D convex-polygon collision detection: basis
// (body-local vertex) extraction, edge-edge intersection, and full contact
// synthesis (point, normal, penetration depth) between two bodies.
package collide

import (
	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// Bases returns b's vertex list rotated by its current angular
// displacement, in body-local (pre-translation) coordinates. The
// collider translates these into world space per edge as needed.
func Bases(b *body.Body) ([]lin.Column, error) {
	local, err := b.Shape.Vertices()
	if err != nil {
		return nil, err
	}

	rotation := lin.Rotation2D(b.Angular.Displacement.Get(0))
	out := make([]lin.Column, len(local))
	for i, v := range local {
		rotated, err := rotation.Multiply(v.Matrix)
		if err != nil {
			return nil, err
		}
		out[i] = lin.Column{Matrix: rotated}
	}
	return out, nil
}

// edgeBasis returns the vector from bases[i] to its cyclic successor,
// i.e. the edge direction leaving vertex i.
func edgeBasis(bases []lin.Column, i int) (lin.Column, error) {
	next := bases[(i+1)%len(bases)]
	return next.PlusCol(bases[i].ScaleCol(-1))
}
