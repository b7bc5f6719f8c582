package body

import (
	"github.com/durganmcbroom/iterative-physics/ierr"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// ShapeKind enumerates the shape variants a Body can carry.
type ShapeKind int

const (
	RectangleShape ShapeKind = iota
	EllipseShape
	ManifoldShape
)

// Shape is a 2D collision primitive in local space, centered at the
// origin and unrotated; the collider applies the body's displacement and
// rotation when it needs a world-space polygon.
type Shape interface {
	Kind() ShapeKind

	// Vertices returns this shape's local-space vertex list in
	// counter-clockwise order. Only Rectangle and Manifold ever produce
	// one; Ellipse has no finite vertex list and returns an error.
	Vertices() ([]lin.Column, error)
}

// Rectangle is an axis-aligned (in local space) box shape, Width by
// Height, centered at the origin.
type Rectangle struct {
	Width, Height float64
}

// NewRectangle builds a Rectangle shape.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

func (r Rectangle) Kind() ShapeKind { return RectangleShape }

// Vertices returns the four corners starting at top-right and proceeding
// counter-clockwise, the order the collider expects for edge iteration.
func (r Rectangle) Vertices() ([]lin.Column, error) {
	hw, hh := r.Width/2, r.Height/2
	corners := [][2]float64{{hw, hh}, {-hw, hh}, {-hw, -hh}, {hw, -hh}}
	out := make([]lin.Column, len(corners))
	for i, c := range corners {
		col, err := lin.NewColumn(2, []float64{c[0], c[1]})
		if err != nil {
			return nil, err
		}
		out[i] = col
	}
	return out, nil
}

// Ellipse is reserved for a future curved shape; it carries its major and
// minor radii but has no finite vertex representation, so it can never be
// passed through the polygon collider.
type Ellipse struct {
	Major, Minor float64
}

func (e Ellipse) Kind() ShapeKind { return EllipseShape }

func (e Ellipse) Vertices() ([]lin.Column, error) {
	return nil, ierr.Syntax("ellipse shape has no vertex representation (reserved, not implemented)")
}

// Manifold is an arbitrary convex polygon given directly as a local-space
// vertex list, in counter-clockwise order.
type Manifold struct {
	Points []lin.Column
}

// NewManifold builds a Manifold shape from a counter-clockwise vertex list.
func NewManifold(points []lin.Column) Manifold {
	return Manifold{Points: points}
}

func (m Manifold) Kind() ShapeKind { return ManifoldShape }

func (m Manifold) Vertices() ([]lin.Column, error) { return m.Points, nil }
