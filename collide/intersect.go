package collide

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// slope is the raw y/x ratio of a basis, so a vertical basis gives +Inf or
// -Inf; two vertical bases pointing the same way compare equal (Inf == Inf).
func slope(c lin.Column) float64 { return c.Get(1) / c.Get(0) }

// Intersect solves for the parameterized intersection of two lines, each
// given as a point plus a basis (direction) vector: a + t_a*aBasis meets
// b + t_b*bBasis. ok is false when the lines are parallel (equal slope, or
// a zero determinant, which covers vertical bases pointing opposite ways),
// in which case t_a/t_b are meaningless.
//
// Equal-but-offset slopes (truly parallel, non-intersecting lines) are
// not distinguished from collinear lines here: both take the same "no
// intersection" path, matching the equation this is solved from.
func Intersect(a, aBasis, b, bBasis lin.Column) (ta, tb float64, ok bool, err error) {
	denom := bBasis.Get(0)*aBasis.Get(1) - aBasis.Get(0)*bBasis.Get(1)
	if slope(aBasis) == slope(bBasis) || denom == 0 {
		return 0, 0, false, nil
	}

	product, err := lin.NewColumn(2, []float64{b.Get(0) - a.Get(0), b.Get(1) - a.Get(1)})
	if err != nil {
		return 0, 0, false, err
	}

	aInv, err := lin.New(2, 2, []float64{
		-bBasis.Get(1), bBasis.Get(0),
		-aBasis.Get(1), aBasis.Get(0),
	})
	if err != nil {
		return 0, 0, false, err
	}
	aInv = aInv.Scale(1 / denom)

	x, err := aInv.Multiply(product.Matrix)
	if err != nil {
		return 0, 0, false, err
	}

	return x.At(0, 0), x.At(1, 0), true, nil
}

// IntersectionPoint returns the world-space point where edge (a, aBasis)
// crosses edge (b, bBasis), if the crossing falls within both edges'
// [0,1] parameter range.
func IntersectionPoint(a, aBasis, b, bBasis lin.Column) (lin.Column, bool, error) {
	ta, tb, ok, err := Intersect(a, aBasis, b, bBasis)
	if err != nil {
		return lin.Column{}, false, err
	}
	if !ok {
		return lin.Column{}, false, nil
	}
	if ta < 0 || ta > 1 || tb < 0 || tb > 1 {
		return lin.Column{}, false, nil
	}
	point, err := a.PlusCol(aBasis.ScaleCol(ta))
	if err != nil {
		return lin.Column{}, false, err
	}
	return point, true, nil
}

// ptlDistance returns the perpendicular distance from point to the
// (infinite) line through a and b.
func ptlDistance(point, a, b lin.Column) float64 {
	numerator := (b.Get(1)-a.Get(1))*point.Get(0) - (b.Get(0)-a.Get(0))*point.Get(1) + b.Get(0)*a.Get(1) - b.Get(1)*a.Get(0)
	denominator := math.Sqrt(math.Pow(b.Get(1)-a.Get(1), 2) + math.Pow(b.Get(0)-a.Get(0), 2))
	return math.Abs(numerator) / denominator
}
