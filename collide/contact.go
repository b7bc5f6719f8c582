package collide

import (
	"math"
	"sort"

	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// Collision is a single contact between two bodies: a world-space point,
// an outward normal relative to body A, and a penetration depth relative
// to body A.
type Collision struct {
	Point  lin.Column
	Normal lin.Column
	Depth  float64
}

// Collider detects whether two bodies currently overlap.
type Collider interface {
	Collide(a, b *body.Body) (*Collision, error)
}

// Collide2D is the from-scratch exact convex-polygon collider: it finds
// every edge-edge intersection between the two bodies' bases, averages
// them into a contact point, picks the supporting edge closest to that
// point as the normal's source, and derives penetration depth as the
// minimum distance from the contact point to any of body A's edges.
//
// This runs in O(n*m) edge-pair tests per call; there is no broad phase,
// matching a from-scratch exact intersection approach rather than a
// support-function (GJK/EPA) narrow phase.
type Collide2D struct{}

// Collide returns nil, nil when the two bodies' polygons do not overlap.
func (Collide2D) Collide(a, b *body.Body) (*Collision, error) {
	aBases, err := Bases(a)
	if err != nil {
		return nil, err
	}
	bBases, err := Bases(b)
	if err != nil {
		return nil, err
	}

	groups := make([][]lin.Column, len(aBases))
	collisions := 0

	for i := range aBases {
		pointA, err := aBases[i].PlusCol(a.Linear.Displacement)
		if err != nil {
			return nil, err
		}
		basisA, err := edgeBasis(aBases, i)
		if err != nil {
			return nil, err
		}

		var intersections []lin.Column
		for j := range bBases {
			pointB, err := bBases[j].PlusCol(b.Linear.Displacement)
			if err != nil {
				return nil, err
			}
			basisB, err := edgeBasis(bBases, j)
			if err != nil {
				return nil, err
			}

			point, ok, err := IntersectionPoint(pointA, basisA, pointB, basisB)
			if err != nil {
				return nil, err
			}
			if ok {
				intersections = append(intersections, point)
				collisions++
			}
		}
		groups[i] = intersections
	}

	if collisions == 0 {
		return nil, nil
	}

	collisionPoint := lin.EmptyColumn(2)
	for _, group := range groups {
		for _, p := range group {
			collisionPoint, err = collisionPoint.PlusCol(p)
			if err != nil {
				return nil, err
			}
		}
	}
	collisionPoint = collisionPoint.ScaleCol(1.0 / float64(collisions))

	// Sort each group by atan(dy - dx), where (dx, dy) = point -
	// collisionPoint. This is not the true angle of the offset around the
	// contact point; points collinear with collisionPoint are not specially
	// handled and may sort unstably.
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return angleAround(group[i], collisionPoint) < angleAround(group[j], collisionPoint)
		})
	}

	var intersections []lin.Column
	for _, group := range groups {
		intersections = append(intersections, group...)
	}

	normalFace, err := pickNormalFace(intersections, collisionPoint)
	if err != nil {
		return nil, err
	}

	normal, err := lin.NewColumn(2, []float64{-normalFace.Get(1), normalFace.Get(0)})
	if err != nil {
		return nil, err
	}

	polygons := [][]lin.Column{{}}
	side := 0.0

	for i, local := range aBases {
		point, err := local.PlusCol(a.Linear.Displacement)
		if err != nil {
			return nil, err
		}

		if side == 0 {
			t, _, ok, err := Intersect(point, normal, collisionPoint, normalFace)
			if err != nil {
				return nil, err
			}
			if ok && t != 0 {
				side = t / math.Abs(t)
			}
		}

		last := len(polygons) - 1
		polygons[last] = append(polygons[last], point)

		nextLocal := aBases[(i+1)%len(aBases)]
		next, err := nextLocal.PlusCol(a.Linear.Displacement)
		if err != nil {
			return nil, err
		}
		face, err := next.PlusCol(point.ScaleCol(-1))
		if err != nil {
			return nil, err
		}

		t, _, ok, err := Intersect(point, face, collisionPoint, normalFace)
		if err != nil {
			return nil, err
		}
		if ok && t >= 0 && t < 1 {
			splitPoint, err := point.PlusCol(face.ScaleCol(t))
			if err != nil {
				return nil, err
			}
			polygons[len(polygons)-1] = append(polygons[len(polygons)-1], splitPoint)
			polygons = append(polygons, []lin.Column{splitPoint})
		}

		if i == len(aBases)-1 {
			pop := polygons[len(polygons)-1]
			polygons = polygons[:len(polygons)-1]
			if len(polygons) > 0 {
				polygons[0] = append(polygons[0], pop...)
			}
		}
	}

	areaA := shoelaceSum(polygons, 0)
	areaB := shoelaceSum(polygons, 1)
	areaModifier := -1.0
	if areaA > areaB {
		areaModifier = 1.0
	}

	normal = normal.ScaleCol(side * areaModifier).Unit()

	depth, hasDepth := 0.0, false
	for i := range aBases {
		baseA, err := a.Linear.Displacement.PlusCol(aBases[i])
		if err != nil {
			return nil, err
		}
		baseB, err := a.Linear.Displacement.PlusCol(aBases[(i+1)%len(aBases)])
		if err != nil {
			return nil, err
		}
		d := ptlDistance(collisionPoint, baseA, baseB)
		if !hasDepth || d < depth {
			depth, hasDepth = d, true
		}
	}

	return &Collision{Point: collisionPoint, Normal: normal, Depth: depth}, nil
}

func angleAround(p, center lin.Column) float64 {
	dx := p.Get(0) - center.Get(0)
	dy := p.Get(1) - center.Get(1)
	return math.Atan(dy - dx)
}

// pickNormalFace returns the vector of the cyclically-adjacent pair of
// intersection points with the smallest perpendicular distance to the
// contact point, used as the supporting edge for the contact normal.
func pickNormalFace(points []lin.Column, collisionPoint lin.Column) (lin.Column, error) {
	best := math.Inf(1)
	var bestFace lin.Column
	found := false

	for i := range points {
		a1 := points[i]
		b1 := points[(i+1)%len(points)]
		d := ptlDistance(collisionPoint, a1, b1)
		if d < best {
			face, err := a1.PlusCol(b1.ScaleCol(-1))
			if err != nil {
				return lin.Column{}, err
			}
			best = d
			bestFace = face
			found = true
		}
	}

	if !found {
		return lin.Column{}, nil
	}
	return bestFace, nil
}

// shoelaceSum sums the shoelace-formula (signed) area of every other
// split polygon, starting at skip, approximating how much of body A's
// silhouette lies on each side of the normal face.
func shoelaceSum(polygons [][]lin.Column, skip int) float64 {
	var total float64
	for idx := skip; idx < len(polygons); idx += 2 {
		poly := polygons[idx]
		n := len(poly)
		var sum float64
		for k := 0; k < n; k++ {
			a := poly[k]
			b := poly[(k+1)%n]
			sum += a.Get(0)*b.Get(1) - b.Get(0)*a.Get(1)
		}
		total += sum
	}
	return total / 2
}
