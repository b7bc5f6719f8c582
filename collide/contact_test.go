package collide

import (
	"testing"

	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

func rectAt(t *testing.T, name string, x, y, w, h float64) *body.Body {
	t.Helper()
	pos, _ := lin.NewColumn(2, []float64{x, y})
	rot := lin.EmptyColumn(1)
	b, err := body.AtRest(name, body.NewRectangle(w, h), pos, rot, body.RectangleProperties(1, w, h))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}
	return b
}

func TestNoCollisionWhenFarApart(t *testing.T) {
	a := rectAt(t, "A", 0, 0, 2, 2)
	b := rectAt(t, "B", 100, 100, 2, 2)

	c := Collide2D{}
	col, err := c.Collide(a, b)
	if err != nil {
		t.Fatalf("Collide failed: %v", err)
	}
	if col != nil {
		t.Errorf("expected no collision, got %+v", col)
	}
}

func TestOverlappingRectanglesCollide(t *testing.T) {
	a := rectAt(t, "A", 0, 0, 2, 2)
	b := rectAt(t, "B", 1, 0, 2, 2)

	c := Collide2D{}
	col, err := c.Collide(a, b)
	if err != nil {
		t.Fatalf("Collide failed: %v", err)
	}
	if col == nil {
		t.Fatal("expected a collision between overlapping rectangles")
	}
	if col.Depth <= 0 {
		t.Errorf("expected positive penetration depth, got %v", col.Depth)
	}
}
