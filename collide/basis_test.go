package collide

import (
	"math"
	"testing"

	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

func TestBasesUnrotated(t *testing.T) {
	pos := lin.EmptyColumn(2)
	rot := lin.EmptyColumn(1)
	b, err := body.AtRest("A", body.NewRectangle(2, 4), pos, rot, body.RectangleProperties(1, 2, 4))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}

	bases, err := Bases(b)
	if err != nil {
		t.Fatalf("Bases failed: %v", err)
	}
	if len(bases) != 4 {
		t.Fatalf("got %d bases, want 4", len(bases))
	}
	if bases[0].Get(0) != 1 || bases[0].Get(1) != 2 {
		t.Errorf("top-right basis = %+v, want (1,2)", bases[0])
	}
}

func TestBasesRotatedQuarterTurn(t *testing.T) {
	pos := lin.EmptyColumn(2)
	rot, _ := lin.NewColumn(1, []float64{math.Pi / 2})
	b, err := body.AtRest("A", body.NewRectangle(2, 4), pos, rot, body.RectangleProperties(1, 2, 4))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}

	bases, err := Bases(b)
	if err != nil {
		t.Fatalf("Bases failed: %v", err)
	}
	// (1,2) rotated 90 degrees CCW becomes approximately (-2,1).
	if math.Abs(bases[0].Get(0)+2) > 1e-9 || math.Abs(bases[0].Get(1)-1) > 1e-9 {
		t.Errorf("rotated top-right basis = %+v, want (-2,1)", bases[0])
	}
}
