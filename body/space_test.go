package body

import (
	"testing"

	"github.com/durganmcbroom/iterative-physics/math/lin"
)

func TestSpace2DBases(t *testing.T) {
	s := Space2D{}
	if len(s.LinearBases()) != 2 || len(s.AngularBases()) != 1 {
		t.Fatalf("unexpected basis counts: %d linear, %d angular", len(s.LinearBases()), len(s.AngularBases()))
	}
	if s.LinearBases()[0].Name != "hati" || s.LinearBases()[1].Name != "hatj" {
		t.Errorf("unexpected linear basis names: %+v", s.LinearBases())
	}
	if s.AngularBases()[0].Name != "hatk" {
		t.Errorf("unexpected angular basis name: %+v", s.AngularBases())
	}
}

func TestSpace2DCrossBoth(t *testing.T) {
	s := Space2D{}
	w, _ := lin.NewColumn(1, []float64{2})
	r, _ := lin.NewColumn(2, []float64{1, 0})
	v := s.CrossBoth(w, r)
	if v.Get(0) != 0 || v.Get(1) != 2 {
		t.Errorf("CrossBoth = (%v,%v), want (0,2)", v.Get(0), v.Get(1))
	}
}

func TestSpace2DCrossLinear(t *testing.T) {
	s := Space2D{}
	a, _ := lin.NewColumn(2, []float64{1, 0})
	b, _ := lin.NewColumn(2, []float64{0, 1})
	c := s.CrossLinear(a, b)
	if c.Get(0) != 1 {
		t.Errorf("CrossLinear = %v, want 1", c.Get(0))
	}
}
