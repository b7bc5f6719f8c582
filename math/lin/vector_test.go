package lin

import (
	"math"
	"testing"
)

func TestNewColumnRejectsWrongLength(t *testing.T) {
	if _, err := NewColumn(2, []float64{1, 2, 3}); err == nil {
		t.Error("expected InvalidDimensions, got nil")
	}
}

func TestMagnitude(t *testing.T) {
	c, _ := NewColumn(2, []float64{3, 4})
	if m := c.Magnitude(); m != 5 {
		t.Errorf("Magnitude() = %v, want 5", m)
	}
}

func TestUnitZeroVectorStaysZero(t *testing.T) {
	z := EmptyColumn(3)
	u := z.Unit()
	if u.Magnitude() != 0 {
		t.Errorf("Unit() of zero vector = %v, want zero", u.Magnitude())
	}
}

func TestUnitNormalizes(t *testing.T) {
	c, _ := NewColumn(2, []float64{3, 4})
	u := c.Unit()
	if math.Abs(u.Magnitude()-1) >= 1e-6 {
		t.Errorf("Unit().Magnitude() = %v, want 1", u.Magnitude())
	}
}

func TestPlusCol(t *testing.T) {
	a, _ := NewColumn(2, []float64{1, 2})
	b, _ := NewColumn(2, []float64{3, 4})
	sum, err := a.PlusCol(b)
	if err != nil {
		t.Fatalf("PlusCol failed: %v", err)
	}
	if sum.Get(0) != 4 || sum.Get(1) != 6 {
		t.Errorf("PlusCol = (%v,%v), want (4,6)", sum.Get(0), sum.Get(1))
	}
}

func TestDot(t *testing.T) {
	a, _ := NewColumn(3, []float64{1, 2, 3})
	b, _ := NewColumn(3, []float64{4, 5, 6})
	d, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if d != 32 {
		t.Errorf("Dot() = %v, want 32", d)
	}
}

func TestDotMismatchedDof(t *testing.T) {
	a := EmptyColumn(2)
	b := EmptyColumn(3)
	if _, err := a.Dot(b); err == nil {
		t.Error("expected InvalidDimensions, got nil")
	}
}
