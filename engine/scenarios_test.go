package engine

import (
	"math"
	"testing"

	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/collide"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// ScenarioA: free fall. One body under a_B = -g*hatj with g=100, dt=1/60,
// after 60 ticks displacement.y should have fallen by 1/2*g*1^2 = 50
// (exact under leapfrog integration for constant acceleration).
func TestScenarioAFreeFall(t *testing.T) {
	b := restBody(t, "B", 0, 100)
	env := buildEnv(t, []string{"a_B = -g*hatj"}, map[string]float64{"g": 100})
	e := New([]*body.Body{b}, env, nil, 1.0/60.0, 0.5)

	for i := 0; i < 60; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick %d failed: %v", i, err)
		}
	}

	if math.Abs(b.Linear.Displacement.Get(1)-50) > 1e-6 {
		t.Errorf("got y=%v, want 50", b.Linear.Displacement.Get(1))
	}
}

// ScenarioB: inertial glide. Body A with no equations keeps its velocity
// for every tick; after 120 ticks of dt=1/60 at vx=50, x should be ~100.
func TestScenarioBInertialGlide(t *testing.T) {
	a := restBody(t, "A", 0, 0)
	a.Linear.Velocity, _ = lin.NewColumn(2, []float64{50, 0})
	env := buildEnv(t, nil, nil)
	e := New([]*body.Body{a}, env, nil, 1.0/60.0, 0.5)

	for i := 0; i < 120; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick %d failed: %v", i, err)
		}
	}

	if math.Abs(a.Linear.Displacement.Get(0)-100) > 1e-6 {
		t.Errorf("got x=%v, want ~100", a.Linear.Displacement.Get(0))
	}
	if a.Linear.Displacement.Get(1) != 0 {
		t.Errorf("got y=%v, want 0", a.Linear.Displacement.Get(1))
	}
}

// ScenarioC: parametric position. A body whose displacement is given
// directly as a function of its own current angular displacement
// (theta_P) derives its velocity from the displacement delta rather than
// integrating an acceleration.
func TestScenarioCParametricPosition(t *testing.T) {
	p := restBody(t, "P", 0, 0)
	p.Angular.Displacement, _ = lin.NewColumn(1, []float64{math.Pi / 2})

	env := buildEnv(t, []string{
		"q_P = pi/2",
		"s_P = (200*sin(theta_P))*hati + (-200*cos(theta_P))*hatj",
	}, nil)
	e := New([]*body.Body{p}, env, nil, 1.0/60.0, 0.5)

	if _, err := e.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if math.Abs(p.Linear.Displacement.Get(0)-200) > 1e-6 {
		t.Errorf("got x=%v, want 200", p.Linear.Displacement.Get(0))
	}
	if math.Abs(p.Linear.Displacement.Get(1)) > 1e-6 {
		t.Errorf("got y=%v, want 0", p.Linear.Displacement.Get(1))
	}
	// Velocity should be the displacement delta scaled by dt, per the
	// explicit-displacement override path (not integrated from acceleration).
	expectedVx := 200.0 * e.DeltaT
	if math.Abs(p.Linear.Velocity.Get(0)-expectedVx) > 1e-6 {
		t.Errorf("got vx=%v, want %v", p.Linear.Velocity.Get(0), expectedVx)
	}
}

// ScenarioD: rectangle-on-rectangle collision. A (2x2, mass 1, at rest)
// and B (2x2, mass 1, moving at -1 along x) collide elastically.
func TestScenarioDRectangleCollision(t *testing.T) {
	posA, _ := lin.NewColumn(2, []float64{0, 0})
	posB, _ := lin.NewColumn(2, []float64{1.9, 0})
	rot := lin.EmptyColumn(1)

	a, err := body.AtRest("A", body.NewRectangle(2, 2), posA, rot, body.RectangleProperties(1, 2, 2))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}
	b, err := body.AtRest("B", body.NewRectangle(2, 2), posB, rot, body.RectangleProperties(1, 2, 2))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}
	b.Linear.Velocity, _ = lin.NewColumn(2, []float64{-1, 0})

	env := buildEnv(t, nil, nil)
	e := New([]*body.Body{a, b}, env, nil, 1.0, 1.0)

	tick, err := e.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if len(tick.Collisions) == 0 {
		t.Fatal("expected contact to be detected")
	}

	// Elastic exchange between equal masses: velocities roughly swap.
	if math.Abs(a.Linear.Velocity.Get(0)+1) > 0.2 {
		t.Errorf("got A.vx=%v, want ~-1", a.Linear.Velocity.Get(0))
	}
	if math.Abs(b.Linear.Velocity.Get(0)) > 0.2 {
		t.Errorf("got B.vx=%v, want ~0", b.Linear.Velocity.Get(0))
	}
}

// ScenarioE: rotated collision. A axis-aligned 2x2 at origin and B, a 2x2
// rotated pi/8, overlapping just above it, should report a contact with a
// roughly vertical unit normal.
func TestScenarioERotatedCollision(t *testing.T) {
	posA, _ := lin.NewColumn(2, []float64{0, 0})
	posB, _ := lin.NewColumn(2, []float64{0, 2.2})
	rotB, _ := lin.NewColumn(1, []float64{math.Pi / 8})

	a, err := body.AtRest("A", body.NewRectangle(2, 2), posA, lin.EmptyColumn(1), body.RectangleProperties(1, 2, 2))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}
	b, err := body.AtRest("B", body.NewRectangle(2, 2), posB, rotB, body.RectangleProperties(1, 2, 2))
	if err != nil {
		t.Fatalf("AtRest failed: %v", err)
	}

	collider := collide.Collide2D{}
	col, err := collider.Collide(a, b)
	if err != nil {
		t.Fatalf("Collide failed: %v", err)
	}
	if col == nil {
		t.Fatal("expected a contact between the overlapping rectangles")
	}
	if math.Abs(col.Normal.Magnitude()-1) > 1e-6 {
		t.Errorf("expected a unit normal, got magnitude %v", col.Normal.Magnitude())
	}
	if math.Abs(col.Normal.Get(0)) > 0.3 {
		t.Errorf("expected a roughly vertical normal, got %+v", col.Normal)
	}
}
