// Package body implements the space/body abstraction the tick orchestrator
// and collider operate over: a Space fixes the number and naming of a
// simulation's linear and angular degrees of freedom, and a Body couples a
// Shape to its BodyState/BodyProperties within that space.
package body

import "github.com/durganmcbroom/iterative-physics/math/lin"

// Basis names one scalar degree of freedom: the symbolic variable that
// refers to it (e.g. "hati") and the axis suffix used to build
// per-body/per-basis override names (e.g. "x" in "x_A").
type Basis struct {
	Name string
	Axis string
}

// Space fixes the dimensionality of a simulation: how many linear and
// angular degrees of freedom a body has, what those bases are called in
// equation source, and how angular/linear quantities interact (the cross
// products the impulse/tick code needs).
//
// A single Go type implements Space per dimensionality (Space2D today);
// spec's compile-time generic Space trait becomes a runtime interface
// since Go has no const generics to size Linear/Angular at compile time.
type Space interface {
	LinearDof() int
	AngularDof() int
	LinearBases() []Basis
	AngularBases() []Basis

	// CrossBoth computes the linear velocity contribution of an angular
	// velocity w acting at linear offset r (w x r in 3D terms).
	CrossBoth(w, r lin.Column) lin.Column

	// CrossLinear computes the angular quantity produced by two linear
	// vectors under a cross product (a x b), e.g. torque from force and
	// lever arm.
	CrossLinear(a, b lin.Column) lin.Column
}

// Space2D is the only Space this engine implements: two linear degrees of
// freedom (hati/x, hatj/y) and one angular degree of freedom (hatk/theta).
type Space2D struct{}

func (Space2D) LinearDof() int  { return 2 }
func (Space2D) AngularDof() int { return 1 }

func (Space2D) LinearBases() []Basis {
	return []Basis{{Name: "hati", Axis: "x"}, {Name: "hatj", Axis: "y"}}
}

func (Space2D) AngularBases() []Basis {
	return []Basis{{Name: "hatk", Axis: "theta"}}
}

// CrossBoth realizes w x r for a scalar angular velocity (w.Get(0)) and a
// 2D linear offset r, producing the 2D velocity (-w*r.y, w*r.x).
func (Space2D) CrossBoth(w, r lin.Column) lin.Column {
	out, _ := lin.NewColumn(2, []float64{-w.Get(0) * r.Get(1), w.Get(0) * r.Get(0)})
	return out
}

// CrossLinear realizes a x b for two 2D linear vectors, producing the
// scalar z-component of the 3D cross product.
func (Space2D) CrossLinear(a, b lin.Column) lin.Column {
	out, _ := lin.NewColumn(1, []float64{a.Get(0)*b.Get(1) - a.Get(1)*b.Get(0)})
	return out
}
