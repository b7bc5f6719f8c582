package body

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/ierr"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// BodyState holds one degree-of-freedom group's kinematics: displacement,
// velocity and acceleration, each a Column sized to that group's dof
// (2 for a Space2D body's linear state, 1 for its angular state).
type BodyState struct {
	Displacement lin.Column
	Velocity     lin.Column
	Acceleration lin.Column
}

func restState(dof int) BodyState {
	return BodyState{
		Displacement: lin.EmptyColumn(dof),
		Velocity:     lin.EmptyColumn(dof),
		Acceleration: lin.EmptyColumn(dof),
	}
}

// BodyProperties carries a body's mass and moment of inertia. A
// non-positive or non-finite mass/moi is treated as infinite: the impulse
// and positional-correction code inverts them as 0 rather than dividing
// by zero.
type BodyProperties struct {
	Mass float64
	Moi  float64
}

// Weightless returns the properties of an immovable body: zero mass and
// zero moment of inertia, both of which the response code reads as
// "infinite mass" (1/mass -> 0).
func Weightless() BodyProperties { return BodyProperties{Mass: 0, Moi: 0} }

// RectangleProperties computes a uniform rectangular plate's moment of
// inertia about its centroid: I = mass*(width^2+height^2)/12.
func RectangleProperties(mass, width, height float64) BodyProperties {
	return BodyProperties{Mass: mass, Moi: mass * (width*width + height*height) / 12}
}

// Body is a named rigid body: a Shape positioned/oriented by its Linear
// and Angular BodyState, with fixed mass properties.
type Body struct {
	Name       string
	Shape      Shape
	Linear     BodyState
	Angular    BodyState
	Properties BodyProperties
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
		if !ok {
			return false
		}
	}
	return true
}

// AtRest builds a Body with zero velocity/acceleration, positioned at
// position with angular displacement rotation. The name must be a
// non-empty identifier (letters, digits, underscore) since it is spliced
// into the per-basis override variable names (e.g. "x_A") the tick
// orchestrator injects into the symbolic environment.
func AtRest(name string, shape Shape, position lin.Column, rotation lin.Column, properties BodyProperties) (*Body, error) {
	if !validName(name) {
		return nil, ierr.Syntax("body name must be a non-empty identifier (letters, digits, underscore)")
	}

	linear := restState(position.Dof())
	linear.Displacement = position

	angular := restState(rotation.Dof())
	angular.Displacement = rotation

	return &Body{
		Name:       name,
		Shape:      shape,
		Linear:     linear,
		Angular:    angular,
		Properties: properties,
	}, nil
}

// InverseMass returns 1/Mass, treating a non-positive mass as infinite
// (inverse 0), matching the impulse/correction code's convention for
// immovable bodies.
func (p BodyProperties) InverseMass() float64 {
	if p.Mass <= 0 || math.IsNaN(p.Mass) {
		return 0
	}
	return 1 / p.Mass
}

// InverseMoi returns 1/Moi, treating a non-positive moment of inertia as
// infinite (inverse 0).
func (p BodyProperties) InverseMoi() float64 {
	if p.Moi <= 0 || math.IsNaN(p.Moi) {
		return 0
	}
	return 1 / p.Moi
}
