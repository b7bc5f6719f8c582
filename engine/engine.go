// Package engine orchestrates ticks of the simulation: evaluating the
// symbolic environment to advance each body's state, then detecting and
// resolving collisions between bodies.
package engine

import (
	"fmt"

	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/collide"
	"github.com/durganmcbroom/iterative-physics/ierr"
	"github.com/durganmcbroom/iterative-physics/math/lin"
	"github.com/durganmcbroom/iterative-physics/symbolic"
)

// CorrectiveFrames bounds the number of iterations applyCorrection may
// take to push two still-overlapping bodies apart.
const CorrectiveFrames = 100

// Engine owns the live bodies and the symbolic environment driving their
// motion, and produces one Tick per call to Tick().
type Engine struct {
	Bodies      []*body.Body
	Env         *symbolic.Environment
	Collider    collide.Collider
	DeltaT      float64
	Restitution float64
}

// New builds an Engine. Collider defaults to collide.Collide2D{} when nil.
func New(bodies []*body.Body, env *symbolic.Environment, collider collide.Collider, deltaT, restitution float64) *Engine {
	if collider == nil {
		collider = collide.Collide2D{}
	}
	return &Engine{Bodies: bodies, Env: env, Collider: collider, DeltaT: deltaT, Restitution: restitution}
}

// Tick is the record of one simulation step: every contact point resolved
// during it, in resolution order.
type Tick struct {
	Collisions []lin.Column
}

func cloneBody(b *body.Body) *body.Body {
	clone := *b
	return &clone
}

func snapshot(bodies []*body.Body) []*body.Body {
	out := make([]*body.Body, len(bodies))
	for i, b := range bodies {
		out[i] = cloneBody(b)
	}
	return out
}

// evalImpl probes env for the variable "{var}_{owner}", one degree of
// freedom at a time, by setting exactly one of primaryBases' symbolic
// names to 1 (and the other primary basis names to 0) and reading back the
// resulting scalar. Every body's primary and secondary state is injected
// under its axis names ("x_A", "v_x_A", "theta_A", ...), along with
// "m_A" and "I_A"; secondary basis names are not set. If ANY probed component
// is undefined (an UnsatisfiedVariable error matching the probe form
// itself), the whole result is treated as undefined, matching the source
// semantics of all-or-nothing vector resolution.
func evalImpl(
	env *symbolic.Environment,
	varName, owner string,
	primaryBases []body.Basis,
	primary func(*body.Body) body.BodyState,
	secondaryBases []body.Basis,
	secondary func(*body.Body) body.BodyState,
	bodies []*body.Body,
) ([]float64, bool, error) {
	overrides := make(map[string]float64)
	for _, b := range primaryBases {
		overrides[b.Name] = 0
	}

	for _, x := range bodies {
		ps := primary(x)
		for i, b := range primaryBases {
			overrides[fmt.Sprintf("%s_%s", b.Axis, x.Name)] = ps.Displacement.Get(i)
			overrides[fmt.Sprintf("v_%s_%s", b.Axis, x.Name)] = ps.Velocity.Get(i)
		}
		ss := secondary(x)
		for i, b := range secondaryBases {
			overrides[fmt.Sprintf("%s_%s", b.Axis, x.Name)] = ss.Displacement.Get(i)
			overrides[fmt.Sprintf("v_%s_%s", b.Axis, x.Name)] = ss.Velocity.Get(i)
		}
		overrides[fmt.Sprintf("m_%s", x.Name)] = x.Properties.Mass
		overrides[fmt.Sprintf("I_%s", x.Name)] = x.Properties.Moi
	}

	form := fmt.Sprintf("%s_%s", varName, owner)
	values := make([]float64, len(primaryBases))
	complete := true

	for i, b := range primaryBases {
		overrides[b.Name] = 1.0
		v, err := env.Evaluate(form, overrides)
		if err != nil {
			ie, ok := err.(*ierr.Error)
			if ok && ie.Kind == ierr.UnsatisfiedVariable && ie.Name == form {
				complete = false
			} else {
				return nil, false, err
			}
		} else {
			values[i] = v
		}
		overrides[b.Name] = 0.0
	}

	if !complete {
		return nil, false, nil
	}
	return values, true, nil
}
