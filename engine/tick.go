package engine

import (
	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

// updateState advances one degree-of-freedom group (linear or angular) of
// target by one step, probing the environment in priority order:
// displacement, then velocity, then acceleration, falling back to plain
// inertial continuation if none is defined for this body.
//
// Probes read from snapshot (the state of every body at the start of this
// tick), not from target's own in-progress state, so equations referring
// to other bodies see a consistent pre-tick picture.
func (e *Engine) updateState(
	target *body.Body,
	snapshot []*body.Body,
	dispVar, velVar, accVar string,
	primaryBases, secondaryBases []body.Basis,
	getPrimary func(*body.Body) body.BodyState,
	getSecondary func(*body.Body) body.BodyState,
	setPrimary func(*body.Body, body.BodyState),
) error {
	state := getPrimary(target)
	dof := len(primaryBases)

	s, ok, err := evalImpl(e.Env, dispVar, target.Name, primaryBases, getPrimary, secondaryBases, getSecondary, snapshot)
	if err != nil {
		return err
	}
	if ok {
		oldDisplacement := state.Displacement
		newDisp, err := lin.NewColumn(dof, s)
		if err != nil {
			return err
		}
		diff, err := newDisp.PlusCol(oldDisplacement.ScaleCol(-1))
		if err != nil {
			return err
		}
		state.Displacement = newDisp
		state.Velocity = diff.ScaleCol(e.DeltaT)
		setPrimary(target, state)
		return nil
	}

	v, ok, err := evalImpl(e.Env, velVar, target.Name, primaryBases, getPrimary, secondaryBases, getSecondary, snapshot)
	if err != nil {
		return err
	}
	if ok {
		newVel, err := lin.NewColumn(dof, v)
		if err != nil {
			return err
		}
		newDisp, err := state.Displacement.PlusCol(newVel.ScaleCol(e.DeltaT))
		if err != nil {
			return err
		}
		state.Velocity = newVel
		state.Displacement = newDisp
		setPrimary(target, state)
		return nil
	}

	a, ok, err := evalImpl(e.Env, accVar, target.Name, primaryBases, getPrimary, secondaryBases, getSecondary, snapshot)
	if err != nil {
		return err
	}
	if ok {
		oldVel := state.Velocity
		velComponents := make([]float64, dof)
		for i := 0; i < dof; i++ {
			velComponents[i] = LeapfrogVelocity(e.DeltaT, state.Velocity.Get(i), state.Acceleration.Get(i), a[i])
		}
		newVel, err := lin.NewColumn(dof, velComponents)
		if err != nil {
			return err
		}
		state.Velocity = newVel

		dispComponents := make([]float64, dof)
		for i := 0; i < dof; i++ {
			dispComponents[i] = LeapfrogDisplacement(e.DeltaT, state.Displacement.Get(i), oldVel.Get(i), a[i])
		}
		newDisp, err := lin.NewColumn(dof, dispComponents)
		if err != nil {
			return err
		}
		state.Displacement = newDisp

		newAcc, err := lin.NewColumn(dof, a)
		if err != nil {
			return err
		}
		state.Acceleration = newAcc

		setPrimary(target, state)
		return nil
	}

	newDisp, err := state.Displacement.PlusCol(state.Velocity.ScaleCol(e.DeltaT))
	if err != nil {
		return err
	}
	state.Displacement = newDisp
	setPrimary(target, state)
	return nil
}

// Tick advances every body by one time step and resolves any collisions
// that result, in O(bodies^2) pairwise fashion with no broad phase.
func (e *Engine) Tick() (*Tick, error) {
	space := body.Space2D{}
	linearBases := space.LinearBases()
	angularBases := space.AngularBases()
	getLinear := func(x *body.Body) body.BodyState { return x.Linear }
	getAngular := func(x *body.Body) body.BodyState { return x.Angular }
	setLinear := func(x *body.Body, s body.BodyState) { x.Linear = s }
	setAngular := func(x *body.Body, s body.BodyState) { x.Angular = s }

	snap := snapshot(e.Bodies)

	for _, b := range e.Bodies {
		if err := e.updateState(b, snap, "s", "v", "a", linearBases, angularBases, getLinear, getAngular, setLinear); err != nil {
			return nil, err
		}
		if err := e.updateState(b, snap, "q", "omega", "alpha", angularBases, linearBases, getAngular, getLinear, setAngular); err != nil {
			return nil, err
		}
	}

	tick := &Tick{}

	for i := 0; i < len(e.Bodies); i++ {
		a := e.Bodies[i]
		for j := i + 1; j < len(e.Bodies); j++ {
			b := e.Bodies[j]

			collision, err := e.Collider.Collide(a, b)
			if err != nil {
				return nil, err
			}
			if collision == nil {
				continue
			}

			tick.Collisions = append(tick.Collisions, collision.Point)

			if err := applyImpulse(a, b, *collision, e.Restitution); err != nil {
				return nil, err
			}
			if err := applyCorrection(e.Collider, a, b, *collision); err != nil {
				return nil, err
			}
			if err := applyCorrection(e.Collider, b, a, *collision); err != nil {
				return nil, err
			}
		}
	}

	return tick, nil
}
