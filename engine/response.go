package engine

import (
	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/collide"
)

var space2D = body.Space2D{}

// calculateImpulse computes the scalar impulse magnitude along collision's
// normal needed to resolve the contact between a and b under restitution
// coefficient e, including the angular terms from each body's moment of
// inertia. Separating bodies (v_rel_n > 0) and fully immovable pairs (zero
// combined inverse mass/inertia) both resolve to an impulse of 0.
func calculateImpulse(a, b *body.Body, collision collide.Collision, e float64) (float64, error) {
	penA, err := collision.Point.PlusCol(a.Linear.Displacement.ScaleCol(-1))
	if err != nil {
		return 0, err
	}
	penB, err := collision.Point.PlusCol(b.Linear.Displacement.ScaleCol(-1))
	if err != nil {
		return 0, err
	}

	spinA := space2D.CrossBoth(a.Angular.Velocity, penA)
	spinB := space2D.CrossBoth(b.Angular.Velocity, penB)

	pointVelA, err := a.Linear.Velocity.PlusCol(spinA)
	if err != nil {
		return 0, err
	}
	pointVelB, err := b.Linear.Velocity.PlusCol(spinB)
	if err != nil {
		return 0, err
	}

	rel, err := pointVelB.PlusCol(pointVelA.ScaleCol(-1))
	if err != nil {
		return 0, err
	}
	relN, err := rel.Dot(collision.Normal)
	if err != nil {
		return 0, err
	}
	if relN > 0 {
		return 0, nil
	}

	invMassSum := a.Properties.InverseMass() + b.Properties.InverseMass()

	torqueA := space2D.CrossLinear(penA, collision.Normal)
	torqueB := space2D.CrossLinear(penB, collision.Normal)
	angA := torqueA.Magnitude() * torqueA.Magnitude() * a.Properties.InverseMoi()
	angB := torqueB.Magnitude() * torqueB.Magnitude() * b.Properties.InverseMoi()

	denom := invMassSum + angA + angB
	if denom == 0 {
		return 0, nil
	}

	return -(1 + e) * relN / denom, nil
}

// applyImpulse resolves the contact in place: a's velocities are pushed
// against the normal, b's along it.
func applyImpulse(a, b *body.Body, collision collide.Collision, restitution float64) error {
	j, err := calculateImpulse(a, b, collision, restitution)
	if err != nil {
		return err
	}
	impulse := collision.Normal.ScaleCol(j)

	penA, err := collision.Point.PlusCol(a.Linear.Displacement.ScaleCol(-1))
	if err != nil {
		return err
	}
	penB, err := collision.Point.PlusCol(b.Linear.Displacement.ScaleCol(-1))
	if err != nil {
		return err
	}

	newVelA, err := a.Linear.Velocity.PlusCol(impulse.ScaleCol(-a.Properties.InverseMass()))
	if err != nil {
		return err
	}
	newVelB, err := b.Linear.Velocity.PlusCol(impulse.ScaleCol(b.Properties.InverseMass()))
	if err != nil {
		return err
	}
	a.Linear.Velocity = newVelA
	b.Linear.Velocity = newVelB

	torqueA := space2D.CrossLinear(penA, impulse)
	torqueB := space2D.CrossLinear(penB, impulse)

	newAngVelA, err := a.Angular.Velocity.PlusCol(torqueA.ScaleCol(-a.Properties.InverseMoi()))
	if err != nil {
		return err
	}
	newAngVelB, err := b.Angular.Velocity.PlusCol(torqueB.ScaleCol(b.Properties.InverseMoi()))
	if err != nil {
		return err
	}
	a.Angular.Velocity = newAngVelA
	b.Angular.Velocity = newAngVelB

	return nil
}

// applyCorrection pushes a away from b along -collision.Normal, scaled by
// collision.Depth and a's inverse mass, re-checking the collider after
// each push and stopping as soon as the pair no longer overlaps. Bounded
// by CorrectiveFrames so a degenerate pair (e.g. two weightless bodies)
// cannot loop forever.
func applyCorrection(collider collide.Collider, a, b *body.Body, collision collide.Collision) error {
	for i := 0; i < CorrectiveFrames; i++ {
		current, err := collider.Collide(a, b)
		if err != nil {
			return err
		}
		if current == nil {
			break
		}

		push := collision.Normal.ScaleCol(-collision.Depth * a.Properties.InverseMass())
		newDisp, err := a.Linear.Displacement.PlusCol(push)
		if err != nil {
			return err
		}
		a.Linear.Displacement = newDisp
	}
	return nil
}
