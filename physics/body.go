package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/physim/gm"
)

// Body is a circular rigid body owned by a World.
type Body struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
}

func (b *Body) Position() gm.Vec2 {
	return VecOf(b.body.Position())
}

func (b *Body) Velocity() gm.Vec2 {
	return VecOf(b.body.Velocity())
}

func (b *Body) SetVelocity(velocity gm.Vec2) {
	b.body.SetVelocityVector(CpVecOf(velocity))
}

func (b *Body) Radius() float64 {
	return b.radius
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// ApplyImpulse changes the momentum of the body by the given impulse,
// applied at the center of the body.
func (b *Body) ApplyImpulse(impulse gm.Vec2) {
	b.body.ApplyImpulseAtWorldPoint(CpVecOf(impulse), b.body.Position())
}
