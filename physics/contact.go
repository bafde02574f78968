package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/physim/gm"
)

// Contact describes two bodies that started touching during a World.Step.
type Contact struct {
	A, B *Body

	// Position is the world space position of the first contact point.
	Position gm.Vec2

	// Normal points from A towards B.
	Normal gm.Vec2
}

func (w *World) beginContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	shapeA, shapeB := arb.Shapes()

	a, okA := w.shapes[shapeA]
	b, okB := w.shapes[shapeB]
	if !okA || !okB {
		return true
	}

	contact := Contact{
		A:      a,
		B:      b,
		Normal: VecOf(arb.Normal()),
	}

	points := arb.ContactPointSet()
	if points.Count > 0 {
		contact.Position = VecOf(points.Points[0].PointA)
	} else {
		contact.Position = a.Position().Lerp(b.Position(), 0.5)
	}

	w.contacts = append(w.contacts, contact)

	return true
}
