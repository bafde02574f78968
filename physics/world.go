package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/physim/gm"
)

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypeWall
)

const wallThickness = 8

type Options struct {
	// Gravity is the acceleration applied to every body, in units per second squared.
	Gravity gm.Vec2

	// Elasticity and Friction are applied to all bodies and walls.
	Elasticity float64
	Friction   float64

	// Substeps is the number of simulation steps per call to World.Step.
	// Values smaller than one are treated as one.
	Substeps int
}

func DefaultOptions() Options {
	return Options{
		Gravity:    gm.Vec2{Y: 300},
		Elasticity: 0.9,
		Friction:   0.2,
		Substeps:   4,
	}
}

// World simulates circular bodies inside a rectangular arena.
// A World is not safe for concurrent use.
type World struct {
	space  *cp.Space
	bounds gm.Rect
	opts   Options

	bodies []*Body
	shapes map[*cp.Shape]*Body
	walls  []*cp.Shape

	// contacts started during the last call to Step
	contacts []Contact
}

// NewWorld creates an empty world whose bodies are kept inside the given bounds.
func NewWorld(bounds gm.Rect, opts Options) *World {
	opts.Substeps = max(opts.Substeps, 1)

	w := &World{
		space:  cp.NewSpace(),
		bounds: bounds,
		opts:   opts,
		shapes: map[*cp.Shape]*Body{},
	}

	w.space.SetGravity(CpVecOf(opts.Gravity))

	// walls are placed just outside of the bounds, so the inner
	// edge of each wall lines up with the bounds.
	corners := bounds.Inset(-wallThickness).Corners()
	for idx := range corners {
		a := corners[idx]
		b := corners[(idx+1)%len(corners)]

		wall := cp.NewSegment(w.space.StaticBody, CpVecOf(a), CpVecOf(b), wallThickness)
		wall.SetElasticity(opts.Elasticity)
		wall.SetFriction(opts.Friction)
		wall.SetCollisionType(collisionTypeWall)

		w.space.AddShape(wall)
		w.walls = append(w.walls, wall)
	}

	handler := w.space.NewCollisionHandler(collisionTypeBall, collisionTypeBall)
	handler.BeginFunc = w.beginContact

	return w
}

func (w *World) Bounds() gm.Rect {
	return w.bounds
}

func (w *World) Gravity() gm.Vec2 {
	return w.opts.Gravity
}

func (w *World) SetGravity(gravity gm.Vec2) {
	w.opts.Gravity = gravity
	w.space.SetGravity(CpVecOf(gravity))
}

// SetMaterial updates elasticity and friction of all bodies and walls.
func (w *World) SetMaterial(elasticity, friction float64) {
	w.opts.Elasticity = elasticity
	w.opts.Friction = friction

	for _, wall := range w.walls {
		wall.SetElasticity(elasticity)
		wall.SetFriction(friction)
	}

	for _, body := range w.bodies {
		body.shape.SetElasticity(elasticity)
		body.shape.SetFriction(friction)
	}
}

// SpawnBall adds a new circular body to the world.
// It panics if radius or mass are not positive.
func (w *World) SpawnBall(position, velocity gm.Vec2, radius, mass float64) *Body {
	if radius <= 0 || mass <= 0 {
		panic("ball must have a positive radius and mass")
	}

	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(CpVecOf(position))
	body.SetVelocityVector(CpVecOf(velocity))

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(w.opts.Elasticity)
	shape.SetFriction(w.opts.Friction)
	shape.SetCollisionType(collisionTypeBall)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	ball := &Body{body: body, shape: shape, radius: radius}
	w.bodies = append(w.bodies, ball)
	w.shapes[shape] = ball

	return ball
}

// Bodies returns all bodies of the world. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Contacts returns the contacts between bodies that started during the last call to Step.
// The returned slice is not modified by later calls to Step.
func (w *World) Contacts() []Contact {
	return w.contacts
}

// Clear removes all bodies from the world. The walls are kept.
func (w *World) Clear() {
	for _, body := range w.bodies {
		w.space.RemoveShape(body.shape)
		w.space.RemoveBody(body.body)
	}

	w.bodies = nil
	w.contacts = nil
	clear(w.shapes)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.contacts = nil

	substep := dt / float64(w.opts.Substeps)
	for range w.opts.Substeps {
		w.space.Step(substep)
	}

	for _, body := range w.bodies {
		w.contain(body)
	}
}

// contain moves a body that escaped the arena back in and
// reflects the part of its velocity that points outwards.
func (w *World) contain(body *Body) {
	inner := w.bounds.Inset(body.radius)

	pos := body.Position()
	if inner.Contains(pos) {
		return
	}

	clamped := inner.Clamp(pos)
	vel := body.Velocity()

	if clamped.X != pos.X && (clamped.X-pos.X)*vel.X < 0 {
		vel.X = -vel.X * w.opts.Elasticity
	}

	if clamped.Y != pos.Y && (clamped.Y-pos.Y)*vel.Y < 0 {
		vel.Y = -vel.Y * w.opts.Elasticity
	}

	body.body.SetPosition(CpVecOf(clamped))
	body.SetVelocity(vel)
}

// ApplyBlast pushes all bodies within radius of center away from it. The change
// in velocity is strength at the center and falls off linearly to zero at radius.
// It returns the number of bodies that were pushed.
func (w *World) ApplyBlast(center gm.Vec2, radius, strength float64) int {
	if radius <= 0 {
		return 0
	}

	var count int

	radiusSqr := radius * radius

	for _, body := range w.bodies {
		pos := body.Position()

		distSqr := center.DistanceSqrTo(pos)
		if distSqr >= radiusSqr {
			continue
		}

		// a body exactly at the center has no direction to be pushed in
		dir := center.VecTo(pos).Normalized()
		if dir.IsZero() {
			continue
		}

		falloff := 1 - math.Sqrt(distSqr)/radius
		body.ApplyImpulse(dir.Mul(strength * falloff * body.Mass()))

		count++
	}

	return count
}

// KineticEnergy returns the sum of the linear kinetic energy of all bodies.
func (w *World) KineticEnergy() float64 {
	var energy float64
	for _, body := range w.bodies {
		energy += 0.5 * body.Mass() * body.Velocity().LengthSqr()
	}

	return energy
}
