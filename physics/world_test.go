package physics

import (
	"math"
	"slices"
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/physim/gm"
	"github.com/stretchr/testify/require"
)

var arena = gm.RectWithSize(gm.VecOf(800, 600))

func weightless() Options {
	opts := DefaultOptions()
	opts.Gravity = gm.VecZero
	return opts
}

func TestVecConversion(t *testing.T) {
	require.Equal(t, cp.Vector{X: 1.5, Y: -2}, CpVecOf(gm.VecOf(1.5, -2)))
	require.Equal(t, gm.VecOf(1.5, -2), VecOf(cp.Vector{X: 1.5, Y: -2}))
}

func TestWorld_Gravity(t *testing.T) {
	w := NewWorld(arena, DefaultOptions())
	require.Equal(t, gm.VecOf(0, 300), w.Gravity())

	ball := w.SpawnBall(gm.VecOf(400, 100), gm.VecZero, 10, 1)

	w.Step(0.1)

	require.InDelta(t, 30, ball.Velocity().Y, 1e-6)
	require.InDelta(t, 0, ball.Velocity().X, 1e-9)
	require.Greater(t, ball.Position().Y, 100.0)
	require.InDelta(t, 400, ball.Position().X, 1e-9)

	t.Run("change gravity", func(t *testing.T) {
		w.SetGravity(gm.VecOf(-100, 0))
		require.Equal(t, gm.VecOf(-100, 0), w.Gravity())

		before := ball.Velocity()
		w.Step(0.1)

		delta := before.VecTo(ball.Velocity())
		require.InDelta(t, -10, delta.X, 1e-6)
		require.InDelta(t, 0, delta.Y, 1e-6)
	})
}

func TestWorld_StaysInBounds(t *testing.T) {
	w := NewWorld(arena, DefaultOptions())

	for range 20 {
		pos := gm.RandomVecIn(arena.Inset(20))
		vel := gm.RandomVec().Mul(800)
		w.SpawnBall(pos, vel, 10, 1)
	}

	for range 600 {
		w.Step(1.0 / 60.0)

		for _, body := range w.Bodies() {
			require.True(t, arena.Contains(body.Position()), "escaped: %s", body.Position())
		}
	}
}

func TestWorld_ApplyBlast(t *testing.T) {
	w := NewWorld(arena, weightless())

	left := w.SpawnBall(gm.VecOf(300, 300), gm.VecZero, 10, 2)
	right := w.SpawnBall(gm.VecOf(500, 300), gm.VecZero, 10, 1)
	far := w.SpawnBall(gm.VecOf(700, 500), gm.VecZero, 10, 1)
	center := w.SpawnBall(gm.VecOf(400, 300), gm.VecZero, 10, 1)

	pushed := w.ApplyBlast(gm.VecOf(400, 300), 150, 100)
	require.Equal(t, 2, pushed)

	// the change in velocity does not depend on the mass
	require.InDelta(t, -100.0/3.0, left.Velocity().X, 1e-6)
	require.InDelta(t, 100.0/3.0, right.Velocity().X, 1e-6)
	require.InDelta(t, 0, left.Velocity().Y, 1e-9)

	require.Equal(t, gm.VecZero, far.Velocity())
	require.Equal(t, gm.VecZero, center.Velocity())

	t.Run("non-positive radius", func(t *testing.T) {
		w := NewWorld(arena, weightless())
		ball := w.SpawnBall(gm.VecOf(420, 300), gm.VecZero, 10, 1)

		require.Equal(t, 0, w.ApplyBlast(gm.VecOf(400, 300), -150, 100))
		require.Equal(t, 0, w.ApplyBlast(gm.VecOf(400, 300), 0, 100))
		require.Equal(t, gm.VecZero, ball.Velocity())
	})
}

func TestWorld_Contacts(t *testing.T) {
	w := NewWorld(arena, weightless())

	left := w.SpawnBall(gm.VecOf(300, 300), gm.VecOf(100, 0), 10, 1)
	right := w.SpawnBall(gm.VecOf(400, 300), gm.VecOf(-100, 0), 10, 1)

	var contacts []Contact
	for range 60 {
		w.Step(1.0 / 60.0)
		contacts = append(contacts, w.Contacts()...)
	}

	require.NotEmpty(t, contacts)

	contact := contacts[0]
	require.ElementsMatch(t, []*Body{left, right}, []*Body{contact.A, contact.B})
	require.InDelta(t, 1, math.Abs(contact.Normal.X), 1e-6)
	require.InDelta(t, 350, contact.Position.X, 5)

	// the balls bounced off each other
	require.Less(t, left.Velocity().X, 0.0)
	require.Greater(t, right.Velocity().X, 0.0)
}

func TestWorld_ContactsStableAcrossSteps(t *testing.T) {
	w := NewWorld(arena, weightless())

	// the first pair touches well before the second one
	w.SpawnBall(gm.VecOf(300, 150), gm.VecOf(100, 0), 10, 1)
	w.SpawnBall(gm.VecOf(400, 150), gm.VecOf(-100, 0), 10, 1)
	w.SpawnBall(gm.VecOf(200, 450), gm.VecOf(100, 0), 10, 1)
	w.SpawnBall(gm.VecOf(500, 450), gm.VecOf(-100, 0), 10, 1)

	var saved []Contact
	for range 60 {
		w.Step(1.0 / 60.0)

		if len(w.Contacts()) > 0 {
			saved = w.Contacts()
			break
		}
	}

	require.NotEmpty(t, saved)
	snapshot := slices.Clone(saved)

	var later int
	for range 120 {
		w.Step(1.0 / 60.0)
		later += len(w.Contacts())
	}

	require.Positive(t, later)
	require.Equal(t, snapshot, saved)
}

func TestWorld_KineticEnergy(t *testing.T) {
	w := NewWorld(arena, weightless())
	require.Equal(t, 0.0, w.KineticEnergy())

	w.SpawnBall(gm.VecOf(100, 100), gm.VecOf(3, 4), 5, 2)
	w.SpawnBall(gm.VecOf(200, 100), gm.VecOf(1, 0), 5, 4)
	require.InDelta(t, 27, w.KineticEnergy(), 1e-9)
}

func TestWorld_Clear(t *testing.T) {
	w := NewWorld(arena, DefaultOptions())
	w.SpawnBall(gm.VecOf(100, 100), gm.VecZero, 5, 1)
	w.SpawnBall(gm.VecOf(200, 100), gm.VecZero, 5, 1)
	require.Len(t, w.Bodies(), 2)

	w.Clear()
	require.Empty(t, w.Bodies())

	// the world is still usable
	w.SpawnBall(gm.VecOf(100, 100), gm.VecZero, 5, 1)
	w.Step(1.0 / 60.0)
	require.Len(t, w.Bodies(), 1)
}

func TestWorld_SpawnBallInvalid(t *testing.T) {
	w := NewWorld(arena, DefaultOptions())

	require.Panics(t, func() { w.SpawnBall(gm.VecOf(100, 100), gm.VecZero, 0, 1) })
	require.Panics(t, func() { w.SpawnBall(gm.VecOf(100, 100), gm.VecZero, 5, -1) })
}

func TestNewWorld_Substeps(t *testing.T) {
	opts := DefaultOptions()
	opts.Substeps = 0

	w := NewWorld(arena, opts)
	ball := w.SpawnBall(gm.VecOf(400, 100), gm.VecZero, 10, 1)

	require.NotPanics(t, func() { w.Step(0.1) })
	require.InDelta(t, 30, ball.Velocity().Y, 1e-6)
}
