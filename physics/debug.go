package physics

import "github.com/jakecoffman/cp/v2"

// DebugDraw renders the shapes of the simulation, including the walls,
// using the given drawer.
func (w *World) DebugDraw(drawer cp.Drawer) {
	cp.DrawSpace(w.space, drawer)
}
