package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/physim/gm"
)

// VecOf converts a cp.Vector into a gm.Vec2.
func VecOf(vec cp.Vector) gm.Vec2 {
	return gm.Vec2{X: vec.X, Y: vec.Y}
}

// CpVecOf converts a gm.Vec2 into a cp.Vector.
func CpVecOf(vec gm.Vec2) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}
