// Package physics runs a simple rigid body simulation of circular bodies inside
// a rectangular arena. The state of every body is exposed as gm.Vec2 values, the
// simulation itself is delegated to cp, a go port of the chipmunk2d engine.
package physics
