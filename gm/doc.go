// Package gm (stands for geometry math) provides the geometry primitives of the simulation.
//
// The central type is Vec2, a 2d vector value used for positions, velocities, forces
// and displacements alike. It carries no unit; meaning is assigned by the caller.
// All operations are total over float64: division by zero follows IEEE-754 rules,
// and Vec2.Normalized returns the zero vector for a zero length input.
//
// Vectors are ordered lexicographically by Vec2.Compare. This order exists for
// sorting and deterministic iteration only and says nothing about length or direction.
//
// There is also a type named Rad to represent angle values in radian and an
// axis aligned rectangle Rect.
package gm
