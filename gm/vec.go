package gm

import (
	"cmp"
	"fmt"
	"math"
)

// Vec2 is a dimensionless 2d vector of float64 values. The same type is used
// for positions, velocities, forces and displacements.
//
// A Vec2 is a plain value: all methods with a value receiver return a new vector
// and never modify the receiver. Only the *Assign methods mutate in place.
type Vec2 struct {
	X, Y float64
}

var VecZero = Vec2{}
var VecOne = Vec2{X: 1, Y: 1}

func VecOf(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecSplat returns a vector with both components set to v.
func VecSplat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// VecFromAngle returns the unit vector pointing in the direction of the given angle,
// measured counter-clockwise from the positive x axis.
func VecFromAngle(angle Rad) Vec2 {
	sin, cos := math.Sincos(float64(angle))
	return Vec2{X: cos, Y: sin}
}

func (v Vec2) XY() (x, y float64) {
	return v.X, v.Y
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Add(other Vec2) Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec2) Sub(other Vec2) Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Mul scales the vector by the given scalar. Use Scale or ScaleBy for
// scalars that are not float64.
func (v Vec2) Mul(scalar float64) Vec2 {
	v.X *= scalar
	v.Y *= scalar
	return v
}

// Div divides both components by the given scalar. Dividing by zero follows
// IEEE-754 rules and yields infinities or NaN.
func (v Vec2) Div(scalar float64) Vec2 {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec2) MulEach(other Vec2) Vec2 {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec2) DivEach(other Vec2) Vec2 {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v *Vec2) AddAssign(other Vec2) *Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v *Vec2) SubAssign(other Vec2) *Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v *Vec2) MulAssign(scalar float64) *Vec2 {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v *Vec2) DivAssign(scalar float64) *Vec2 {
	v.X /= scalar
	v.Y /= scalar
	return v
}

// Equal reports whether both components are equal. This is the same as
// comparing two vectors using ==.
func (v Vec2) Equal(other Vec2) bool {
	return v == other
}

// Compare orders vectors lexicographically: first by X, then by Y.
// It returns -1, 0 or +1 and can be passed directly to slices.SortFunc.
//
// The order has no geometric meaning. It does not sort by length or angle.
func (v Vec2) Compare(other Vec2) int {
	if c := cmp.Compare(v.X, other.X); c != 0 {
		return c
	}

	return cmp.Compare(v.Y, other.Y)
}

func (v Vec2) Less(other Vec2) bool {
	return v.Compare(other) < 0
}

func (v Vec2) LessEqual(other Vec2) bool {
	return v.Compare(other) <= 0
}

func (v Vec2) Greater(other Vec2) bool {
	return v.Compare(other) > 0
}

func (v Vec2) GreaterEqual(other Vec2) bool {
	return v.Compare(other) >= 0
}

// Dot returns the dot product of both vectors. It is zero if
// the vectors are perpendicular.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of both vectors.
// The result is positive if other is counter-clockwise from v, negative if it is
// clockwise and zero if both vectors are parallel.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// LengthSqr returns the squared length of the vector. Prefer this
// over Length when only comparing magnitudes.
func (v Vec2) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a vector of length 1 pointing in the same direction.
// The zero vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}

	return v.Div(length)
}

// VecTo returns the displacement from v to other.
func (v Vec2) VecTo(other Vec2) Vec2 {
	return other.Sub(v)
}

func (v Vec2) DistanceTo(other Vec2) float64 {
	return v.Sub(other).Length()
}

func (v Vec2) DistanceSqrTo(other Vec2) float64 {
	return v.Sub(other).LengthSqr()
}

// Perpendicular returns the vector rotated by 90° counter-clockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Lerp interpolates linearly between v (t=0) and other (t=1).
// Values of t outside of [0, 1] extrapolate.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return v.Add(other.Sub(v).Mul(t))
}

// Angle returns the angle of the vector measured counter-clockwise
// from the positive x axis, in the range [-π, π].
func (v Vec2) Angle() Rad {
	return Rad(math.Atan2(v.Y, v.X))
}

// Rotated returns the vector rotated counter-clockwise by the given angle.
func (v Vec2) Rotated(angle Rad) Vec2 {
	sin, cos := math.Sincos(float64(angle))
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(x=%v, y=%v)", v.X, v.Y)
}
