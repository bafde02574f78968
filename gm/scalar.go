package gm

// Scalar is the set of numeric types a vector can be scaled by.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Scale multiplies the vector by a scalar of any numeric type.
func Scale[S Scalar](v Vec2, s S) Vec2 {
	return v.Mul(float64(s))
}

// ScaleBy is Scale with the operands swapped. It returns exactly the same result.
func ScaleBy[S Scalar](s S, v Vec2) Vec2 {
	return v.Mul(float64(s))
}

// Divide divides the vector by a scalar of any numeric type. The scalar is
// converted to float64 first, so an integer zero yields infinities or NaN
// instead of a runtime panic.
func Divide[S Scalar](v Vec2, s S) Vec2 {
	return v.Div(float64(s))
}

func ScaleAssign[S Scalar](v *Vec2, s S) *Vec2 {
	return v.MulAssign(float64(s))
}

func DivideAssign[S Scalar](v *Vec2, s S) *Vec2 {
	return v.DivAssign(float64(s))
}
