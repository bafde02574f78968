package gm

import "math/rand/v2"

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec() Vec2 {
	for {
		v := Vec2{
			X: RandomIn(-1.0, 1.0),
			Y: RandomIn(-1.0, 1.0),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomVecIn returns a point uniformly sampled from within the given rectangle.
func RandomVecIn(r Rect) Vec2 {
	return Vec2{
		X: RandomIn(r.Min.X, r.Max.X),
		Y: RandomIn(r.Min.Y, r.Max.Y),
	}
}
