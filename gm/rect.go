package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle spanning from Min to Max.
type Rect struct {
	Min, Max Vec2
}

func RectWithPoints(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec2{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize(size Vec2) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec2) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec2 {
	return r.Min.Lerp(r.Max, 0.5)
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) TopLeft() Vec2 {
	return r.Min
}

func (r Rect) TopRight() Vec2 {
	return Vec2{
		X: r.Max.X,
		Y: r.Min.Y,
	}
}

func (r Rect) BottomLeft() Vec2 {
	return Vec2{
		X: r.Min.X,
		Y: r.Max.Y,
	}
}

func (r Rect) BottomRight() Vec2 {
	return r.Max
}

// Corners returns the four corners in clockwise order (in screen space)
// starting at the top left corner.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Inset shrinks the rectangle by the given amount on every side.
// A negative amount grows the rectangle.
func (r Rect) Inset(amount float64) Rect {
	offset := VecSplat(amount)
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Sub(offset),
	}
}

func (r Rect) Translate(offset Vec2) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Clamp returns the point within the rectangle that is closest to p.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: min(max(p.X, r.Min.X), r.Max.X),
		Y: min(max(p.Y, r.Min.Y), r.Max.Y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
