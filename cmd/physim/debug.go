package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/physim/gm"
	"github.com/oliverbestmann/physim/physics"
)

// debugImage draws the shapes of a physics.World onto an image.
// Simulation coordinates are screen coordinates.
type debugImage struct {
	Image *ebiten.Image
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor, width float32) {
	dpo := &vector.DrawPathOptions{}

	if fill.A > 0 {
		dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
		vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)
	}

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: width, LineCap: vector.LineCapRound}, dpo)
}

func (d debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	center := physics.VecOf(pos)
	rim := center.Add(gm.VecFromAngle(gm.Rad(angle)).Mul(radius))

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	p.MoveTo(float32(center.X), float32(center.Y))
	p.LineTo(float32(rim.X), float32(rim.Y))

	d.draw(p, outline, fill, 1)
}

func (d debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawFatSegment(a, b, 0, fill, cp.FColor{}, data)
}

func (d debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	var p vector.Path
	p.MoveTo(float32(a.X), float32(a.Y))
	p.LineTo(float32(b.X), float32(b.Y))

	d.draw(p, outline, cp.FColor{}, float32(max(1, 2*radius)))
}

func (d debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path
	p.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, vert := range verts[1:count] {
		p.LineTo(float32(vert.X), float32(vert.Y))
	}

	p.Close()

	d.draw(p, outline, fill, float32(max(1, 2*radius)))
}

func (d debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d debugImage) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{G: 1, A: 0.5}
}

func (d debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugImage) Data() interface{} {
	return nil
}
