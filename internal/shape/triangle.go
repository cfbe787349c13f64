package shape

import (
	"github.com/example/vecdraw/internal/geom"
)

// Triangle is defined by three vertices in click order.
type Triangle struct {
	base
	A, B, C geom.Point
}

// NewTriangle builds a triangle from its vertices.
func NewTriangle(a, b, c geom.Point, st Style) *Triangle {
	return &Triangle{base: newBase(KindTriangle, st), A: a, B: b, C: c}
}

func (t *Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) vertices() []geom.Point { return []geom.Point{t.A, t.B, t.C} }

func (t *Triangle) Draw(p Painter) {
	if t.style.Fill == Filled {
		p.FillPolygon(t.vertices(), t.style.Color)
		return
	}
	p.StrokePath(t.vertices(), true, t.stroke())
}

// Contains computes the barycentric weights of pt. The point is inside
// when all three are non-negative.
func (t *Triangle) Contains(pt geom.Point) bool {
	a, b, c := t.A, t.B, t.C
	d := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if d == 0 {
		return false
	}
	alpha := ((b.Y-c.Y)*(pt.X-c.X) + (c.X-b.X)*(pt.Y-c.Y)) / d
	beta := ((c.Y-a.Y)*(pt.X-c.X) + (a.X-c.X)*(pt.Y-c.Y)) / d
	gamma := 1 - alpha - beta
	return alpha >= 0 && beta >= 0 && gamma >= 0
}

func (t *Triangle) Bounds() geom.Rect { return geom.Bounds(t.vertices()) }

func (t *Triangle) Clone() Shape {
	return &Triangle{base: t.cloneAs(KindTriangle), A: t.A, B: t.B, C: t.C}
}

func (t *Triangle) Offset(dx, dy float64) {
	t.A = t.A.Add(dx, dy)
	t.B = t.B.Add(dx, dy)
	t.C = t.C.Add(dx, dy)
}

// Degenerate reports collinear vertices.
func (t *Triangle) Degenerate() bool {
	a, b, c := t.A, t.B, t.C
	return (b.Y-c.Y)*(a.X-c.X)+(c.X-b.X)*(a.Y-c.Y) == 0
}
