package shape

import (
	"github.com/example/vecdraw/internal/geom"
)

// Circle is centred on its anchor.
type Circle struct {
	base
	Center geom.Point
	Radius float64
}

// NewCircle builds a circle of radius r around c.
func NewCircle(c geom.Point, r float64, st Style) *Circle {
	if r < 0 {
		r = -r
	}
	return &Circle{base: newBase(KindCircle, st), Center: c, Radius: r}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Draw(p Painter) {
	if c.style.Fill == Filled {
		p.FillEllipse(c.Center, c.Radius, c.Radius, c.style.Color)
		return
	}
	p.StrokeEllipse(c.Center, c.Radius, c.Radius, c.stroke())
}

func (c *Circle) Contains(pt geom.Point) bool { return c.Center.Dist(pt) <= c.Radius }

func (c *Circle) Bounds() geom.Rect {
	return geom.Rect{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}

func (c *Circle) Clone() Shape {
	return &Circle{base: c.cloneAs(KindCircle), Center: c.Center, Radius: c.Radius}
}

func (c *Circle) Offset(dx, dy float64) { c.Center = c.Center.Add(dx, dy) }

func (c *Circle) Degenerate() bool { return c.Radius <= 0 }

// Span keeps the centre on the anchor and sets the radius to the drag
// distance.
func (c *Circle) Span(anchor, current geom.Point) {
	c.Center = anchor
	c.Radius = anchor.Dist(current)
}

// Oval is an ellipse inscribed in Box.
type Oval struct {
	base
	Box geom.Rect
}

// NewOval spans an oval between two opposite corners of its box.
func NewOval(a, b geom.Point, st Style) *Oval {
	o := &Oval{base: newBase(KindOval, st)}
	o.Span(a, b)
	return o
}

func (o *Oval) Kind() Kind { return KindOval }

func (o *Oval) Draw(p Painter) {
	c := o.Box.Center()
	if o.style.Fill == Filled {
		p.FillEllipse(c, o.Box.W/2, o.Box.H/2, o.style.Color)
		return
	}
	p.StrokeEllipse(c, o.Box.W/2, o.Box.H/2, o.stroke())
}

// Contains applies the normalised ellipse equation. A flat oval contains
// nothing.
func (o *Oval) Contains(pt geom.Point) bool {
	rx, ry := o.Box.W/2, o.Box.H/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := o.Box.Center()
	nx := (pt.X - c.X) / rx
	ny := (pt.Y - c.Y) / ry
	return nx*nx+ny*ny <= 1
}

func (o *Oval) Bounds() geom.Rect { return o.Box }

func (o *Oval) Clone() Shape {
	return &Oval{base: o.cloneAs(KindOval), Box: o.Box}
}

func (o *Oval) Offset(dx, dy float64) { o.Box = o.Box.Offset(dx, dy) }

func (o *Oval) Degenerate() bool { return o.Box.Empty() }

func (o *Oval) Span(anchor, current geom.Point) { o.Box = geom.RectFromPoints(anchor, current) }
