package shape

import (
	"image"
	"math"

	"github.com/example/vecdraw/internal/geom"
)

// Rectangle is an axis-aligned box.
type Rectangle struct {
	base
	Box geom.Rect
}

// NewRectangle spans a rectangle between two opposite corners.
func NewRectangle(a, b geom.Point, st Style) *Rectangle {
	r := &Rectangle{base: newBase(KindRectangle, st)}
	r.Span(a, b)
	return r
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Draw(p Painter) { drawBox(p, r.Box, &r.base) }

func (r *Rectangle) Contains(pt geom.Point) bool { return r.Box.Contains(pt) }

func (r *Rectangle) Bounds() geom.Rect { return r.Box }

func (r *Rectangle) Clone() Shape {
	return &Rectangle{base: r.cloneAs(KindRectangle), Box: r.Box}
}

func (r *Rectangle) Offset(dx, dy float64) { r.Box = r.Box.Offset(dx, dy) }

func (r *Rectangle) Degenerate() bool { return r.Box.Empty() }

func (r *Rectangle) Span(anchor, current geom.Point) { r.Box = geom.RectFromPoints(anchor, current) }

// Square keeps equal sides while dragging.
type Square struct {
	base
	Box geom.Rect
}

// NewSquare builds a square anchored at a and grown toward b.
func NewSquare(a, b geom.Point, st Style) *Square {
	s := &Square{base: newBase(KindSquare, st)}
	s.Span(a, b)
	return s
}

func (s *Square) Kind() Kind { return KindSquare }

func (s *Square) Draw(p Painter) { drawBox(p, s.Box, &s.base) }

func (s *Square) Contains(pt geom.Point) bool { return s.Box.Contains(pt) }

func (s *Square) Bounds() geom.Rect { return s.Box }

func (s *Square) Clone() Shape {
	return &Square{base: s.cloneAs(KindSquare), Box: s.Box}
}

func (s *Square) Offset(dx, dy float64) { s.Box = s.Box.Offset(dx, dy) }

func (s *Square) Degenerate() bool { return s.Box.Empty() }

// Span uses the shorter drag axis as the side length. The square stays on
// the anchor and extends in the direction of the drag.
func (s *Square) Span(anchor, current geom.Point) {
	side := math.Min(math.Abs(current.X-anchor.X), math.Abs(current.Y-anchor.Y))
	x := anchor.X
	if current.X < anchor.X {
		x = anchor.X - side
	}
	y := anchor.Y
	if current.Y < anchor.Y {
		y = anchor.Y - side
	}
	s.Box = geom.Rect{X: x, Y: y, W: side, H: side}
}

// Image is an imported raster placed on the canvas. Fill mode does not
// apply to it.
type Image struct {
	base
	Box geom.Rect
	Img image.Image
}

// NewImage places img in box.
func NewImage(img image.Image, box geom.Rect, st Style) *Image {
	return &Image{base: newBase(KindImage, st), Box: box, Img: img}
}

func (im *Image) Kind() Kind { return KindImage }

func (im *Image) Draw(p Painter) {
	if im.Img == nil {
		return
	}
	p.DrawImage(im.Img, im.Box)
}

func (im *Image) Contains(pt geom.Point) bool { return im.Box.Contains(pt) }

func (im *Image) Bounds() geom.Rect { return im.Box }

// Clone shares the pixel data, which is never written after import.
func (im *Image) Clone() Shape {
	return &Image{base: im.cloneAs(KindImage), Box: im.Box, Img: im.Img}
}

func (im *Image) Offset(dx, dy float64) { im.Box = im.Box.Offset(dx, dy) }

func (im *Image) Degenerate() bool { return im.Img == nil || im.Box.Empty() }

func (im *Image) SetFill(FillMode) {}

func drawBox(p Painter, r geom.Rect, b *base) {
	pts := r.Corners()
	if b.style.Fill == Filled {
		p.FillPolygon(pts, b.style.Color)
		return
	}
	p.StrokePath(pts, true, b.stroke())
}
