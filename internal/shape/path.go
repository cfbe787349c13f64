package shape

import (
	"github.com/example/vecdraw/internal/geom"
)

// PickTolerance is added to the line width when hit testing open paths.
const PickTolerance = 5

// pathPad pads the bounds of open paths.
const pathPad = 5

var previewDash = []float64{8, 8}

// Polyline is an open path built one vertex per click. While under
// construction it may carry a preview point that follows the pointer.
type Polyline struct {
	base
	Points  []geom.Point
	preview *geom.Point
}

// NewPolyline starts a polyline through pts.
func NewPolyline(st Style, pts ...geom.Point) *Polyline {
	return &Polyline{base: newBase(KindPolyline, st), Points: append([]geom.Point(nil), pts...)}
}

func (pl *Polyline) Kind() Kind { return KindPolyline }

// AddPoint appends a vertex.
func (pl *Polyline) AddPoint(p geom.Point) { pl.Points = append(pl.Points, p) }

// Len returns the number of vertices.
func (pl *Polyline) Len() int { return len(pl.Points) }

// SetPreview sets the dashed trailing segment end point.
func (pl *Polyline) SetPreview(p geom.Point) { pl.preview = &p }

// ClearPreview removes the trailing segment.
func (pl *Polyline) ClearPreview() { pl.preview = nil }

// Preview returns the preview point if one is set.
func (pl *Polyline) Preview() (geom.Point, bool) {
	if pl.preview == nil {
		return geom.Point{}, false
	}
	return *pl.preview, true
}

func (pl *Polyline) Draw(p Painter) {
	if len(pl.Points) >= 2 {
		p.StrokePath(pl.Points, false, pl.stroke())
	}
	if pl.preview != nil && len(pl.Points) > 0 {
		s := pl.stroke()
		s.Dash = previewDash
		p.StrokePath([]geom.Point{pl.Points[len(pl.Points)-1], *pl.preview}, false, s)
	}
}

func (pl *Polyline) Contains(pt geom.Point) bool {
	return geom.PolylineDistance(pl.Points, pt) <= pl.style.LineWidth+PickTolerance
}

func (pl *Polyline) Bounds() geom.Rect { return pathBounds(pl.Points) }

// Clone copies the vertices. The preview is construction state and is not
// carried over.
func (pl *Polyline) Clone() Shape {
	return &Polyline{base: pl.cloneAs(KindPolyline), Points: append([]geom.Point(nil), pl.Points...)}
}

func (pl *Polyline) Offset(dx, dy float64) { offsetPoints(pl.Points, dx, dy) }

func (pl *Polyline) Degenerate() bool { return len(pl.Points) < 2 }

func (pl *Polyline) SetFill(FillMode) {}

// Squiggle is a freehand path with one vertex per pointer sample.
type Squiggle struct {
	base
	Points []geom.Point
}

// NewSquiggle starts a freehand path through pts.
func NewSquiggle(st Style, pts ...geom.Point) *Squiggle {
	return &Squiggle{base: newBase(KindSquiggle, st), Points: append([]geom.Point(nil), pts...)}
}

func (sq *Squiggle) Kind() Kind { return KindSquiggle }

// AddPoint appends a sample.
func (sq *Squiggle) AddPoint(p geom.Point) { sq.Points = append(sq.Points, p) }

func (sq *Squiggle) Draw(p Painter) {
	if len(sq.Points) >= 2 {
		p.StrokePath(sq.Points, false, sq.stroke())
	}
}

func (sq *Squiggle) Contains(pt geom.Point) bool {
	return geom.PolylineDistance(sq.Points, pt) <= sq.style.LineWidth+PickTolerance
}

func (sq *Squiggle) Bounds() geom.Rect { return pathBounds(sq.Points) }

func (sq *Squiggle) Clone() Shape {
	return &Squiggle{base: sq.cloneAs(KindSquiggle), Points: append([]geom.Point(nil), sq.Points...)}
}

func (sq *Squiggle) Offset(dx, dy float64) { offsetPoints(sq.Points, dx, dy) }

func (sq *Squiggle) Degenerate() bool { return len(sq.Points) < 2 }

func (sq *Squiggle) SetFill(FillMode) {}

func pathBounds(pts []geom.Point) geom.Rect {
	if len(pts) == 0 {
		return geom.Rect{}
	}
	return geom.Bounds(pts).Inset(-pathPad)
}

func offsetPoints(pts []geom.Point, dx, dy float64) {
	for i := range pts {
		pts[i] = pts[i].Add(dx, dy)
	}
}
