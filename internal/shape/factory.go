package shape

import (
	"github.com/example/vecdraw/internal/geom"
)

// Create builds a shape of kind k from construction points. It returns
// false when there are not enough points or k is not built from points.
//
//	rectangle, square, oval: two corners
//	circle: centre, and optionally a point on the rim
//	triangle: three vertices
//	polyline, squiggle: any number of vertices, including none
func Create(k Kind, st Style, pts ...geom.Point) (Shape, bool) {
	switch k {
	case KindRectangle:
		if len(pts) < 2 {
			return nil, false
		}
		return NewRectangle(pts[0], pts[1], st), true
	case KindSquare:
		if len(pts) < 2 {
			return nil, false
		}
		return NewSquare(pts[0], pts[1], st), true
	case KindOval:
		if len(pts) < 2 {
			return nil, false
		}
		return NewOval(pts[0], pts[1], st), true
	case KindCircle:
		if len(pts) < 1 {
			return nil, false
		}
		c := NewCircle(pts[0], 0, st)
		if len(pts) > 1 {
			c.Span(pts[0], pts[1])
		}
		return c, true
	case KindTriangle:
		if len(pts) < 3 {
			return nil, false
		}
		return NewTriangle(pts[0], pts[1], pts[2], st), true
	case KindPolyline:
		return NewPolyline(st, pts...), true
	case KindSquiggle:
		return NewSquiggle(st, pts...), true
	}
	return nil, false
}
