// Package geom holds the small set of planar types shared by shapes,
// the document and the drag solver.
package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a canvas position in editor units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

func (p Point) orb() orb.Point { return orb.Point{p.X, p.Y} }

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints spans the box between two opposite corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// Bounds returns the smallest Rect containing every point. An empty
// slice yields the zero Rect.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = p.orb()
	}
	return fromBound(mp.Bound())
}

func fromBound(b orb.Bound) Rect {
	return Rect{X: b.Min[0], Y: b.Min[1], W: b.Max[0] - b.Min[0], H: b.Max[1] - b.Min[1]}
}

func (r Rect) bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.X, r.Y}, Max: orb.Point{r.X + r.W, r.Y + r.H}}
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the midpoint of the box.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Empty reports whether the box has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool { return r.bound().Contains(p.orb()) }

// Intersects reports whether the two boxes overlap. Boxes that only touch
// along an edge count as overlapping.
func (r Rect) Intersects(o Rect) bool { return r.bound().Intersects(o.bound()) }

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect { return fromBound(r.bound().Union(o.bound())) }

// Inset shrinks r by d on every side; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Corners lists the four corners clockwise from the top-left.
func (r Rect) Corners() []Point {
	return []Point{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
}

// SegmentDistance returns the shortest distance from p to the segment ab.
func SegmentDistance(a, b, p Point) float64 {
	return planar.DistanceFromSegment(a.orb(), b.orb(), p.orb())
}

// PolylineDistance returns the smallest distance from p to any segment of
// the open path through pts. Paths with fewer than two points are
// infinitely far away.
func PolylineDistance(pts []Point, p Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		if d := SegmentDistance(pts[i], pts[i+1], p); d < best {
			best = d
		}
	}
	return best
}
