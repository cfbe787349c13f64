// Package drag bounds group moves so every shape stays on the canvas.
package drag

import (
	"math"

	"github.com/example/vecdraw/internal/geom"
)

// Clamp limits the requested delta (dx, dy) so that every box in bounds
// stays inside a w by h canvas after moving. Each box allows a horizontal
// delta in [-x, w-(x+bw)] and a vertical delta in [-y, h-(y+bh)]; the
// group may move only within the intersection of those ranges, so the
// most constrained box decides.
//
// An empty group, a canvas without area or an axis whose ranges do not
// overlap all yield no movement on the affected axes.
func Clamp(bounds []geom.Rect, dx, dy, w, h float64) (float64, float64) {
	if len(bounds) == 0 || w <= 0 || h <= 0 {
		return 0, 0
	}
	minX, maxX := math.Inf(-1), math.Inf(1)
	minY, maxY := math.Inf(-1), math.Inf(1)
	for _, b := range bounds {
		minX = math.Max(minX, -b.X)
		maxX = math.Min(maxX, w-(b.X+b.W))
		minY = math.Max(minY, -b.Y)
		maxY = math.Min(maxY, h-(b.Y+b.H))
	}
	return clampAxis(dx, minX, maxX), clampAxis(dy, minY, maxY)
}

func clampAxis(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}

// Group tracks a live drag of a set of shapes: the pointer position last
// seen and the net delta applied so far.
type Group struct {
	Last  geom.Point
	Total geom.Point
}

// Start resets the group at pointer p.
func (g *Group) Start(p geom.Point) {
	g.Last = p
	g.Total = geom.Point{}
}

// Step computes the clamped delta for a pointer at p, records it and
// advances the anchor. bounds are the current bounds of the moving shapes.
func (g *Group) Step(p geom.Point, bounds []geom.Rect, w, h float64) (dx, dy float64) {
	dx, dy = Clamp(bounds, p.X-g.Last.X, p.Y-g.Last.Y, w, h)
	g.Total = g.Total.Add(dx, dy)
	g.Last = p
	return dx, dy
}

// MoveThreshold is the net delta either axis must exceed for a drag to be
// recorded as a move rather than a click.
const MoveThreshold = 0.1

// Moved reports whether the accumulated delta counts as a move.
func (g *Group) Moved() bool {
	return math.Abs(g.Total.X) > MoveThreshold || math.Abs(g.Total.Y) > MoveThreshold
}
