package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/vecdraw/internal/geom"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	dot := image.Rect(x-r, y-r, x-r+thick, y-r+thick).Intersect(img.Bounds())
	if dot.Empty() {
		return
	}
	draw.Draw(img, dot, image.NewUniform(col), image.Point{}, draw.Src)
}

// drawLine is a Bresenham walk stamping a thick x thick square per step.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// segments pairs consecutive points, closing the loop when asked.
func segments(pts []geom.Point, closed bool) [][2]geom.Point {
	if len(pts) < 2 {
		return nil
	}
	out := make([][2]geom.Point, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		out = append(out, [2]geom.Point{pts[i-1], pts[i]})
	}
	if closed && len(pts) > 2 {
		out = append(out, [2]geom.Point{pts[len(pts)-1], pts[0]})
	}
	return out
}

// dashSegments returns the visible pieces of the path under dash. The
// pattern carries on across corners and an odd pattern repeats to pair
// up. A nil or all-zero pattern is solid.
func dashSegments(pts []geom.Point, closed bool, dash []float64) [][2]geom.Point {
	segs := segments(pts, closed)
	total := 0.0
	for _, d := range dash {
		total += math.Max(d, 0)
	}
	if total <= 0 {
		return segs
	}
	if len(dash)%2 == 1 {
		dash = append(append([]float64(nil), dash...), dash...)
	}
	var out [][2]geom.Point
	idx := 0
	left := math.Max(dash[0], 0)
	for _, s := range segs {
		a, b := s[0], s[1]
		length := a.Dist(b)
		pos := 0.0
		for pos < length {
			step := math.Min(left, length-pos)
			if idx%2 == 0 && step > 0 {
				out = append(out, [2]geom.Point{lerp(a, b, pos/length), lerp(a, b, (pos+step)/length)})
			}
			pos += step
			left -= step
			if left <= 0 {
				idx = (idx + 1) % len(dash)
				left = math.Max(dash[idx], 0)
			}
		}
	}
	return out
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
