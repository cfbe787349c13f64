// Package render paints documents onto raster images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// Raster is a shape.Painter over an RGBA image. Canvas coordinates are
// translated by Origin before touching pixels.
type Raster struct {
	Dst    *image.RGBA
	Origin image.Point
	// Shadow is drawn beneath image shapes when its opacity is positive.
	Shadow Shadow
}

// NewRaster paints onto dst with the canvas origin at dst's top-left.
func NewRaster(dst *image.RGBA) *Raster {
	return &Raster{Dst: dst, Origin: dst.Bounds().Min}
}

var _ shape.Painter = (*Raster)(nil)

// abs maps a canvas point to pixel coordinates in Dst.
func (r *Raster) abs(p geom.Point) (float64, float64) {
	return p.X + float64(r.Origin.X), p.Y + float64(r.Origin.Y)
}

// rel maps a canvas point into the rasterizer's space, which starts at
// Dst's top-left.
func (r *Raster) rel(p geom.Point) (float32, float32) {
	x, y := r.abs(p)
	b := r.Dst.Bounds()
	return float32(x - float64(b.Min.X)), float32(y - float64(b.Min.Y))
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.Dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (r *Raster) fill(z *vector.Rasterizer, c color.Color) {
	z.Draw(r.Dst, r.Dst.Bounds(), image.NewUniform(c), image.Point{})
}

// FillPolygon fills the closed polygon pts.
func (r *Raster) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	z := r.rasterizer()
	x, y := r.rel(pts[0])
	z.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = r.rel(p)
		z.LineTo(x, y)
	}
	z.ClosePath()
	r.fill(z, c)
}

// FillEllipse fills the ellipse with radii rx and ry around center.
func (r *Raster) FillEllipse(center geom.Point, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	z := r.rasterizer()
	cx, cy := r.rel(center)
	ax, ay := float32(rx), float32(ry)
	kx, ky := float32(rx*kappa), float32(ry*kappa)
	z.MoveTo(cx+ax, cy)
	z.CubeTo(cx+ax, cy+ky, cx+kx, cy+ay, cx, cy+ay)
	z.CubeTo(cx-kx, cy+ay, cx-ax, cy+ky, cx-ax, cy)
	z.CubeTo(cx-ax, cy-ky, cx-kx, cy-ay, cx, cy-ay)
	z.CubeTo(cx+kx, cy-ay, cx+ax, cy-ky, cx+ax, cy)
	z.ClosePath()
	r.fill(z, c)
}

// StrokePath outlines pts, joining the last point back to the first when
// closed.
func (r *Raster) StrokePath(pts []geom.Point, closed bool, s shape.Stroke) {
	if len(pts) < 2 {
		return
	}
	thick := int(math.Round(s.Width))
	if thick < 1 {
		thick = 1
	}
	for _, seg := range dashSegments(pts, closed, s.Dash) {
		x0, y0 := r.abs(seg[0])
		x1, y1 := r.abs(seg[1])
		drawLine(r.Dst, round(x0), round(y0), round(x1), round(y1), s.Color, thick)
	}
}

// StrokeEllipse outlines the ellipse as a closed polygon fine enough that
// no chord is longer than a couple of pixels.
func (r *Raster) StrokeEllipse(center geom.Point, rx, ry float64, s shape.Stroke) {
	if rx <= 0 || ry <= 0 {
		return
	}
	r.StrokePath(ellipsePoints(center, rx, ry), true, s)
}

// DrawImage scales img into dst.
func (r *Raster) DrawImage(img image.Image, dst geom.Rect) {
	x0, y0 := r.abs(dst.Min())
	rect := image.Rect(round(x0), round(y0), round(x0+dst.W), round(y0+dst.H))
	if rect.Empty() {
		return
	}
	if r.Shadow.Opacity <= 0 {
		xdraw.ApproxBiLinear.Scale(r.Dst, rect, img, img.Bounds(), draw.Over, nil)
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	shadowed, shift := r.Shadow.Apply(scaled)
	at := rect.Min.Sub(shift)
	draw.Draw(r.Dst, shadowed.Bounds().Add(at), shadowed, image.Point{}, draw.Over)
}

func round(v float64) int { return int(math.Round(v)) }

func ellipsePoints(c geom.Point, rx, ry float64) []geom.Point {
	steps := int(math.Ceil(math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 16 {
		steps = 16
	}
	pts := make([]geom.Point, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = geom.Pt(c.X+math.Cos(a)*rx, c.Y+math.Sin(a)*ry)
	}
	return pts
}
