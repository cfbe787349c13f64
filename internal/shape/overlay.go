package shape

import (
	"image/color"

	"github.com/example/vecdraw/internal/geom"
	"golang.org/x/image/colornames"
)

// OverlayMode selects what an Overlay paints.
type OverlayMode int

const (
	// OverlayBand is the rubber band drawn while box selecting.
	OverlayBand OverlayMode = iota
	// OverlayMarkers shows placed vertices of a shape under construction.
	OverlayMarkers
)

const markerRadius = 3

var bandDash = []float64{5, 5}

// Overlay is transient feedback painted above the document. Documents
// never hold overlays in their drawable sequence.
type Overlay struct {
	base
	Mode   OverlayMode
	Box    geom.Rect
	Points []geom.Point
}

// NewBand returns a rubber band spanning a and b.
func NewBand(a, b geom.Point) *Overlay {
	return &Overlay{
		base: newBase(KindOverlay, Style{Color: colornames.Dodgerblue, LineWidth: 1}),
		Mode: OverlayBand,
		Box:  geom.RectFromPoints(a, b),
	}
}

// NewMarkers returns vertex markers for pts painted in c.
func NewMarkers(c color.RGBA, pts ...geom.Point) *Overlay {
	return &Overlay{
		base:   newBase(KindOverlay, Style{Color: c, LineWidth: 1}),
		Mode:   OverlayMarkers,
		Points: append([]geom.Point(nil), pts...),
	}
}

func (o *Overlay) Kind() Kind { return KindOverlay }

// bandFill is DodgerBlue at 10% opacity.
func bandFill() color.Color {
	c := colornames.Dodgerblue
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 26}
}

func (o *Overlay) Draw(p Painter) {
	switch o.Mode {
	case OverlayBand:
		pts := o.Box.Corners()
		p.FillPolygon(pts, bandFill())
		p.StrokePath(pts, true, Stroke{Color: o.style.Color, Width: 1, Dash: bandDash})
	case OverlayMarkers:
		for _, pt := range o.Points {
			p.FillEllipse(pt, markerRadius, markerRadius, o.style.Color)
		}
		if len(o.Points) >= 2 {
			p.StrokePath(o.Points, false, Stroke{Color: o.style.Color, Width: 1, Dash: bandDash})
		}
	}
}

func (o *Overlay) Contains(geom.Point) bool { return false }

func (o *Overlay) Bounds() geom.Rect {
	if o.Mode == OverlayBand {
		return o.Box
	}
	return geom.Bounds(o.Points)
}

func (o *Overlay) Clone() Shape {
	return &Overlay{base: o.cloneAs(KindOverlay), Mode: o.Mode, Box: o.Box, Points: append([]geom.Point(nil), o.Points...)}
}

func (o *Overlay) Offset(dx, dy float64) {
	o.Box = o.Box.Offset(dx, dy)
	offsetPoints(o.Points, dx, dy)
}

// Degenerate is always true so an overlay is never committed.
func (o *Overlay) Degenerate() bool { return true }

func (o *Overlay) SetColor(color.RGBA) {}

func (o *Overlay) SetLineWidth(float64) {}

func (o *Overlay) SetFill(FillMode) {}

// IsOverlay reports whether s is transient feedback.
func IsOverlay(s Shape) bool {
	_, ok := s.(*Overlay)
	return ok
}
