// Package shape defines the drawable variants of the editor and the
// painter interface they render through.
package shape

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/ids"
)

// Kind identifies a shape variant.
type Kind int

const (
	KindRectangle Kind = iota
	KindSquare
	KindCircle
	KindOval
	KindTriangle
	KindPolyline
	KindSquiggle
	KindImage
	KindOverlay
)

var kindNames = []string{"rectangle", "square", "circle", "oval", "triangle", "polyline", "squiggle", "image", "overlay"}

var kindPrefixes = []string{
	ids.PrefixRectangle, ids.PrefixSquare, ids.PrefixCircle, ids.PrefixOval, ids.PrefixTriangle,
	ids.PrefixPolyline, ids.PrefixSquiggle, ids.PrefixImage, ids.PrefixOverlay,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) prefix() string { return kindPrefixes[k] }

// ParseKind accepts a kind name case-insensitively. "rect" is accepted
// for rectangle.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "rect" {
		return KindRectangle, nil
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// FillMode selects between a solid interior and a stroked outline.
type FillMode int

const (
	Outline FillMode = iota
	Filled
)

func (f FillMode) String() string {
	if f == Filled {
		return "filled"
	}
	return "outline"
}

// ParseFillMode parses "filled" or "outline".
func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filled", "fill", "solid":
		return Filled, nil
	case "outline", "stroke", "":
		return Outline, nil
	}
	return Outline, fmt.Errorf("unknown fill mode %q", s)
}

// Style is the paint state shared by all shapes.
type Style struct {
	Color     color.RGBA
	LineWidth float64
	Fill      FillMode
}

// DefaultStyle is a 2 unit black outline.
func DefaultStyle() Style {
	return Style{Color: color.RGBA{0, 0, 0, 255}, LineWidth: 2, Fill: Outline}
}

// Stroke describes how a painter outlines a path.
type Stroke struct {
	Color color.Color
	Width float64
	// Dash alternates on and off lengths. Nil draws a solid line.
	Dash []float64
}

// Painter is the rendering backend shapes draw through.
type Painter interface {
	FillPolygon(pts []geom.Point, c color.Color)
	StrokePath(pts []geom.Point, closed bool, s Stroke)
	FillEllipse(center geom.Point, rx, ry float64, c color.Color)
	StrokeEllipse(center geom.Point, rx, ry float64, s Stroke)
	DrawImage(img image.Image, dst geom.Rect)
}

// Shape is a drawable held by a document.
type Shape interface {
	ID() string
	Kind() Kind
	Draw(p Painter)
	// Contains is the hit test used for selection.
	Contains(pt geom.Point) bool
	Bounds() geom.Rect
	// Clone returns an independent copy with a fresh ID.
	Clone() Shape
	Offset(dx, dy float64)
	// Degenerate reports a shape too small to be committed.
	Degenerate() bool
	Style() Style
	SetColor(c color.RGBA)
	SetLineWidth(w float64)
	SetFill(f FillMode)
}

// Spanner is implemented by shapes built by dragging from an anchor.
type Spanner interface {
	Shape
	Span(anchor, current geom.Point)
}

type base struct {
	id    string
	style Style
}

func newBase(k Kind, st Style) base {
	if st.LineWidth <= 0 {
		st.LineWidth = DefaultStyle().LineWidth
	}
	return base{id: ids.New(k.prefix()), style: st}
}

func (b *base) ID() string { return b.id }

func (b *base) Style() Style { return b.style }

func (b *base) SetColor(c color.RGBA) { b.style.Color = c }

func (b *base) SetLineWidth(w float64) {
	if w > 0 {
		b.style.LineWidth = w
	}
}

func (b *base) SetFill(f FillMode) { b.style.Fill = f }

func (b *base) stroke() Stroke {
	return Stroke{Color: b.style.Color, Width: b.style.LineWidth}
}

func (b base) cloneAs(k Kind) base {
	return base{id: ids.New(k.prefix()), style: b.style}
}

// Describe is a one line summary used by listings and the system clipboard.
func Describe(s Shape) string {
	b := s.Bounds()
	st := s.Style()
	return fmt.Sprintf("%s %s at (%.1f,%.1f) size %.1fx%.1f color #%02X%02X%02X width %g %s",
		s.ID(), s.Kind(), b.X, b.Y, b.W, b.H, st.Color.R, st.Color.G, st.Color.B, st.LineWidth, st.Fill)
}
