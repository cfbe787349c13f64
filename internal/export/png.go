package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
	"github.com/fogleman/gg"
)

// PNG draws doc with antialiased vector strokes and encodes it as PNG.
func PNG(w io.Writer, doc *document.Document, page Page) error {
	pw, ph, err := page.pixels()
	if err != nil {
		return err
	}
	dc := gg.NewContext(pw, ph)
	page.scene().Paint(&ggPainter{dc: dc}, doc, page.Width, page.Height)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ggPainter adapts a gg context to shape.Painter.
type ggPainter struct {
	dc *gg.Context
}

var _ shape.Painter = (*ggPainter)(nil)

func (p *ggPainter) path(pts []geom.Point, closed bool) {
	p.dc.NewSubPath()
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.dc.ClosePath()
	}
}

func (p *ggPainter) stroke(s shape.Stroke) {
	p.dc.SetColor(s.Color)
	p.dc.SetLineWidth(s.Width)
	p.dc.SetDash(s.Dash...)
	p.dc.Stroke()
	p.dc.SetDash()
}

func (p *ggPainter) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	p.path(pts, true)
	p.dc.SetColor(c)
	p.dc.Fill()
}

func (p *ggPainter) StrokePath(pts []geom.Point, closed bool, s shape.Stroke) {
	if len(pts) < 2 {
		return
	}
	p.path(pts, closed)
	p.stroke(s)
}

func (p *ggPainter) FillEllipse(c geom.Point, rx, ry float64, col color.Color) {
	p.dc.DrawEllipse(c.X, c.Y, rx, ry)
	p.dc.SetColor(col)
	p.dc.Fill()
}

func (p *ggPainter) StrokeEllipse(c geom.Point, rx, ry float64, s shape.Stroke) {
	p.dc.DrawEllipse(c.X, c.Y, rx, ry)
	p.stroke(s)
}

func (p *ggPainter) DrawImage(img image.Image, dst geom.Rect) {
	b := img.Bounds()
	if b.Empty() || dst.Empty() {
		return
	}
	p.dc.Push()
	p.dc.Translate(dst.X, dst.Y)
	p.dc.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	p.dc.DrawImage(img, 0, 0)
	p.dc.Pop()
}
