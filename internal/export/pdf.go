package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
	"github.com/jung-kurt/gofpdf"
)

// PDF writes doc as a single page document measured in points, one point
// per canvas unit.
func PDF(w io.Writer, doc *document.Document, page Page) error {
	if _, _, err := page.pixels(); err != nil {
		return err
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pp := &pdfPainter{pdf: pdf}
	page.scene().Paint(pp, doc, page.Width, page.Height)
	if pp.err != nil {
		return pp.err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// pdfPainter adapts gofpdf to shape.Painter. The first image encoding
// failure is kept in err.
type pdfPainter struct {
	pdf    *gofpdf.Fpdf
	images int
	err    error
}

var _ shape.Painter = (*pdfPainter)(nil)

// rgba splits c into 8-bit straight-alpha channels.
func rgba(c color.Color) (r, g, b int, a float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

func (p *pdfPainter) fillColor(c color.Color) {
	r, g, b, a := rgba(c)
	p.pdf.SetFillColor(r, g, b)
	p.pdf.SetAlpha(a, "Normal")
}

func (p *pdfPainter) strokeStyle(s shape.Stroke) {
	r, g, b, a := rgba(s.Color)
	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetAlpha(a, "Normal")
	p.pdf.SetLineWidth(s.Width)
	p.pdf.SetLineCapStyle("round")
	p.pdf.SetLineJoinStyle("round")
	if len(s.Dash) > 0 {
		p.pdf.SetDashPattern(s.Dash, 0)
	} else {
		p.pdf.SetDashPattern([]float64{}, 0)
	}
}

func points(pts []geom.Point) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(pts))
	for i, pt := range pts {
		out[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
	}
	return out
}

func (p *pdfPainter) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	p.fillColor(c)
	p.pdf.Polygon(points(pts), "F")
}

func (p *pdfPainter) StrokePath(pts []geom.Point, closed bool, s shape.Stroke) {
	if len(pts) < 2 {
		return
	}
	p.strokeStyle(s)
	if closed {
		p.pdf.Polygon(points(pts), "D")
		return
	}
	p.pdf.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.pdf.LineTo(pt.X, pt.Y)
	}
	p.pdf.DrawPath("D")
}

func (p *pdfPainter) FillEllipse(c geom.Point, rx, ry float64, col color.Color) {
	p.fillColor(col)
	p.pdf.Ellipse(c.X, c.Y, rx, ry, 0, "F")
}

func (p *pdfPainter) StrokeEllipse(c geom.Point, rx, ry float64, s shape.Stroke) {
	p.strokeStyle(s)
	p.pdf.Ellipse(c.X, c.Y, rx, ry, 0, "D")
}

func (p *pdfPainter) DrawImage(img image.Image, dst geom.Rect) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("encode pdf image: %w", err)
		}
		return
	}
	p.images++
	name := fmt.Sprintf("image%d", p.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.pdf.SetAlpha(1, "Normal")
	p.pdf.RegisterImageOptionsReader(name, opts, &buf)
	p.pdf.ImageOptions(name, dst.X, dst.Y, dst.W, dst.H, false, opts, 0, "")
}
