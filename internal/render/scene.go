package render

import (
	"image"
	"image/color"

	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
	"golang.org/x/image/colornames"
)

// Selection decoration geometry.
const (
	SelectionPad   = 5
	HandleSize     = 6
	selectionWidth = 2
)

var selectionDash = []float64{8, 8}

// Scene controls what Paint draws besides the drawables.
type Scene struct {
	// Background fills the canvas first when set.
	Background color.Color
	// Selection colors the selection outline and handles.
	Selection color.Color
	// HideSelection skips the selection decoration, as for export.
	HideSelection bool
	// HidePreview skips the in-progress shape and overlays.
	HidePreview bool
}

// EditorScene is what the editor window shows.
func EditorScene() Scene {
	return Scene{Background: color.White, Selection: colornames.Dodgerblue}
}

// ExportScene draws the drawables only, over bg.
func ExportScene(bg color.Color) Scene {
	return Scene{Background: bg, HideSelection: true, HidePreview: true}
}

// Paint draws doc onto p: background, drawables in order, the preview and
// then the selection decoration. w and h size the background.
func (sc Scene) Paint(p shape.Painter, doc *document.Document, w, h float64) {
	if sc.Background != nil && w > 0 && h > 0 {
		p.FillPolygon(geom.Rect{W: w, H: h}.Corners(), sc.Background)
	}
	for _, s := range doc.Shapes() {
		s.Draw(p)
	}
	if !sc.HidePreview {
		if pv := doc.Preview(); pv != nil {
			pv.Draw(p)
		}
	}
	if sc.HideSelection {
		return
	}
	c := sc.Selection
	if c == nil {
		c = colornames.Dodgerblue
	}
	for _, s := range doc.Selection() {
		Decorate(p, s.Bounds(), c)
	}
}

// Decorate outlines b, padded by SelectionPad, with a dashed line and
// square handles on its corners.
func Decorate(p shape.Painter, b geom.Rect, c color.Color) {
	outline := b.Inset(-SelectionPad)
	p.StrokePath(outline.Corners(), true, shape.Stroke{Color: c, Width: selectionWidth, Dash: selectionDash})
	for _, corner := range outline.Corners() {
		h := geom.Rect{X: corner.X - HandleSize/2, Y: corner.Y - HandleSize/2, W: HandleSize, H: HandleSize}
		p.FillPolygon(h.Corners(), c)
	}
}

// Image renders doc into a new w x h RGBA image.
func Image(doc *document.Document, w, h int, sc Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sc.Paint(NewRaster(img), doc, float64(w), float64(h))
	return img
}
