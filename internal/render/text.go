package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the point size of toolbar and status text.
const LabelSize = 13

var (
	labelFont = sync.OnceValues(func() (*truetype.Font, error) {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse label font: %w", err)
		}
		return f, nil
	})
	labelFaces sync.Map // map[float64]font.Face
)

// LabelFace returns a Go Regular face at size points. If the font cannot
// be loaded the fixed 7x13 face stands in.
func LabelFace(size float64) font.Face {
	if size <= 0 {
		size = LabelSize
	}
	if face, ok := labelFaces.Load(size); ok {
		return face.(font.Face)
	}
	f, err := labelFont()
	if err != nil {
		return basicfont.Face7x13
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	actual, _ := labelFaces.LoadOrStore(size, face)
	return actual.(font.Face)
}

// MeasureLabel returns the width and line height of text.
func MeasureLabel(text string, size float64) (width, height int) {
	face := LabelFace(size)
	m := face.Metrics()
	return font.MeasureString(face, text).Ceil(), m.Ascent.Ceil() + m.Descent.Ceil()
}

// DrawLabel draws text with its top-left corner at (x, y) and returns the
// advance in pixels.
func DrawLabel(dst *image.RGBA, x, y int, text string, col color.Color, size float64) int {
	face := LabelFace(size)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return d.Dot.X.Ceil() - x
}
