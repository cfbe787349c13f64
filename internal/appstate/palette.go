package appstate

import (
	"image/color"
	"slices"
)

// PaletteColor is a named toolbar swatch.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var palette = []PaletteColor{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

var lineWidths = []float64{1, 2, 4, 6, 8}

// Palette returns a copy of the toolbar swatches.
func Palette() []PaletteColor { return slices.Clone(palette) }

// LineWidths returns a copy of the toolbar stroke widths.
func LineWidths() []float64 { return slices.Clone(lineWidths) }

// paletteIndex returns the swatch holding c, or -1.
func paletteIndex(c color.RGBA) int {
	return slices.IndexFunc(palette, func(p PaletteColor) bool { return p.Color == c })
}

func widthIndex(w float64) int { return slices.Index(lineWidths, w) }
