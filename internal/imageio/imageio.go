// Package imageio decodes raster files for import and sizes them onto the
// canvas.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/example/vecdraw/internal/geom"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxSide is the largest width or height an imported image is placed at.
const MaxSide = 300

// ErrUnsupported reports data no registered decoder recognises.
var ErrUnsupported = errors.New("unsupported image format")

// Decode reads one image and names its format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, "", ErrUnsupported
	}
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Load decodes the image stored at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Fit scales w x h down so neither side exceeds MaxSide, keeping the aspect
// ratio. Smaller sizes are returned unchanged.
func Fit(w, h float64) (float64, float64) {
	if w <= MaxSide && h <= MaxSide {
		return w, h
	}
	scale := math.Min(MaxSide/w, MaxSide/h)
	return w * scale, h * scale
}

// Place returns the box an image of w x h occupies once fitted and centred
// on a canvas of canvasW x canvasH.
func Place(w, h, canvasW, canvasH float64) geom.Rect {
	fw, fh := Fit(w, h)
	return geom.Rect{X: (canvasW - fw) / 2, Y: (canvasH - fh) / 2, W: fw, H: fh}
}

// Scale resamples img to w x h pixels. A non-positive size yields nil.
func Scale(img image.Image, w, h int) *image.RGBA {
	if img == nil || w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
