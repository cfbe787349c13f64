package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shadow is a blurred drop shadow painted beneath imported images.
type Shadow struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadow is a soft shadow sized for images of a few hundred pixels.
func DefaultShadow() Shadow {
	return Shadow{Radius: 6, Offset: image.Pt(4, 4), Opacity: 0.35}
}

// Apply composites img over its blurred shadow. The result has a zero
// origin; shift is where img's top-left landed inside it. A shadow with no
// opacity returns img unchanged.
func (s Shadow) Apply(img *image.RGBA) (out *image.RGBA, shift image.Point) {
	if img == nil || img.Bounds().Empty() || s.Opacity <= 0 {
		return img, image.Point{}
	}
	opacity := min(s.Opacity, 1)
	radius := max(s.Radius, 0)

	src := img.Bounds()
	padded := src.Inset(-radius)
	shadowAt := padded.Add(s.Offset)
	whole := src.Union(shadowAt)

	mask := image.NewGray(padded.Sub(padded.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0 {
				mask.SetGray(x-padded.Min.X, y-padded.Min.Y, color.Gray{Y: a})
			}
		}
	}
	blurred := boxBlur(mask, radius)

	out = image.NewRGBA(whole.Sub(whole.Min))
	tint := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(out, blurred.Bounds().Add(shadowAt.Min.Sub(whole.Min)), tint, image.Point{}, blurred, image.Point{}, draw.Over)
	shift = src.Min.Sub(whole.Min)
	draw.Draw(out, src.Sub(whole.Min), img, src.Min, draw.Over)
	return out, shift
}

// boxBlur runs a horizontal then a vertical running-sum box filter.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := b.Dx(), b.Dy()
	tmp := image.NewGray(b)
	line := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			line[x+1] = line[x] + int(src.Pix[y*src.Stride+x])
		}
		for x := 0; x < w; x++ {
			lo, hi := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((line[hi+1] - line[lo]) / (hi - lo + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			line[y+1] = line[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			lo, hi := max(y-radius, 0), min(y+radius, h-1)
			out.Pix[y*out.Stride+x] = uint8((line[hi+1] - line[lo]) / (hi - lo + 1))
		}
	}
	return out
}
