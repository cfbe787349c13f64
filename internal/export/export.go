// Package export writes documents to image and document files and to the
// desktop clipboard. Exports never include the selection decoration or
// shapes still under construction.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/render"
)

// ErrUnknownFormat is returned for file names without a supported
// extension.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatPDF
)

func (f Format) String() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "png"
}

// Ext is the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat accepts "png" or "pdf" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

// Page is the area exported: the canvas extents and its background.
type Page struct {
	Width, Height float64
	Background    color.Color
}

func (p Page) scene() render.Scene {
	bg := p.Background
	if bg == nil {
		bg = color.White
	}
	return render.ExportScene(bg)
}

func (p Page) pixels() (int, int, error) {
	w, h := int(p.Width+0.5), int(p.Height+0.5)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("export: empty page %gx%g", p.Width, p.Height)
	}
	return w, h, nil
}

// Write encodes doc in format f.
func Write(w io.Writer, f Format, doc *document.Document, page Page) error {
	switch f {
	case FormatPNG:
		return PNG(w, doc, page)
	case FormatPDF:
		return PDF(w, doc, page)
	}
	return ErrUnknownFormat
}

// File writes doc to path in the format its extension names.
func File(path string, doc *document.Document, page Page) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := Write(out, f, doc, page); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	return nil
}

// ToClipboard renders doc and places the image on the desktop clipboard.
func ToClipboard(doc *document.Document, page Page) error {
	w, h, err := page.pixels()
	if err != nil {
		return err
	}
	img := render.Image(doc, w, h, page.scene())
	if err := clipboard.WriteImage(img); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}
