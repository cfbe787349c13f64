package document

import (
	"slices"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

// Selection returns the selected drawables still present in the document,
// pruning the rest.
func (d *Document) Selection() []shape.Shape {
	d.prune()
	return slices.Clone(d.selection)
}

func (d *Document) prune() {
	d.selection = slices.DeleteFunc(d.selection, func(s shape.Shape) bool { return !d.Has(s) })
}

// IsSelected reports whether s is part of the selection.
func (d *Document) IsSelected(s shape.Shape) bool {
	return d.Has(s) && slices.Contains(d.selection, s)
}

// SelectAt replaces the selection with the topmost drawable at p, or
// clears it when nothing is hit.
func (d *Document) SelectAt(p geom.Point) (shape.Shape, bool) {
	s, ok := d.HitTest(p)
	if ok {
		d.selection = []shape.Shape{s}
	} else {
		d.selection = nil
	}
	d.changed()
	return s, ok
}

// Select replaces the selection with the given shapes.
func (d *Document) Select(shapes ...shape.Shape) { d.SelectMany(shapes) }

// SelectMany replaces the selection wholesale. Shapes not in the document
// are dropped.
func (d *Document) SelectMany(shapes []shape.Shape) {
	sel := make([]shape.Shape, 0, len(shapes))
	for _, s := range shapes {
		if d.Has(s) && !slices.Contains(sel, s) {
			sel = append(sel, s)
		}
	}
	d.selection = sel
	d.changed()
}

// SelectAll selects every drawable.
func (d *Document) SelectAll() { d.SelectMany(d.shapes) }

// ClearSelection empties the selection.
func (d *Document) ClearSelection() {
	if len(d.selection) == 0 {
		return
	}
	d.selection = nil
	d.changed()
}

// SelectionBounds returns the union of the selected shapes' bounds.
func (d *Document) SelectionBounds() (geom.Rect, bool) {
	sel := d.Selection()
	if len(sel) == 0 {
		return geom.Rect{}, false
	}
	r := sel[0].Bounds()
	for _, s := range sel[1:] {
		r = r.Union(s.Bounds())
	}
	return r, true
}

// SelectedAt returns the first selected shape whose bounds contain p.
func (d *Document) SelectedAt(p geom.Point) (shape.Shape, bool) {
	for _, s := range d.Selection() {
		if s.Bounds().Contains(p) {
			return s, true
		}
	}
	return nil, false
}

// Restyle applies fn to every selected drawable.
func (d *Document) Restyle(fn func(shape.Shape)) {
	sel := d.Selection()
	if len(sel) == 0 {
		return
	}
	for _, s := range sel {
		fn(s)
	}
	d.changed()
}
