// Package document holds the editable drawable sequence together with the
// selection and the in-progress preview.
package document

import (
	"slices"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

// Document owns the drawables in paint order; later entries are on top.
// Every mutating call notifies subscribers exactly once after it
// completes. Calls made inside Batch are coalesced into one notification.
type Document struct {
	shapes    []shape.Shape
	selection []shape.Shape
	preview   shape.Shape

	subs   map[int]func()
	nextID int
	depth  int
	dirty  bool
}

// New returns an empty document.
func New() *Document {
	return &Document{subs: map[int]func(){}}
}

// Subscribe registers fn to run after each mutation. The returned func
// removes the subscription.
func (d *Document) Subscribe(fn func()) (cancel func()) {
	id := d.nextID
	d.nextID++
	d.subs[id] = fn
	return func() { delete(d.subs, id) }
}

func (d *Document) changed() {
	if d.depth > 0 {
		d.dirty = true
		return
	}
	ids := make([]int, 0, len(d.subs))
	for id := range d.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := d.subs[id]; ok {
			fn()
		}
	}
}

// Batch runs fn and emits a single notification if fn mutated anything.
func (d *Document) Batch(fn func()) {
	d.depth++
	fn()
	d.depth--
	if d.depth == 0 && d.dirty {
		d.dirty = false
		d.changed()
	}
}

// Shapes returns the drawables in paint order.
func (d *Document) Shapes() []shape.Shape { return slices.Clone(d.shapes) }

// Len returns the number of drawables.
func (d *Document) Len() int { return len(d.shapes) }

// IndexOf returns the position of s or -1.
func (d *Document) IndexOf(s shape.Shape) int { return slices.Index(d.shapes, s) }

// Has reports whether s is in the drawable sequence.
func (d *Document) Has(s shape.Shape) bool { return d.IndexOf(s) >= 0 }

// Find returns the drawable with the given id.
func (d *Document) Find(id string) (shape.Shape, bool) {
	for _, s := range d.shapes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Add appends s on top. Overlays and shapes already present are ignored.
func (d *Document) Add(s shape.Shape) {
	d.Insert(len(d.shapes), s)
}

// Insert places s at index i, clamped to the sequence.
func (d *Document) Insert(i int, s shape.Shape) {
	if s == nil || shape.IsOverlay(s) || d.Has(s) {
		return
	}
	i = max(0, min(i, len(d.shapes)))
	d.shapes = slices.Insert(d.shapes, i, s)
	d.changed()
}

// Remove deletes s and returns its former index. Removing an absent
// shape is a no-op returning -1.
func (d *Document) Remove(s shape.Shape) int {
	i := d.IndexOf(s)
	if i < 0 {
		return -1
	}
	d.shapes = slices.Delete(d.shapes, i, i+1)
	d.changed()
	return i
}

// Offset moves each shape by (dx, dy) in place.
func (d *Document) Offset(shapes []shape.Shape, dx, dy float64) {
	if len(shapes) == 0 {
		return
	}
	for _, s := range shapes {
		s.Offset(dx, dy)
	}
	d.changed()
}

// HitTest returns the topmost drawable containing p.
func (d *Document) HitTest(p geom.Point) (shape.Shape, bool) {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i].Contains(p) {
			return d.shapes[i], true
		}
	}
	return nil, false
}

// Overlapping returns every drawable whose bounds overlap r, in paint
// order.
func (d *Document) Overlapping(r geom.Rect) []shape.Shape {
	var out []shape.Shape
	for _, s := range d.shapes {
		if s.Bounds().Intersects(r) {
			out = append(out, s)
		}
	}
	return out
}

// Preview returns the in-progress drawable, if any.
func (d *Document) Preview() shape.Shape { return d.preview }

// SetPreview replaces the in-progress drawable. Nil clears it.
func (d *Document) SetPreview(s shape.Shape) {
	if d.preview == nil && s == nil {
		return
	}
	d.preview = s
	d.changed()
}
