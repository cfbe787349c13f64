// Package command provides the reversible document mutations recorded by
// history.
package command

import (
	"fmt"
	"slices"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/shape"
)

func plural(verb string, n int) string {
	if n == 1 {
		return verb + " 1 shape"
	}
	return fmt.Sprintf("%s %d shapes", verb, n)
}

// Add appends shapes to the document.
type Add struct {
	doc    *document.Document
	shapes []shape.Shape
}

// NewAdd records the addition of shapes on top of doc.
func NewAdd(doc *document.Document, shapes ...shape.Shape) *Add {
	return &Add{doc: doc, shapes: slices.Clone(shapes)}
}

func (c *Add) Execute() {
	c.doc.Batch(func() {
		for _, s := range c.shapes {
			c.doc.Add(s)
		}
	})
}

func (c *Add) Undo() {
	c.doc.Batch(func() {
		for _, s := range c.shapes {
			c.doc.Remove(s)
		}
	})
}

func (c *Add) Name() string { return plural("add", len(c.shapes)) }

// Shapes returns the shapes the command adds.
func (c *Add) Shapes() []shape.Shape { return slices.Clone(c.shapes) }

// Delete removes shapes and puts them back at their former positions on
// undo.
type Delete struct {
	doc     *document.Document
	shapes  []shape.Shape
	indices []int
}

// NewDelete records the removal of shapes from doc.
func NewDelete(doc *document.Document, shapes ...shape.Shape) *Delete {
	return &Delete{doc: doc, shapes: slices.Clone(shapes)}
}

func (c *Delete) Execute() {
	c.indices = make([]int, len(c.shapes))
	c.doc.Batch(func() {
		// Record indices against the full sequence so undo can rebuild it.
		for i, s := range c.shapes {
			c.indices[i] = c.doc.IndexOf(s)
		}
		for _, s := range c.shapes {
			c.doc.Remove(s)
		}
	})
}

func (c *Delete) Undo() {
	order := make([]int, len(c.shapes))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return c.indices[a] - c.indices[b] })
	c.doc.Batch(func() {
		for _, i := range order {
			if c.indices[i] < 0 {
				continue
			}
			c.doc.Insert(c.indices[i], c.shapes[i])
		}
	})
}

func (c *Delete) Name() string { return plural("delete", len(c.shapes)) }

// Cut copies shapes to the clipboard then deletes them. Undo restores the
// shapes only; the clipboard keeps what was cut.
type Cut struct {
	del  *Delete
	clip *clipboard.Store
}

// NewCut records cutting shapes from doc into clip.
func NewCut(doc *document.Document, clip *clipboard.Store, shapes ...shape.Shape) *Cut {
	return &Cut{del: NewDelete(doc, shapes...), clip: clip}
}

func (c *Cut) Execute() {
	c.clip.Copy(c.del.shapes)
	c.del.Execute()
}

func (c *Cut) Undo() { c.del.Undo() }

func (c *Cut) Name() string { return plural("cut", len(c.del.shapes)) }

// Paste inserts clones from the clipboard. The clones are taken on the
// first Execute; redo re-inserts the same instances.
type Paste struct {
	doc      *document.Document
	clip     *clipboard.Store
	inserted []shape.Shape
	taken    bool
}

// NewPaste records a paste from clip into doc.
func NewPaste(doc *document.Document, clip *clipboard.Store) *Paste {
	return &Paste{doc: doc, clip: clip}
}

func (c *Paste) Execute() {
	if !c.taken {
		c.inserted = c.clip.Paste()
		c.taken = true
	}
	c.doc.Batch(func() {
		for _, s := range c.inserted {
			c.doc.Add(s)
		}
	})
}

func (c *Paste) Undo() {
	c.doc.Batch(func() {
		for _, s := range c.inserted {
			c.doc.Remove(s)
		}
	})
}

func (c *Paste) Name() string { return plural("paste", len(c.inserted)) }

// Inserted returns the clones placed by the paste.
func (c *Paste) Inserted() []shape.Shape { return slices.Clone(c.inserted) }

// Move offsets shapes by a net delta.
type Move struct {
	doc    *document.Document
	shapes []shape.Shape
	dx, dy float64
}

// NewMove records moving shapes by (dx, dy).
func NewMove(doc *document.Document, shapes []shape.Shape, dx, dy float64) *Move {
	return &Move{doc: doc, shapes: slices.Clone(shapes), dx: dx, dy: dy}
}

func (c *Move) Execute() { c.doc.Offset(c.shapes, c.dx, c.dy) }

func (c *Move) Undo() { c.doc.Offset(c.shapes, -c.dx, -c.dy) }

func (c *Move) Name() string {
	return fmt.Sprintf("%s by (%.1f,%.1f)", plural("move", len(c.shapes)), c.dx, c.dy)
}

// Delta returns the net offset.
func (c *Move) Delta() (dx, dy float64) { return c.dx, c.dy }

// Copy places clones of shapes on the clipboard. It has nothing to undo.
type Copy struct {
	clip   *clipboard.Store
	shapes []shape.Shape
}

// NewCopy records copying shapes into clip.
func NewCopy(clip *clipboard.Store, shapes ...shape.Shape) *Copy {
	return &Copy{clip: clip, shapes: slices.Clone(shapes)}
}

func (c *Copy) Execute() { c.clip.Copy(c.shapes) }

func (c *Copy) Undo() {}

func (c *Copy) Name() string { return plural("copy", len(c.shapes)) }
