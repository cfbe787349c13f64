package command

import (
	"slices"
	"testing"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/history"
	"github.com/example/vecdraw/internal/shape"
)

func rect(x, y float64) shape.Shape {
	return shape.NewRectangle(geom.Pt(x, y), geom.Pt(x+10, y+10), shape.DefaultStyle())
}

// snapshot captures membership, order and position of every drawable.
type entry struct {
	s shape.Shape
	b geom.Rect
}

func snapshot(d *document.Document) []entry {
	var out []entry
	for _, s := range d.Shapes() {
		out = append(out, entry{s, s.Bounds()})
	}
	return out
}

func TestAddUndoRestoresEmpty(t *testing.T) {
	d := document.New()
	h := history.New()
	for i := 0; i < 5; i++ {
		h.Execute(NewAdd(d, rect(float64(i*10), 0)))
	}
	if d.Len() != 5 {
		t.Fatalf("len = %d", d.Len())
	}
	for i := 0; i < 5; i++ {
		h.Undo()
	}
	if d.Len() != 0 {
		t.Fatalf("after undo len = %d", d.Len())
	}
}

func TestExecuteUndoRedoRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mk   func(d *document.Document, clip *clipboard.Store, base []shape.Shape) history.Command
	}{
		{"add", func(d *document.Document, _ *clipboard.Store, _ []shape.Shape) history.Command {
			return NewAdd(d, rect(70, 70))
		}},
		{"delete", func(d *document.Document, _ *clipboard.Store, base []shape.Shape) history.Command {
			return NewDelete(d, base[0], base[2])
		}},
		{"move", func(d *document.Document, _ *clipboard.Store, base []shape.Shape) history.Command {
			return NewMove(d, base[1:], 5, -3)
		}},
		{"paste", func(d *document.Document, clip *clipboard.Store, base []shape.Shape) history.Command {
			clip.Copy(base[:2])
			return NewPaste(d, clip)
		}},
		{"cut", func(d *document.Document, clip *clipboard.Store, base []shape.Shape) history.Command {
			return NewCut(d, clip, base[1])
		}},
	}
	for _, tt := range tests {
		base := []shape.Shape{rect(0, 0), rect(20, 20), rect(40, 40)}
		d := document.New()
		for _, s := range base {
			d.Add(s)
		}
		clip := clipboard.NewStore()
		h := history.New()
		h.Execute(tt.mk(d, clip, base))
		after := snapshot(d)
		h.Undo()
		h.Redo()
		if got := snapshot(d); !slices.Equal(got, after) {
			t.Errorf("%s: redo state differs\n got  %v\n want %v", tt.name, got, after)
		}
	}
}

func TestDeleteUndoRestoresOrder(t *testing.T) {
	d := document.New()
	a, b, c, e := rect(0, 0), rect(1, 1), rect(2, 2), rect(3, 3)
	for _, s := range []shape.Shape{a, b, c, e} {
		d.Add(s)
	}
	cmd := NewDelete(d, e, b)
	cmd.Execute()
	if !slices.Equal(d.Shapes(), []shape.Shape{a, c}) {
		t.Fatalf("after delete %v", d.Shapes())
	}
	cmd.Undo()
	if !slices.Equal(d.Shapes(), []shape.Shape{a, b, c, e}) {
		t.Fatalf("after undo %v", d.Shapes())
	}
}

func TestCutUndoKeepsClipboard(t *testing.T) {
	d := document.New()
	s := rect(0, 0)
	d.Add(s)
	clip := clipboard.NewStore()
	h := history.New()
	h.Execute(NewCut(d, clip, s))
	if d.Len() != 0 || clip.Len() != 1 {
		t.Fatalf("cut: doc=%d clip=%d", d.Len(), clip.Len())
	}
	h.Undo()
	if !d.Has(s) {
		t.Fatal("undo did not restore the cut shape")
	}
	if clip.Len() != 1 {
		t.Fatal("undo reverted the clipboard")
	}
}

func TestPasteRedoReusesInstances(t *testing.T) {
	d := document.New()
	clip := clipboard.NewStore()
	clip.Copy([]shape.Shape{rect(0, 0)})
	h := history.New()
	p := NewPaste(d, clip)
	h.Execute(p)
	first := p.Inserted()
	h.Undo()
	if d.Len() != 0 {
		t.Fatal("undo left pasted shapes")
	}
	h.Redo()
	if !slices.Equal(d.Shapes(), first) {
		t.Fatal("redo pasted new instances")
	}
	if clip.Counter() != 1 {
		t.Fatalf("redo advanced the paste counter to %d", clip.Counter())
	}
	if got := first[0].Bounds(); got.X != 20 || got.Y != 20 {
		t.Fatalf("paste offset = (%v,%v)", got.X, got.Y)
	}
}

func TestMoveUndo(t *testing.T) {
	d := document.New()
	s := rect(10, 10)
	d.Add(s)
	m := NewMove(d, []shape.Shape{s}, 7, 3)
	m.Execute()
	if b := s.Bounds(); b.X != 17 || b.Y != 13 {
		t.Fatalf("moved to %+v", b)
	}
	m.Undo()
	if b := s.Bounds(); b.X != 10 || b.Y != 10 {
		t.Fatalf("undo to %+v", b)
	}
}

func TestCopyUndoIsNoop(t *testing.T) {
	clip := clipboard.NewStore()
	c := NewCopy(clip, rect(0, 0))
	c.Execute()
	c.Undo()
	if clip.Len() != 1 {
		t.Fatal("copy undo changed the clipboard")
	}
}

func TestNames(t *testing.T) {
	d := document.New()
	if got := NewAdd(d, rect(0, 0)).Name(); got != "add 1 shape" {
		t.Errorf("name = %q", got)
	}
	if got := NewDelete(d, rect(0, 0), rect(1, 1)).Name(); got != "delete 2 shapes" {
		t.Errorf("name = %q", got)
	}
}
