package history

import (
	"reflect"
	"testing"
)

type counter struct {
	n    *int
	name string
}

func (c counter) Execute()     { *c.n++ }
func (c counter) Undo()        { *c.n-- }
func (c counter) Name() string { return c.name }

func TestUndoRedo(t *testing.T) {
	var n int
	h := New()
	h.Execute(counter{&n, "a"})
	h.Execute(counter{&n, "b"})
	if n != 2 || h.Len() != 2 {
		t.Fatalf("n=%d len=%d", n, h.Len())
	}
	if !h.Undo() || n != 1 {
		t.Fatalf("undo: n=%d", n)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available")
	}
	if !h.Redo() || n != 2 {
		t.Fatalf("redo: n=%d", n)
	}
	if !reflect.DeepEqual(h.Names(), []string{"a", "b"}) {
		t.Fatalf("names = %v", h.Names())
	}
}

func TestEmptyStacksAreNoops(t *testing.T) {
	h := New()
	if h.Undo() || h.Redo() {
		t.Fatal("empty history reported work")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("empty history claims undo or redo")
	}
}

func TestExecuteClearsRedo(t *testing.T) {
	var n int
	h := New()
	h.Execute(counter{&n, "a"})
	h.Undo()
	h.Execute(counter{&n, "b"})
	if h.CanRedo() {
		t.Fatal("redo stack survived execute")
	}
	if h.Redo() {
		t.Fatal("redo after execute should be a no-op")
	}
	if n != 1 {
		t.Fatalf("n = %d", n)
	}
}

func TestOnExecute(t *testing.T) {
	var n int
	var got []string
	h := New()
	h.OnExecute = func(action string, cmd Command) { got = append(got, action+" "+cmd.Name()) }
	h.Execute(counter{&n, "a"})
	h.Undo()
	h.Redo()
	want := []string{"execute a", "undo a", "redo a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
