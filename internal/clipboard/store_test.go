package clipboard

import (
	"strings"
	"testing"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

func TestCascadingPaste(t *testing.T) {
	src := shape.NewRectangle(geom.Pt(10, 10), geom.Pt(20, 20), shape.DefaultStyle())
	s := NewStore()
	s.Copy([]shape.Shape{src})

	first := s.Paste()
	second := s.Paste()
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("paste sizes %d, %d", len(first), len(second))
	}
	if got := first[0].Bounds(); got.X != 30 || got.Y != 30 {
		t.Errorf("first paste at (%v,%v), want (30,30)", got.X, got.Y)
	}
	if got := second[0].Bounds(); got.X != 50 || got.Y != 50 {
		t.Errorf("second paste at (%v,%v), want (50,50)", got.X, got.Y)
	}
	if first[0] == second[0] || first[0].ID() == second[0].ID() {
		t.Error("pastes must produce distinct instances")
	}
	if s.Counter() != 2 {
		t.Errorf("counter = %d", s.Counter())
	}

	s.Copy([]shape.Shape{src})
	if s.Counter() != 0 {
		t.Errorf("copy did not reset the counter")
	}
}

func TestCopyIsolatedFromSource(t *testing.T) {
	src := shape.NewRectangle(geom.Pt(0, 0), geom.Pt(10, 10), shape.DefaultStyle())
	s := NewStore()
	s.Copy([]shape.Shape{src})
	src.Offset(100, 100)
	if got := s.Paste()[0].Bounds(); got.X != 20 {
		t.Fatalf("clipboard followed the source: %+v", got)
	}
}

func TestPasteEmpty(t *testing.T) {
	s := NewStore()
	if got := s.Paste(); got != nil {
		t.Fatalf("paste from empty store = %v", got)
	}
	if s.Counter() != 0 || !s.Empty() {
		t.Fatal("empty paste changed state")
	}
}

func TestSummary(t *testing.T) {
	a := shape.NewCircle(geom.Pt(5, 5), 5, shape.DefaultStyle())
	out := Summary([]shape.Shape{a})
	if !strings.Contains(out, a.ID()) || !strings.Contains(out, "circle") {
		t.Fatalf("summary = %q", out)
	}
}
