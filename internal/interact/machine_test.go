package interact

import (
	"math"
	"testing"
	"time"

	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/history"
	"github.com/example/vecdraw/internal/shape"
	"golang.org/x/mobile/event/mouse"
)

type host struct {
	doc  *document.Document
	hist *history.History
	w, h float64
}

func newHost() *host {
	return &host{doc: document.New(), hist: history.New(), w: 200, h: 200}
}

func (h *host) Document() *document.Document { return h.doc }
func (h *host) History() *history.History    { return h.hist }
func (h *host) Canvas() (float64, float64)   { return h.w, h.h }
func (h *host) Style() shape.Style           { return shape.DefaultStyle() }

func (h *host) add(s shape.Shape) shape.Shape {
	h.doc.Add(s)
	return s
}

func rect(x, y, w, hgt float64) shape.Shape {
	return shape.NewRectangle(geom.Pt(x, y), geom.Pt(x+w, y+hgt), shape.DefaultStyle())
}

func gesture(m *Machine, pts ...Pointer) {
	m.Press(pts[0])
	for _, p := range pts[1 : len(pts)-1] {
		m.Drag(p)
	}
	m.Release(pts[len(pts)-1])
}

func TestCreateRectangleByDrag(t *testing.T) {
	h := newHost()
	m := New(ToolRectangle, h)
	gesture(m, At(10, 10), At(30, 20), At(50, 40), At(50, 40))
	if h.doc.Len() != 1 {
		t.Fatalf("shapes = %d", h.doc.Len())
	}
	s := h.doc.Shapes()[0]
	if b := s.Bounds(); b != (geom.Rect{X: 10, Y: 10, W: 40, H: 30}) {
		t.Fatalf("bounds = %+v", b)
	}
	if sel := h.doc.Selection(); len(sel) != 1 || sel[0] != s {
		t.Fatal("new shape not selected")
	}
	if h.hist.Len() != 1 || h.doc.Preview() != nil {
		t.Fatalf("history=%d preview=%v", h.hist.Len(), h.doc.Preview())
	}
	if m.State() != Idle {
		t.Fatalf("state = %s", m.State())
	}
}

func TestSubThresholdClickCreatesNothing(t *testing.T) {
	for _, tool := range []Tool{ToolRectangle, ToolSquare, ToolCircle, ToolOval} {
		h := newHost()
		m := New(tool, h)
		gesture(m, At(10, 10), At(12, 11), At(12, 11))
		if h.doc.Len() != 0 || h.hist.Len() != 0 {
			t.Errorf("%s: click left a shape behind", tool)
		}
	}
}

func TestDegenerateShapeRejected(t *testing.T) {
	h := newHost()
	m := New(ToolRectangle, h)
	// past the threshold horizontally, but released on the anchor row
	gesture(m, At(10, 10), At(20, 10), At(20, 10))
	if h.doc.Len() != 0 {
		t.Fatal("zero height rectangle committed")
	}
}

func TestPressOnSelectedStartsMove(t *testing.T) {
	h := newHost()
	s := h.add(rect(50, 50, 20, 20))
	h.doc.Select(s)
	m := New(ToolRectangle, h)
	m.Press(At(55, 55))
	if m.State() != Moving {
		t.Fatalf("state = %s", m.State())
	}
	m.Drag(At(60, 58))
	m.Drag(At(75, 65))
	if b := s.Bounds(); b.X != 70 || b.Y != 60 {
		t.Fatalf("live bounds = %+v", b)
	}
	m.Release(At(75, 65))
	if h.hist.Len() != 1 {
		t.Fatalf("history = %v", h.hist.Names())
	}
	if b := s.Bounds(); b.X != 70 || b.Y != 60 {
		t.Fatalf("committed bounds = %+v", b)
	}
	h.hist.Undo()
	if b := s.Bounds(); b.X != 50 || b.Y != 50 {
		t.Fatalf("undo bounds = %+v", b)
	}
	h.hist.Redo()
	if b := s.Bounds(); b.X != 70 || b.Y != 60 {
		t.Fatalf("redo bounds = %+v", b)
	}
}

func TestTinyMoveRecordsNothing(t *testing.T) {
	h := newHost()
	s := h.add(rect(50, 50, 20, 20))
	h.doc.Select(s)
	m := New(ToolSelect, h)
	gesture(m, At(55, 55), At(55.05, 55.05), At(55.05, 55.05))
	if h.hist.Len() != 0 {
		t.Fatalf("history = %v", h.hist.Names())
	}
}

func TestMoveClampedToCanvas(t *testing.T) {
	h := newHost()
	left := h.add(rect(0, 100, 20, 20))
	right := h.add(rect(180, 20, 20, 20))
	h.doc.SelectMany([]shape.Shape{left, right})
	m := New(ToolSelect, h)
	gesture(m, At(5, 105), At(40, 105), At(40, 105))
	if left.Bounds().X != 0 || right.Bounds().X != 180 {
		t.Fatalf("group moved past the edge: %+v %+v", left.Bounds(), right.Bounds())
	}
	if h.hist.Len() != 0 {
		t.Fatal("clamped-to-zero drag recorded a move")
	}
}

func TestPressOnUnselectedSelects(t *testing.T) {
	h := newHost()
	a := h.add(rect(10, 10, 20, 20))
	m := New(ToolCircle, h)
	m.Press(At(15, 15))
	if m.State() != Idle {
		t.Fatalf("state = %s", m.State())
	}
	if sel := h.doc.Selection(); len(sel) != 1 || sel[0] != a {
		t.Fatal("hit shape not selected")
	}
	m.Release(At(15, 15))
}

func TestPressClearingSelectionDoesNotCreate(t *testing.T) {
	h := newHost()
	a := h.add(rect(10, 10, 20, 20))
	h.doc.Select(a)
	m := New(ToolRectangle, h)
	gesture(m, At(100, 100), At(150, 150), At(150, 150))
	if h.doc.Len() != 1 {
		t.Fatal("press that cleared the selection also created a shape")
	}
	if len(h.doc.Selection()) != 0 {
		t.Fatal("selection not cleared")
	}
	gesture(m, At(100, 100), At(150, 150), At(150, 150))
	if h.doc.Len() != 2 {
		t.Fatal("next press did not create")
	}
}

func TestBoxSelectOverlap(t *testing.T) {
	h := newHost()
	inside := h.add(rect(20, 20, 10, 10))
	partial := h.add(rect(90, 90, 40, 40))
	outside := h.add(rect(150, 10, 10, 10))
	m := New(ToolSelect, h)
	m.Press(At(5, 5))
	if m.State() != BoxSelecting {
		t.Fatalf("state = %s", m.State())
	}
	m.Drag(At(50, 50))
	if _, ok := h.doc.Preview().(*shape.Overlay); !ok {
		t.Fatal("rubber band not shown")
	}
	m.Drag(At(100, 100))
	m.Release(At(100, 100))
	sel := h.doc.Selection()
	if len(sel) != 2 || sel[0] != inside || sel[1] != partial {
		t.Fatalf("selection = %v", sel)
	}
	for _, s := range sel {
		if s == outside {
			t.Fatal("outside shape selected")
		}
	}
	if h.doc.Preview() != nil || h.doc.Len() != 3 {
		t.Fatal("band leaked into the document")
	}
}

func TestCircleRadiusFromAnchor(t *testing.T) {
	h := newHost()
	m := New(ToolCircle, h)
	gesture(m, At(100, 100), At(103, 104), At(106, 108), At(106, 108))
	c, ok := h.doc.Shapes()[0].(*shape.Circle)
	if !ok || c.Center != geom.Pt(100, 100) || c.Radius != 10 {
		t.Fatalf("circle = %+v", h.doc.Shapes()[0])
	}
}

func TestSquiggleSamples(t *testing.T) {
	h := newHost()
	m := New(ToolSquiggle, h)
	gesture(m, At(10, 10), At(12, 14), At(20, 20), At(30, 22), At(30, 22))
	sq, ok := h.doc.Shapes()[0].(*shape.Squiggle)
	if !ok || len(sq.Points) != 4 {
		t.Fatalf("squiggle = %+v", h.doc.Shapes())
	}
	if len(h.doc.Selection()) != 0 {
		t.Fatal("squiggle should be added unselected")
	}
}

func TestSquiggleSinglePointDiscarded(t *testing.T) {
	h := newHost()
	m := New(ToolSquiggle, h)
	gesture(m, At(10, 10), At(10, 10))
	if h.doc.Len() != 0 || h.doc.Preview() != nil {
		t.Fatal("single sample squiggle committed")
	}
}

func TestTriangleThreeClicks(t *testing.T) {
	h := newHost()
	m := New(ToolTriangle, h)
	click := func(x, y float64) { m.Press(At(x, y)); m.Release(At(x, y)) }
	click(10, 10)
	click(60, 10)
	if _, ok := h.doc.Preview().(*shape.Overlay); !ok || h.doc.Len() != 0 {
		t.Fatal("expected vertex markers before the third click")
	}
	click(10, 60)
	if h.doc.Len() != 1 || h.hist.Len() != 1 {
		t.Fatalf("triangle not committed: %d shapes", h.doc.Len())
	}
	if _, ok := h.doc.Shapes()[0].(*shape.Triangle); !ok {
		t.Fatal("wrong kind")
	}
	if h.doc.Preview() != nil || m.Building() {
		t.Fatal("construction state left behind")
	}
}

func TestTriangleVertexInsideExistingShape(t *testing.T) {
	h := newHost()
	h.add(rect(0, 0, 100, 100))
	m := New(ToolTriangle, h)
	h.doc.ClearSelection()
	m.Press(At(150, 150))
	m.Release(At(150, 150))
	// later vertices land on the rectangle without selecting it
	m.Press(At(50, 50))
	m.Release(At(50, 50))
	if len(h.doc.Selection()) != 0 {
		t.Fatal("vertex click selected a shape")
	}
	m.Press(At(150, 50))
	m.Release(At(150, 50))
	if h.doc.Len() != 2 {
		t.Fatalf("shapes = %d", h.doc.Len())
	}
}

func TestPolylineDoubleClickFinishes(t *testing.T) {
	h := newHost()
	m := New(ToolPolyline, h)
	m.Press(At(10, 10))
	m.Release(At(10, 10))
	m.Hover(At(40, 40))
	pl, ok := h.doc.Preview().(*shape.Polyline)
	if !ok {
		t.Fatal("polyline preview missing")
	}
	if p, ok := pl.Preview(); !ok || p != geom.Pt(40, 40) {
		t.Fatal("hover did not update the dashed segment")
	}
	m.Exit()
	if _, ok := pl.Preview(); ok {
		t.Fatal("exit kept the dashed segment")
	}
	m.Press(At(50, 10))
	m.Release(At(50, 10))
	dbl := At(50, 60)
	m.Press(dbl)
	dbl.Clicks = 2
	m.Press(dbl)
	if h.doc.Len() != 1 {
		t.Fatalf("shapes = %d", h.doc.Len())
	}
	if got := h.doc.Shapes()[0].(*shape.Polyline).Len(); got != 4 {
		t.Fatalf("vertices = %d", got)
	}
	if len(h.doc.Selection()) != 0 {
		t.Fatal("polyline should not be selected")
	}
	if h.doc.Preview() != nil || m.Building() {
		t.Fatal("construction state left behind")
	}
}

func TestPolylineSecondaryClick(t *testing.T) {
	h := newHost()
	m := New(ToolPolyline, h)
	right := Pointer{Pos: geom.Pt(0, 0), Button: mouse.ButtonRight, Clicks: 1}

	m.Press(At(10, 10))
	m.Press(right)
	if h.doc.Len() != 0 || m.Building() || h.doc.Preview() != nil {
		t.Fatal("single vertex polyline should be cancelled")
	}

	m.Press(At(10, 10))
	m.Press(At(40, 40))
	m.Press(right)
	if h.doc.Len() != 1 {
		t.Fatal("secondary click did not finish the polyline")
	}
}

func TestCancelRevertsLiveMove(t *testing.T) {
	h := newHost()
	s := h.add(rect(50, 50, 20, 20))
	h.doc.Select(s)
	m := New(ToolSelect, h)
	m.Press(At(55, 55))
	m.Drag(At(65, 65))
	m.Cancel()
	if b := s.Bounds(); b.X != 50 || b.Y != 50 {
		t.Fatalf("bounds after cancel = %+v", b)
	}
	if m.State() != Idle || h.hist.Len() != 0 {
		t.Fatal("cancel recorded or kept state")
	}
}

func TestClickCounter(t *testing.T) {
	c := NewClickCounter()
	t0 := time.Unix(0, 0)
	if n := c.Press(geom.Pt(0, 0), mouse.ButtonLeft, t0); n != 1 {
		t.Fatalf("first = %d", n)
	}
	if n := c.Press(geom.Pt(1, 1), mouse.ButtonLeft, t0.Add(100*time.Millisecond)); n != 2 {
		t.Fatalf("second = %d", n)
	}
	if n := c.Press(geom.Pt(1, 1), mouse.ButtonLeft, t0.Add(time.Second)); n != 1 {
		t.Fatalf("late = %d", n)
	}
	if n := c.Press(geom.Pt(30, 30), mouse.ButtonLeft, t0.Add(1100*time.Millisecond)); n != 1 {
		t.Fatalf("far = %d", n)
	}
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool, got, err)
		}
	}
	if _, err := ParseTool("lasso"); err == nil {
		t.Error("expected error")
	}
}

func TestTinyMoveIsReverted(t *testing.T) {
	h := newHost()
	s := h.add(rect(50, 50, 20, 20))
	h.doc.Select(s)
	m := New(ToolSelect, h)
	gesture(m, At(55, 55), At(55.05, 55), At(55.05, 55))
	if b := s.Bounds(); math.Abs(b.X-50) > 1e-9 {
		t.Fatalf("sub-threshold drag left the shape at %+v", b)
	}
}
