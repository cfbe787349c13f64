package appstate

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/session"
	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/theme"
	"golang.org/x/mobile/event/mouse"
)

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func newTestChrome(sess *session.Session, triggered *[]string) *chrome {
	return newChrome(theme.Default(), sess.SetTool, func(name string) {
		*triggered = append(*triggered, name)
	})
}

func TestChromeLayout(t *testing.T) {
	var names []string
	c := newTestChrome(session.New(), &names)

	if len(c.tools) != len(interact.Tools) {
		t.Fatalf("tools: got %d want %d", len(c.tools), len(interact.Tools))
	}
	if len(c.swatches) != len(palette) || len(c.widths) != len(lineWidths) || len(c.fills) != 2 {
		t.Fatalf("unexpected counts: %d swatches, %d widths, %d fills", len(c.swatches), len(c.widths), len(c.fills))
	}
	for i, b := range c.tools {
		if b.Rect().Max.X > toolbarWidth || b.Rect().Min.Y < headerHeight {
			t.Errorf("tool %d outside toolbar: %v", i, b.Rect())
		}
	}
	for i, r := range c.swatches {
		if r.Max.X > toolbarWidth {
			t.Errorf("swatch %d outside toolbar: %v", i, r)
		}
	}
	for i, s := range c.shortcuts {
		if s.Rect().Min.X < toolbarWidth || s.Rect().Max.Y > headerHeight {
			t.Errorf("shortcut %d outside header: %v", i, s.Rect())
		}
	}
	if c.minHeight() <= c.fills[1].Max.Y {
		t.Fatalf("minHeight %d leaves no room for the status line", c.minHeight())
	}
}

func TestHitTest(t *testing.T) {
	var names []string
	c := newTestChrome(session.New(), &names)
	const w, h = 1000, 700

	tests := []struct {
		name string
		p    image.Point
		want hit
	}{
		{"canvas", image.Pt(toolbarWidth+10, headerHeight+10), hit{areaCanvas, -1}},
		{"tool", center(c.tools[2].Rect()), hit{areaTool, 2}},
		{"swatch", center(c.swatches[3]), hit{areaSwatch, 3}},
		{"width", center(c.widths[1]), hit{areaWidth, 1}},
		{"fill", center(c.fills[1]), hit{areaFill, 1}},
		{"shortcut", center(c.shortcuts[0].Rect()), hit{areaShortcut, 0}},
		{"status", image.Pt(5, h-5), noHit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.hitTest(tc.p, w, h); got != tc.want {
				t.Fatalf("hitTest(%v) = %+v, want %+v", tc.p, got, tc.want)
			}
		})
	}
}

func TestActivate(t *testing.T) {
	sess := session.New()
	var names []string
	c := newTestChrome(sess, &names)
	a := New(sess)

	a.activate(c, hit{areaTool, int(interact.ToolCircle)})
	if sess.Tool() != interact.ToolCircle {
		t.Fatalf("tool: got %v want circle", sess.Tool())
	}
	a.activate(c, hit{areaSwatch, 2})
	if sess.Style().Color != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("color: got %v want red", sess.Style().Color)
	}
	a.activate(c, hit{areaWidth, 3})
	if sess.Style().LineWidth != 6 {
		t.Fatalf("width: got %v want 6", sess.Style().LineWidth)
	}
	a.activate(c, hit{areaFill, 1})
	if sess.Style().Fill != shape.Filled {
		t.Fatalf("fill: got %v want filled", sess.Style().Fill)
	}
	a.activate(c, hit{areaShortcut, 0})
	if len(names) != 1 || names[0] != "undo" {
		t.Fatalf("shortcut trigger: got %v", names)
	}
}

func TestComposeFrame(t *testing.T) {
	sess := session.New()
	sess.SetTool(interact.ToolRectangle)
	sess.Press(interact.At(10, 10))
	sess.Move(interact.At(60, 40).Pos)
	sess.Release(interact.At(60, 40))

	th := theme.Default()
	var names []string
	c := newChrome(th, sess.SetTool, func(name string) { names = append(names, name) })
	const w, h = 1000, 700
	st := paintState{
		width:  w,
		height: h,
		canvas: renderCanvas(sess, th),
		tool:   interact.ToolSelect,
		style:  sess.Style(),
		hover:  noHit,
		status: statusLine(sess, image.Point{}, false),
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if !composeFrame(context.Background(), dst, c, st) {
		t.Fatal("composeFrame reported cancellation")
	}

	checks := []struct {
		name string
		p    image.Point
		want color.RGBA
	}{
		{"canvas", image.Pt(toolbarWidth+700, headerHeight+500), th.Canvas},
		{"header", image.Pt(w-1, 1), th.ToolbarBackground},
		{"status", image.Pt(w-1, h-1), th.StatusBackground},
		{"active tool", c.tools[0].Rect().Max.Sub(image.Pt(1, 1)), th.ButtonActive},
		{"idle tool", c.tools[1].Rect().Max.Sub(image.Pt(1, 1)), th.ButtonBackground},
		{"selection handle", image.Pt(toolbarWidth+5, headerHeight+5), th.Selection},
	}
	for _, ck := range checks {
		if got := dst.RGBAAt(ck.p.X, ck.p.Y); got != ck.want {
			t.Errorf("%s pixel at %v: got %v want %v", ck.name, ck.p, got, ck.want)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if composeFrame(ctx, dst, c, st) {
		t.Fatal("expected cancelled frame")
	}
}

func TestRenderCanvasSize(t *testing.T) {
	sess := session.New(session.WithCanvas(200, 100))
	th := theme.Default()
	img := renderCanvas(sess, th)
	if img.Bounds() != image.Rect(0, 0, 200, 100) {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	if got := img.RGBAAt(100, 50); got != th.Canvas {
		t.Fatalf("background: got %v want %v", got, th.Canvas)
	}
}

func TestStatusLine(t *testing.T) {
	sess := session.New()
	line := statusLine(sess, image.Pt(12, 34), false)
	if !strings.Contains(line, "select") || !strings.Contains(line, "shapes: 0") {
		t.Fatalf("unexpected status %q", line)
	}
	if strings.Contains(line, "12,34") {
		t.Fatalf("pointer shown while outside: %q", line)
	}
	if line := statusLine(sess, image.Pt(12, 34), true); !strings.HasSuffix(line, "12,34") {
		t.Fatalf("pointer missing: %q", line)
	}
}

func TestDefaultOutput(t *testing.T) {
	if got, want := DefaultOutput("out", "0123456789ab"), filepath.Join("out", "drawing-01234567.png"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := New(session.New(), WithOutput("x.pdf")).Output; got != "x.pdf" {
		t.Fatalf("WithOutput ignored: %q", got)
	}
}

func TestToCanvas(t *testing.T) {
	e := toCanvas(mouse.Event{X: 110, Y: 54, Button: mouse.ButtonLeft}, image.Pt(100, 24))
	if e.X != 10 || e.Y != 30 || e.Button != mouse.ButtonLeft {
		t.Fatalf("got %+v", e)
	}
}

func TestPaletteLookup(t *testing.T) {
	if got := paletteIndex(color.RGBA{255, 0, 0, 255}); got != 2 {
		t.Fatalf("red index: got %d", got)
	}
	if got := paletteIndex(color.RGBA{1, 2, 3, 255}); got != -1 {
		t.Fatalf("unknown color index: got %d", got)
	}
	if got := widthIndex(4); got != 2 {
		t.Fatalf("width index: got %d", got)
	}
	if len(Palette()) != len(palette) {
		t.Fatal("Palette copy has wrong length")
	}
}
