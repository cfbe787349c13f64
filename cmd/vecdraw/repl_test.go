package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/session"
	"github.com/example/vecdraw/internal/shape"
)

func newTestInterpreter() (*interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	sess := session.New(session.WithSystemClipboard(false))
	return newInterpreter(sess, &out, color.White, nil), &out
}

func run(t *testing.T, in *interpreter, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := in.executeLine(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
}

func TestInterpreterDrawAndList(t *testing.T) {
	in, out := newTestInterpreter()
	run(t, in,
		"tool rectangle",
		"color red",
		"width 4",
		"press 10 10",
		"drag 60 40",
		"release 60 40",
		"list",
	)
	doc := in.sess.Document()
	if doc.Len() != 1 {
		t.Fatalf("expected one shape, got %d", doc.Len())
	}
	s := doc.Shapes()[0]
	if s.Kind() != shape.KindRectangle {
		t.Fatalf("kind: got %v", s.Kind())
	}
	if st := s.Style(); st.Color != (color.RGBA{255, 0, 0, 255}) || st.LineWidth != 4 {
		t.Fatalf("style: got %+v", st)
	}
	if !strings.Contains(out.String(), "* 0 "+s.ID()+" rectangle") {
		t.Fatalf("list output missing selected rectangle:\n%s", out.String())
	}
}

func TestInterpreterPolylineDoubleClick(t *testing.T) {
	in, _ := newTestInterpreter()
	run(t, in,
		"tool polyline",
		"click 10 10",
		"click 50 10",
		"dblclick 50 50",
	)
	doc := in.sess.Document()
	if doc.Len() != 1 || doc.Shapes()[0].Kind() != shape.KindPolyline {
		t.Fatalf("expected a committed polyline, got %d shapes", doc.Len())
	}
	if len(doc.Selection()) != 0 {
		t.Fatal("polyline should be committed unselected")
	}
}

func TestInterpreterUndoRedoHistory(t *testing.T) {
	in, out := newTestInterpreter()
	run(t, in, "undo")
	if !strings.Contains(out.String(), "nothing to undo") {
		t.Fatalf("expected nothing to undo, got %q", out.String())
	}
	out.Reset()
	run(t, in,
		"tool circle",
		"press 100 100",
		"drag 130 100",
		"release 130 100",
		"key ctrl+z",
		"history",
	)
	if in.sess.Document().Len() != 0 {
		t.Fatal("ctrl+z should undo the circle")
	}
	if !strings.Contains(out.String(), "history is empty") {
		t.Fatalf("history after undo: %q", out.String())
	}
	out.Reset()
	run(t, in, "redo", "history")
	if in.sess.Document().Len() != 1 {
		t.Fatal("redo should restore the circle")
	}
	if !strings.Contains(out.String(), "1 ") {
		t.Fatalf("history after redo: %q", out.String())
	}
}

func TestInterpreterCopyPaste(t *testing.T) {
	in, out := newTestInterpreter()
	run(t, in, "paste")
	if !strings.Contains(out.String(), "clipboard is empty") {
		t.Fatalf("expected empty clipboard message, got %q", out.String())
	}
	run(t, in,
		"tool square",
		"press 10 10",
		"drag 40 40",
		"release 40 40",
		"copy",
		"paste",
		"selectall",
		"delete",
	)
	if in.sess.Document().Len() != 0 {
		t.Fatalf("expected delete to clear the canvas, got %d", in.sess.Document().Len())
	}
}

func TestInterpreterErrors(t *testing.T) {
	in, _ := newTestInterpreter()
	tests := []struct {
		line string
		want string
	}{
		{"bogus", "unknown command"},
		{"tool hexagon", "unknown tool"},
		{"width -1", "invalid width"},
		{"fill dotted", "fill"},
		{"press 1", "expected <x> <y>"},
		{"press 1 2 sideways", "unknown button"},
		{"key ctrl+f1", "unknown key"},
		{"canvas 0 10", "invalid width"},
		{"export drawing.svg", "unknown export format"},
		{"import clipboard", "system clipboard disabled"},
		{"clipboard", "system clipboard disabled"},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			_, err := in.executeLine(tc.line)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %v", tc.want, err)
			}
		})
	}
}

func TestInterpreterExitAndComments(t *testing.T) {
	in, _ := newTestInterpreter()
	for _, line := range []string{"", "   ", "# a comment"} {
		if done, err := in.executeLine(line); done || err != nil {
			t.Fatalf("%q: done=%v err=%v", line, done, err)
		}
	}
	for _, line := range []string{"exit", "quit", "EXIT"} {
		if done, err := in.executeLine(line); !done || err != nil {
			t.Fatalf("%q: done=%v err=%v", line, done, err)
		}
	}
}

func TestInterpreterCanvas(t *testing.T) {
	in, out := newTestInterpreter()
	run(t, in, "canvas 320 200", "canvas")
	if w, h := in.sess.Canvas(); w != 320 || h != 200 {
		t.Fatalf("canvas: got %gx%g", w, h)
	}
	if !strings.Contains(out.String(), "canvas 320x200") {
		t.Fatalf("canvas output: %q", out.String())
	}
}

func TestRunScriptExports(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "out.png")
	script := strings.Join([]string{
		"# two shapes",
		"tool oval",
		"press 20 20",
		"drag 120 80",
		"release 120 80",
		"tool triangle",
		"deselect",
		"click 200 200",
		"click 260 200",
		"click 230 150",
		"export " + png,
		"exit",
		"bogus never runs",
	}, "\n")

	in, out := newTestInterpreter()
	if err := runScript(in, "test.vd", strings.NewReader(script)); err != nil {
		t.Fatalf("runScript: %v", err)
	}
	if in.sess.Document().Len() != 2 {
		t.Fatalf("expected oval and triangle, got %d shapes", in.sess.Document().Len())
	}
	if st, err := os.Stat(png); err != nil || st.Size() == 0 {
		t.Fatalf("export missing: %v", err)
	}
	if !strings.Contains(out.String(), "exported ") {
		t.Fatalf("expected export message, got %q", out.String())
	}
}

func TestRunScriptReportsLine(t *testing.T) {
	in, _ := newTestInterpreter()
	err := runScript(in, "bad.vd", strings.NewReader("tool select\n\nwidth zero\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "bad.vd:3: width:") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestToolNamesListsEveryTool(t *testing.T) {
	names := toolNames()
	for _, tool := range interact.Tools {
		if !strings.Contains(names, tool.String()) {
			t.Errorf("missing %s in %q", tool, names)
		}
	}
}
