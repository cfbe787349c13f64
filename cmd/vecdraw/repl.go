package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/vecdraw/internal/export"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/notify"
	"github.com/example/vecdraw/internal/session"
	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/theme"
	"golang.org/x/mobile/event/mouse"
)

// errExit ends a script or prompt early.
var errExit = errors.New("exit")

type replCommand struct {
	Name  string
	Usage string
	Help  string
	run   func(in *interpreter, args []string) error
}

// replCommands is set in init because help refers back to it.
var replCommands []replCommand

func init() {
	replCommands = []replCommand{
		{"tool", "tool <name>", "select a tool: " + toolNames(), (*interpreter).tool},
		{"color", "color <name|#rrggbb>", "set the drawing color", (*interpreter).color},
		{"width", "width <n>", "set the stroke width", (*interpreter).width},
		{"fill", "fill <filled|outline>", "set the fill mode", (*interpreter).fill},
		{"press", "press <x> <y> [left|right]", "press a button", (*interpreter).press},
		{"drag", "drag <x> <y>", "move with the button held", (*interpreter).move},
		{"move", "move <x> <y>", "move the pointer", (*interpreter).move},
		{"release", "release <x> <y> [left|right]", "release a button", (*interpreter).release},
		{"click", "click <x> <y>", "press and release", (*interpreter).click},
		{"dblclick", "dblclick <x> <y>", "double click", (*interpreter).dblclick},
		{"rclick", "rclick <x> <y>", "secondary click", (*interpreter).rclick},
		{"key", "key <combo>", "press a key, e.g. ctrl+z or delete", (*interpreter).key},
		{"undo", "undo", "undo the last action", (*interpreter).undo},
		{"redo", "redo", "redo the last undone action", (*interpreter).redo},
		{"copy", "copy", "copy the selection", func(in *interpreter, _ []string) error { in.sess.Copy(); return nil }},
		{"cut", "cut", "cut the selection", func(in *interpreter, _ []string) error { in.sess.Cut(); return nil }},
		{"paste", "paste", "paste the clipboard", (*interpreter).paste},
		{"delete", "delete", "delete the selection", func(in *interpreter, _ []string) error { in.sess.Delete(); return nil }},
		{"selectall", "selectall", "select every shape", func(in *interpreter, _ []string) error { in.sess.SelectAll(); return nil }},
		{"deselect", "deselect", "clear the selection", func(in *interpreter, _ []string) error { in.sess.ClearSelection(); return nil }},
		{"list", "list", "list shapes, * marks selected", (*interpreter).list},
		{"export", "export <file.png|file.pdf>", "write the drawing", (*interpreter).export},
		{"import", "import <image|clipboard>", "place an image on the canvas", (*interpreter).importImage},
		{"clipboard", "clipboard", "print the desktop clipboard text", (*interpreter).clipboardText},
		{"canvas", "canvas [w h]", "show or set the canvas size", (*interpreter).canvas},
		{"history", "history", "list undoable actions, oldest first", (*interpreter).history},
		{"help", "help", "list commands", (*interpreter).help},
		{"exit", "exit", "stop", func(*interpreter, []string) error { return errExit }},
	}
}

func toolNames() string {
	names := make([]string, len(interact.Tools))
	for i, t := range interact.Tools {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// interpreter runs gesture commands against a session.
type interpreter struct {
	sess       *session.Session
	out        io.Writer
	background color.Color
	notifier   *notify.Notifier
}

func newInterpreter(sess *session.Session, out io.Writer, background color.Color, n *notify.Notifier) *interpreter {
	return &interpreter{sess: sess, out: out, background: background, notifier: n}
}

// executeLine runs one command line. done reports an exit request.
func (in *interpreter) executeLine(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	if name == "quit" {
		name = "exit"
	}
	for _, c := range replCommands {
		if c.Name != name {
			continue
		}
		if err := c.run(in, fields[1:]); err != nil {
			if errors.Is(err, errExit) {
				return true, nil
			}
			return false, fmt.Errorf("%s: %w", name, err)
		}
		return false, nil
	}
	return false, fmt.Errorf("unknown command %q, try help", fields[0])
}

func (in *interpreter) printf(format string, args ...any) {
	fmt.Fprintf(in.out, format, args...)
}

func (in *interpreter) tool(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tool <name>")
	}
	t, err := interact.ParseTool(args[0])
	if err != nil {
		return err
	}
	in.sess.SetTool(t)
	return nil
}

func (in *interpreter) color(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: color <name|#rrggbb>")
	}
	c, err := theme.ParseColor(args[0])
	if err != nil {
		return err
	}
	in.sess.SetColor(c)
	return nil
}

func (in *interpreter) width(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: width <n>")
	}
	w, err := strconv.ParseFloat(args[0], 64)
	if err != nil || w <= 0 {
		return fmt.Errorf("invalid width %q", args[0])
	}
	in.sess.SetLineWidth(w)
	return nil
}

func (in *interpreter) fill(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: fill <filled|outline>")
	}
	f, err := shape.ParseFillMode(args[0])
	if err != nil {
		return err
	}
	in.sess.SetFill(f)
	return nil
}

// point parses "x y" and an optional button name.
func point(args []string) (geom.Point, mouse.Button, error) {
	if len(args) != 2 && len(args) != 3 {
		return geom.Point{}, mouse.ButtonNone, fmt.Errorf("expected <x> <y>")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return geom.Point{}, mouse.ButtonNone, fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return geom.Point{}, mouse.ButtonNone, fmt.Errorf("invalid y %q", args[1])
	}
	button := mouse.ButtonLeft
	if len(args) == 3 {
		switch strings.ToLower(args[2]) {
		case "left":
		case "right":
			button = mouse.ButtonRight
		case "middle":
			button = mouse.ButtonMiddle
		default:
			return geom.Point{}, mouse.ButtonNone, fmt.Errorf("unknown button %q", args[2])
		}
	}
	return geom.Pt(x, y), button, nil
}

func (in *interpreter) press(args []string) error {
	p, b, err := point(args)
	if err != nil {
		return err
	}
	in.sess.Press(interact.Pointer{Pos: p, Button: b, Clicks: 1})
	return nil
}

func (in *interpreter) release(args []string) error {
	p, b, err := point(args)
	if err != nil {
		return err
	}
	in.sess.Release(interact.Pointer{Pos: p, Button: b, Clicks: 1})
	return nil
}

func (in *interpreter) move(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <x> <y>")
	}
	p, _, err := point(args)
	if err != nil {
		return err
	}
	in.sess.Move(p)
	return nil
}

func (in *interpreter) clickN(args []string, button mouse.Button, clicks int) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <x> <y>")
	}
	p, _, err := point(args)
	if err != nil {
		return err
	}
	for n := 1; n <= clicks; n++ {
		in.sess.Press(interact.Pointer{Pos: p, Button: button, Clicks: n})
		in.sess.Release(interact.Pointer{Pos: p, Button: button, Clicks: n})
	}
	return nil
}

func (in *interpreter) click(args []string) error {
	return in.clickN(args, mouse.ButtonLeft, 1)
}

func (in *interpreter) dblclick(args []string) error {
	return in.clickN(args, mouse.ButtonLeft, 2)
}

func (in *interpreter) rclick(args []string) error {
	return in.clickN(args, mouse.ButtonRight, 1)
}

func (in *interpreter) key(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: key <combo>")
	}
	code, mods, ok := session.ParseKey(args[0])
	if !ok {
		return fmt.Errorf("unknown key %q", args[0])
	}
	if !in.sess.Key(code, mods) {
		in.printf("%s: no binding\n", args[0])
	}
	return nil
}

func (in *interpreter) undo([]string) error {
	if !in.sess.Undo() {
		in.printf("nothing to undo\n")
	}
	return nil
}

func (in *interpreter) redo([]string) error {
	if !in.sess.Redo() {
		in.printf("nothing to redo\n")
	}
	return nil
}

func (in *interpreter) paste([]string) error {
	if pasted := in.sess.Paste(); pasted == nil {
		in.printf("clipboard is empty\n")
	}
	return nil
}

func (in *interpreter) list([]string) error {
	doc := in.sess.Document()
	if doc.Len() == 0 {
		in.printf("no shapes\n")
		return nil
	}
	for i, s := range doc.Shapes() {
		mark := " "
		if doc.IsSelected(s) {
			mark = "*"
		}
		in.printf("%s %d %s\n", mark, i, shape.Describe(s))
	}
	return nil
}

func (in *interpreter) page() export.Page {
	w, h := in.sess.Canvas()
	return export.Page{Width: w, Height: h, Background: in.background}
}

func (in *interpreter) export(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: export <file.png|file.pdf>")
	}
	if err := export.File(args[0], in.sess.Document(), in.page()); err != nil {
		return err
	}
	in.printf("exported %s\n", args[0])
	in.notifier.Export(args[0])
	return nil
}

func (in *interpreter) importImage(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: import <image|clipboard>")
	}
	var (
		s   shape.Shape
		err error
	)
	if args[0] == "clipboard" {
		s, err = in.sess.ImportClipboard()
	} else {
		s, err = in.sess.ImportFile(args[0])
	}
	if err != nil {
		return err
	}
	in.printf("imported %s\n", shape.Describe(s))
	return nil
}

func (in *interpreter) clipboardText([]string) error {
	text, err := in.sess.ClipboardText()
	if err != nil {
		return err
	}
	in.printf("%s\n", text)
	return nil
}

func (in *interpreter) canvas(args []string) error {
	switch len(args) {
	case 0:
		w, h := in.sess.Canvas()
		in.printf("canvas %gx%g\n", w, h)
		return nil
	case 2:
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid width %q", args[0])
		}
		h, err := strconv.ParseFloat(args[1], 64)
		if err != nil || h <= 0 {
			return fmt.Errorf("invalid height %q", args[1])
		}
		in.sess.Resize(w, h)
		return nil
	}
	return fmt.Errorf("usage: canvas [w h]")
}

func (in *interpreter) history([]string) error {
	names := in.sess.History().Names()
	if len(names) == 0 {
		in.printf("history is empty\n")
		return nil
	}
	for i, n := range names {
		in.printf("%d %s\n", i+1, n)
	}
	return nil
}

func (in *interpreter) help([]string) error {
	for _, c := range replCommands {
		in.printf("  %-28s %s\n", c.Usage, c.Help)
	}
	return nil
}
