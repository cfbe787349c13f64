// Package session ties a document, its history, the shape clipboard and
// the active tool into one editing session driven by pointer and key
// events.
package session

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/command"
	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/history"
	"github.com/example/vecdraw/internal/imageio"
	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/shape"
	"github.com/google/uuid"
	"golang.org/x/mobile/event/mouse"
)

// ErrNoSystemClipboard is returned by clipboard reads when the session does
// not use the desktop clipboard.
var ErrNoSystemClipboard = errors.New("system clipboard disabled")

// Default canvas extents.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Session is one editing session. It is not safe for concurrent use; the
// window loop and the REPL each drive a session from a single goroutine.
type Session struct {
	ID string

	// Verbose logs every history action.
	Verbose bool
	// SystemClipboard mirrors copies to the desktop clipboard.
	SystemClipboard bool

	doc   *document.Document
	hist  *history.History
	clip  *clipboard.Store
	style shape.Style

	width, height float64

	machine *interact.Machine
	held    mouse.Button
	clicks  *interact.ClickCounter

	readImage func() (image.Image, error)
	readText  func() (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithCanvas sets the canvas extents.
func WithCanvas(w, h float64) Option {
	return func(s *Session) {
		s.width, s.height = w, h
	}
}

// WithStyle sets the style given to new shapes.
func WithStyle(st shape.Style) Option {
	return func(s *Session) {
		s.style = st
	}
}

// WithTool selects the starting tool.
func WithTool(t interact.Tool) Option {
	return func(s *Session) {
		s.machine = interact.New(t, s)
	}
}

func WithVerbose(v bool) Option {
	return func(s *Session) {
		s.Verbose = v
	}
}

func WithSystemClipboard(on bool) Option {
	return func(s *Session) {
		s.SystemClipboard = on
	}
}

// New returns an empty session with the select tool active.
func New(opts ...Option) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		doc:    document.New(),
		hist:   history.New(),
		clip:   clipboard.NewStore(),
		style:  shape.DefaultStyle(),
		width:  DefaultWidth,
		height: DefaultHeight,
		clicks: interact.NewClickCounter(),

		readImage: clipboard.ReadImage,
		readText:  clipboard.ReadText,
	}
	s.machine = interact.New(interact.ToolSelect, s)
	for _, opt := range opts {
		opt(s)
	}
	s.hist.OnExecute = s.logHistory
	return s
}

func (s *Session) logHistory(action string, cmd history.Command) {
	if s.Verbose {
		log.Printf("session %s: history: %s %s", s.ID, action, cmd.Name())
	}
}

func (s *Session) Document() *document.Document { return s.doc }

func (s *Session) History() *history.History { return s.hist }

func (s *Session) Clipboard() *clipboard.Store { return s.clip }

// Canvas returns the canvas extents.
func (s *Session) Canvas() (w, h float64) { return s.width, s.height }

// Style returns the style applied to new shapes.
func (s *Session) Style() shape.Style { return s.style }

func (s *Session) Tool() interact.Tool { return s.machine.Tool() }

// State returns the gesture phase of the active tool.
func (s *Session) State() interact.State { return s.machine.State() }

// SetTool abandons any gesture in progress and activates t.
func (s *Session) SetTool(t interact.Tool) {
	s.machine.Cancel()
	s.held = mouse.ButtonNone
	s.machine = interact.New(t, s)
}

// SetColor changes the current color and recolors the selection.
func (s *Session) SetColor(c color.RGBA) {
	s.style.Color = c
	s.doc.Restyle(func(sh shape.Shape) { sh.SetColor(c) })
}

// SetLineWidth changes the current stroke width and applies it to the
// selection. Non-positive widths are ignored.
func (s *Session) SetLineWidth(w float64) {
	if w <= 0 {
		return
	}
	s.style.LineWidth = w
	s.doc.Restyle(func(sh shape.Shape) { sh.SetLineWidth(w) })
}

// SetFill changes the current fill mode and applies it to the selection.
func (s *Session) SetFill(f shape.FillMode) {
	s.style.Fill = f
	s.doc.Restyle(func(sh shape.Shape) { sh.SetFill(f) })
}

// Resize changes the canvas extents used to bound moves.
func (s *Session) Resize(w, h float64) {
	s.width, s.height = w, h
}

// Undo reverts the last command and clears the selection.
func (s *Session) Undo() bool {
	return s.step(s.hist.Undo)
}

// Redo re-applies the last undone command and clears the selection.
func (s *Session) Redo() bool {
	return s.step(s.hist.Redo)
}

func (s *Session) step(fn func() bool) bool {
	var ok bool
	s.doc.Batch(func() {
		s.machine.Cancel()
		s.held = mouse.ButtonNone
		ok = fn()
		if ok {
			s.doc.ClearSelection()
		}
	})
	return ok
}

// Copy puts clones of the selection on the clipboard. It leaves the
// document untouched and is not recorded in the history.
func (s *Session) Copy() {
	sel := s.doc.Selection()
	if len(sel) == 0 {
		return
	}
	command.NewCopy(s.clip, sel...).Execute()
	s.mirror(sel)
}

// Cut copies the selection and removes it from the document.
func (s *Session) Cut() {
	sel := s.doc.Selection()
	if len(sel) == 0 {
		return
	}
	s.hist.Execute(command.NewCut(s.doc, s.clip, sel...))
	s.mirror(sel)
}

func (s *Session) mirror(shapes []shape.Shape) {
	if !s.SystemClipboard {
		return
	}
	if err := clipboard.WriteText(clipboard.Summary(shapes)); err != nil {
		log.Printf("clipboard: %v", err)
	}
}

// Paste inserts the clipboard contents and selects them. It returns the
// inserted shapes; an empty clipboard inserts nothing.
func (s *Session) Paste() []shape.Shape {
	if s.clip.Empty() {
		return nil
	}
	p := command.NewPaste(s.doc, s.clip)
	s.doc.Batch(func() {
		s.hist.Execute(p)
		s.doc.SelectMany(p.Inserted())
	})
	return p.Inserted()
}

// Delete removes the selection.
func (s *Session) Delete() {
	sel := s.doc.Selection()
	if len(sel) == 0 {
		return
	}
	s.hist.Execute(command.NewDelete(s.doc, sel...))
}

func (s *Session) SelectAll() { s.doc.SelectAll() }

// ClearSelection deselects everything. A drag in progress keeps going and
// is recorded when the button is released.
func (s *Session) ClearSelection() { s.doc.ClearSelection() }

// ImportImage adds img centred on the canvas, scaled so neither side
// exceeds imageio.MaxSide, and selects it.
func (s *Session) ImportImage(img image.Image) (shape.Shape, error) {
	if img == nil {
		return nil, fmt.Errorf("import image: no image")
	}
	b := img.Bounds()
	box := imageio.Place(float64(b.Dx()), float64(b.Dy()), s.width, s.height)
	sh := shape.NewImage(img, box, s.style)
	if sh.Degenerate() {
		return nil, fmt.Errorf("import image: empty image")
	}
	s.doc.Batch(func() {
		s.hist.Execute(command.NewAdd(s.doc, sh))
		s.doc.Select(sh)
	})
	return sh, nil
}

// ImportFile decodes the image at path and imports it.
func (s *Session) ImportFile(path string) (shape.Shape, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return s.ImportImage(img)
}

// ImportClipboard imports the image held by the desktop clipboard.
func (s *Session) ImportClipboard() (shape.Shape, error) {
	if !s.SystemClipboard {
		return nil, fmt.Errorf("import clipboard: %w", ErrNoSystemClipboard)
	}
	img, err := s.readImage()
	if err != nil {
		return nil, fmt.Errorf("import clipboard: %w", err)
	}
	return s.ImportImage(img)
}

// ClipboardText returns the text held by the desktop clipboard.
func (s *Session) ClipboardText() (string, error) {
	if !s.SystemClipboard {
		return "", ErrNoSystemClipboard
	}
	return s.readText()
}

// Press feeds a button press with an explicit click count.
func (s *Session) Press(p interact.Pointer) {
	if p.Button != mouse.ButtonRight {
		s.held = p.Button
	}
	s.machine.Press(p)
}

// Release feeds a button release. Releases of a button that is not held
// are ignored.
func (s *Session) Release(p interact.Pointer) {
	if p.Button != s.held || s.held == mouse.ButtonNone {
		return
	}
	s.held = mouse.ButtonNone
	s.machine.Release(p)
}

// Move feeds pointer motion, dragging when a button is held.
func (s *Session) Move(pos geom.Point) {
	if s.held != mouse.ButtonNone {
		s.machine.Drag(interact.Pointer{Pos: pos, Button: s.held, Clicks: 1})
		return
	}
	s.machine.Hover(interact.Pointer{Pos: pos})
}

// Leave reports the pointer leaving the canvas.
func (s *Session) Leave() { s.machine.Exit() }

// Pointer routes a raw mouse event in canvas coordinates. Click counts are
// derived from the press timing.
func (s *Session) Pointer(e mouse.Event, at time.Time) {
	pos := geom.Pt(float64(e.X), float64(e.Y))
	switch e.Direction {
	case mouse.DirPress:
		n := s.clicks.Press(pos, e.Button, at)
		s.Press(interact.Pointer{Pos: pos, Button: e.Button, Clicks: n})
	case mouse.DirRelease:
		s.Release(interact.Pointer{Pos: pos, Button: e.Button, Clicks: 1})
	case mouse.DirNone:
		s.Move(pos)
	}
}
