// Package appstate hosts an editing session in a shiny desktop window.
package appstate

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/example/vecdraw/internal/export"
	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/notify"
	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/session"
	"github.com/example/vecdraw/internal/theme"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// AppState holds the window configuration for one session.
type AppState struct {
	Session *session.Session
	Theme   *theme.Theme
	// Output is where Ctrl+S exports; its extension picks the format.
	Output   string
	Notifier *notify.Notifier

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithTheme sets the window colors.
func WithTheme(th *theme.Theme) Option { return func(a *AppState) { a.Theme = th } }

// WithOutput sets the export path used by Ctrl+S.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithNotifier sets the notifier raised after exports and image copies.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState for sess.
func New(sess *session.Session, opts ...Option) *AppState {
	a := &AppState{Session: sess, Theme: theme.Default()}
	for _, o := range opts {
		o(a)
	}
	if a.Output == "" {
		a.Output = DefaultOutput("", sess.ID)
	}
	return a
}

// DefaultOutput names a PNG export for a session inside dir.
func DefaultOutput(dir, id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return filepath.Join(dir, fmt.Sprintf("drawing-%s.png", id))
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	sess := a.Session
	var message string
	var messageUntil time.Time
	var hover = noHit
	var quit bool
	// pressedCanvas keeps routing a drag to the session after the pointer
	// leaves the canvas.
	var pressedCanvas bool
	var inside bool
	var pointer image.Point

	show := func(msg string) {
		message = msg
		messageUntil = time.Now().Add(messageDuration)
		log.Print(msg)
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				keyboardAction[sc] = name
			}
		}
	}
	trigger := func(name string) {
		if fn, ok := actions[name]; ok {
			fn()
		}
	}

	c := newChrome(a.Theme, sess.SetTool, trigger)

	cw, ch := sess.Canvas()
	width := int(cw) + toolbarWidth
	height := int(ch) + headerHeight + statusHeight
	if mh := c.minHeight(); height < mh {
		height = mh
	}
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "vecdraw"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	cancelSub := sess.Document().Subscribe(func() { w.Send(paint.Event{}) })
	defer cancelSub()

	register("undo", nil, func() { sess.Undo() })
	register("redo", nil, func() { sess.Redo() })
	register("copy", nil, sess.Copy)
	register("cut", nil, sess.Cut)
	register("paste", nil, func() { sess.Paste() })
	register("delete", nil, sess.Delete)
	register("export", shortcutList{{Code: key.CodeS, Modifiers: key.ModControl}}, func() {
		cw, ch := sess.Canvas()
		page := export.Page{Width: cw, Height: ch, Background: a.Theme.Canvas}
		if err := export.File(a.Output, sess.Document(), page); err != nil {
			log.Printf("export: %v", err)
			show("export failed")
			return
		}
		show(fmt.Sprintf("exported %s", a.Output))
		go a.Notifier.Export(a.Output)
	})
	register("copyimage", shortcutList{{Code: key.CodeE, Modifiers: key.ModControl}}, func() {
		cw, ch := sess.Canvas()
		page := export.Page{Width: cw, Height: ch, Background: a.Theme.Canvas}
		if err := export.ToClipboard(sess.Document(), page); err != nil {
			log.Printf("copy image: %v", err)
			show("copy image failed")
			return
		}
		show("image copied to clipboard")
		go a.Notifier.Copy("drawing")
	})
	register("quit", shortcutList{
		{Code: key.CodeQ, Modifiers: key.ModControl},
		{Code: key.CodeW, Modifiers: key.ModControl},
	}, func() { quit = true })
	for _, t := range interact.Tools {
		register("tool:"+t.String(), shortcutList{{Code: toolCode(toolKeys[t])}}, func() { sess.SetTool(t) })
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, c, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()

	for !quit {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			if r := canvasRect(width, height); !r.Empty() {
				sess.Resize(float64(r.Dx()), float64(r.Dy()))
			}
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			st := paintState{
				width:        width,
				height:       height,
				canvas:       renderCanvas(sess, a.Theme),
				tool:         sess.Tool(),
				style:        sess.Style(),
				hover:        hover,
				status:       statusLine(sess, pointer, inside),
				message:      message,
				messageUntil: messageUntil,
			}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			p := image.Point{int(e.X), int(e.Y)}
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}
			origin := canvasRect(width, height).Min
			h := c.hitTest(p, width, height)
			if pressedCanvas || h.area == areaCanvas {
				if e.Direction == mouse.DirPress {
					pressedCanvas = true
				}
				if e.Direction == mouse.DirRelease {
					pressedCanvas = false
				}
				inside = true
				pointer = p.Sub(origin)
				sess.Pointer(toCanvas(e, origin), time.Now())
				hover = noHit
				w.Send(paint.Event{})
				continue
			}
			if inside {
				inside = false
				sess.Leave()
			}
			if h != hover {
				hover = h
				w.Send(paint.Event{})
			}
			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
				a.activate(c, h)
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if name, ok := keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]; ok {
				trigger(name)
			} else {
				sess.Key(e.Code, e.Modifiers)
			}
			w.Send(paint.Event{})
		case error:
			log.Print(e)
		}
	}
}

// activate applies a click on a toolbar entry.
func (a *AppState) activate(c *chrome, h hit) {
	sess := a.Session
	switch h.area {
	case areaShortcut:
		c.shortcuts[h.index].Activate()
	case areaTool:
		c.tools[h.index].Activate()
	case areaSwatch:
		sess.SetColor(palette[h.index].Color)
	case areaWidth:
		sess.SetLineWidth(lineWidths[h.index])
	case areaFill:
		sess.SetFill(fillModes[h.index])
	}
}

// toCanvas moves a window event into canvas coordinates.
func toCanvas(e mouse.Event, origin image.Point) mouse.Event {
	e.X -= float32(origin.X)
	e.Y -= float32(origin.Y)
	return e
}

// renderCanvas paints the session's document at canvas size.
func renderCanvas(sess *session.Session, th *theme.Theme) *image.RGBA {
	cw, ch := sess.Canvas()
	img := image.NewRGBA(image.Rect(0, 0, int(cw), int(ch)))
	r := render.NewRaster(img)
	r.Shadow = render.DefaultShadow()
	sc := render.Scene{Background: th.Canvas, Selection: th.Selection}
	sc.Paint(r, sess.Document(), cw, ch)
	return img
}

// statusLine summarises the tool, gesture state and document.
func statusLine(sess *session.Session, pointer image.Point, inside bool) string {
	doc := sess.Document()
	line := fmt.Sprintf("%s  %s  shapes: %d  selected: %d  undo: %d",
		sess.Tool(), sess.State(), doc.Len(), len(doc.Selection()), sess.History().Len())
	if inside {
		line += fmt.Sprintf("  %d,%d", pointer.X, pointer.Y)
	}
	return line
}
