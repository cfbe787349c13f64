package appstate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/theme"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
)

const (
	headerHeight = 24
	statusHeight = 24
	buttonHeight = 24
	swatchSize   = 16
	swatchPitch  = 18
	widthHeight  = 16
)

// toolbarWidth grows at start up to fit the widest toolbar label.
var toolbarWidth = 72

// frameDropThreshold limits how many consecutive frames may be cancelled
// before one is allowed to finish.
const frameDropThreshold = 10

const messageDuration = 2 * time.Second

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

func buttonFill(th *theme.Theme, state ButtonState) color.RGBA {
	switch state {
	case StateHover:
		return th.ButtonBackgroundHover
	case StatePressed:
		return th.ButtonActive
	}
	return th.ButtonBackground
}

// drawButton paints a labelled button face.
func drawButton(dst *image.RGBA, r image.Rectangle, label string, th *theme.Theme, state ButtonState) {
	draw.Draw(dst, r, &image.Uniform{buttonFill(th, state)}, image.Point{}, draw.Src)
	_, lh := render.MeasureLabel(label, render.LabelSize)
	render.DrawLabel(dst, r.Min.X+4, r.Min.Y+(r.Dy()-lh)/2, label, th.ButtonText, render.LabelSize)
}

// Shortcut is a header bar entry such as "^Z:undo".
type Shortcut struct {
	label  string
	action func()
	rect   image.Rectangle
	th     *theme.Theme
}

func (s *Shortcut) Draw(dst *image.RGBA, state ButtonState) {
	drawButton(dst, s.rect, s.label, s.th, state)
	strokeRect(dst, s.rect, s.th.ButtonBorder)
}

func (s *Shortcut) Rect() image.Rectangle { return s.rect }

func (s *Shortcut) SetRect(r image.Rectangle) { s.rect = r }

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}

// ToolButton selects a drawing tool.
type ToolButton struct {
	label    string
	tool     interact.Tool
	rect     image.Rectangle
	th       *theme.Theme
	onSelect func()
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	drawButton(dst, tb.rect, tb.label, tb.th, state)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// toolKeys are the unmodified keys that pick each tool.
var toolKeys = map[interact.Tool]rune{
	interact.ToolSelect:    's',
	interact.ToolRectangle: 'r',
	interact.ToolSquare:    'q',
	interact.ToolCircle:    'c',
	interact.ToolOval:      'o',
	interact.ToolTriangle:  't',
	interact.ToolPolyline:  'p',
	interact.ToolSquiggle:  'f',
}

var toolLabels = map[interact.Tool]string{
	interact.ToolSelect:    "S:Select",
	interact.ToolRectangle: "R:Rect",
	interact.ToolSquare:    "Q:Square",
	interact.ToolCircle:    "C:Circle",
	interact.ToolOval:      "O:Oval",
	interact.ToolTriangle:  "T:Triangle",
	interact.ToolPolyline:  "P:Polyline",
	interact.ToolSquiggle:  "F:Freehand",
}

func toolCode(r rune) key.Code { return key.CodeA + key.Code(r-'a') }

// area names a part of the window chrome.
type area int

const (
	areaNone area = iota
	areaCanvas
	areaShortcut
	areaTool
	areaSwatch
	areaWidth
	areaFill
)

// hit is the chrome element under a point.
type hit struct {
	area  area
	index int
}

var noHit = hit{area: areaNone, index: -1}

var fillModes = []shape.FillMode{shape.Outline, shape.Filled}

// chrome is the laid out window furniture around the canvas. Rectangles are
// fixed once built; only the cached button faces change afterwards.
type chrome struct {
	th        *theme.Theme
	shortcuts []*Shortcut
	tools     []*CacheButton
	swatches  []image.Rectangle
	widths    []image.Rectangle
	fills     []image.Rectangle
}

// newChrome lays out the header shortcuts and the toolbar column.
// onTool and trigger run on the event loop when an entry is activated.
func newChrome(th *theme.Theme, onTool func(interact.Tool), trigger func(string)) *chrome {
	c := &chrome{th: th}

	max, _ := render.MeasureLabel("vecdraw", render.LabelSize)
	max += 8
	for _, t := range interact.Tools {
		if w, _ := render.MeasureLabel(toolLabels[t], render.LabelSize); w+8 > max {
			max = w + 8
		}
	}
	if max > toolbarWidth {
		toolbarWidth = max
	}

	x := toolbarWidth + 4
	for _, sc := range headerShortcuts {
		name := sc.name
		s := &Shortcut{label: sc.label, th: th, action: func() { trigger(name) }}
		w, _ := render.MeasureLabel(sc.label, render.LabelSize)
		s.SetRect(image.Rect(x, 2, x+w+8, headerHeight-2))
		c.shortcuts = append(c.shortcuts, s)
		x = s.rect.Max.X + 6
	}

	y := headerHeight
	for _, t := range interact.Tools {
		tb := &ToolButton{label: toolLabels[t], tool: t, th: th, onSelect: func() { onTool(t) }}
		cb := &CacheButton{Button: tb}
		cb.SetRect(image.Rect(0, y, toolbarWidth, y+buttonHeight))
		c.tools = append(c.tools, cb)
		y += buttonHeight
	}

	y += 4
	x = 4
	for range palette {
		c.swatches = append(c.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchPitch
		if x+swatchSize > toolbarWidth {
			x = 4
			y += swatchPitch
		}
	}
	if x != 4 {
		y += swatchPitch
	}

	y += 4
	for range lineWidths {
		c.widths = append(c.widths, image.Rect(0, y, toolbarWidth, y+widthHeight))
		y += widthHeight
	}

	y += 4
	for range fillModes {
		c.fills = append(c.fills, image.Rect(0, y, toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}
	return c
}

// minHeight is the window height needed to show the whole toolbar.
func (c *chrome) minHeight() int {
	return c.fills[len(c.fills)-1].Max.Y + statusHeight
}

// canvasRect is where the canvas sits for a window of width x height.
func canvasRect(width, height int) image.Rectangle {
	r := image.Rect(toolbarWidth, headerHeight, width, height-statusHeight)
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// hitTest reports the chrome element at p.
func (c *chrome) hitTest(p image.Point, width, height int) hit {
	if p.In(canvasRect(width, height)) {
		return hit{area: areaCanvas, index: -1}
	}
	for i, s := range c.shortcuts {
		if p.In(s.Rect()) {
			return hit{area: areaShortcut, index: i}
		}
	}
	for i, b := range c.tools {
		if p.In(b.Rect()) {
			return hit{area: areaTool, index: i}
		}
	}
	for _, group := range []struct {
		area  area
		rects []image.Rectangle
	}{{areaSwatch, c.swatches}, {areaWidth, c.widths}, {areaFill, c.fills}} {
		for i, r := range group.rects {
			if p.In(r) {
				return hit{area: group.area, index: i}
			}
		}
	}
	return noHit
}

// headerShortcut names an action shown in the header bar.
type headerShortcut struct {
	label, name string
}

var headerShortcuts = []headerShortcut{
	{"^Z:undo", "undo"},
	{"^Y:redo", "redo"},
	{"^C:copy", "copy"},
	{"^X:cut", "cut"},
	{"^V:paste", "paste"},
	{"Del:delete", "delete"},
	{"^S:export", "export"},
	{"^E:copy image", "copyimage"},
	{"^Q:quit", "quit"},
}

type paintState struct {
	width, height int
	// canvas is rendered on the event loop; the paint goroutine only reads it.
	canvas       *image.RGBA
	tool         interact.Tool
	style        shape.Style
	hover        hit
	status       string
	message      string
	messageUntil time.Time
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, c *chrome, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	if !composeFrame(ctx, b.RGBA(), c, st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// composeFrame draws one frame into dst. It returns false when ctx was
// cancelled part way.
func composeFrame(ctx context.Context, dst *image.RGBA, c *chrome, st paintState) bool {
	th := c.th
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	if st.canvas != nil {
		area := canvasRect(st.width, st.height)
		draw.Draw(dst, area, st.canvas, st.canvas.Bounds().Min, draw.Src)
	}
	if ctx.Err() != nil {
		return false
	}

	c.drawHeader(dst, st)
	c.drawToolbar(dst, st)
	drawStatus(dst, th, st)
	if ctx.Err() != nil {
		return false
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		drawMessage(dst, th, st.width, st.height, st.message)
	}
	return ctx.Err() == nil
}

func (c *chrome) drawHeader(dst *image.RGBA, st paintState) {
	th := c.th
	draw.Draw(dst, image.Rect(0, 0, st.width, headerHeight), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	_, lh := render.MeasureLabel("vecdraw", render.LabelSize)
	render.DrawLabel(dst, 4, (headerHeight-lh)/2, "vecdraw", th.Foreground, render.LabelSize)
	for i, s := range c.shortcuts {
		state := StateDefault
		if st.hover.area == areaShortcut && st.hover.index == i {
			state = StateHover
		}
		s.Draw(dst, state)
	}
}

func (c *chrome) drawToolbar(dst *image.RGBA, st paintState) {
	th := c.th
	draw.Draw(dst, image.Rect(0, headerHeight, toolbarWidth, st.height-statusHeight),
		&image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)

	for i, cb := range c.tools {
		state := StateDefault
		if cb.Button.(*ToolButton).tool == st.tool {
			state = StatePressed
		} else if st.hover.area == areaTool && st.hover.index == i {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	selected := paletteIndex(st.style.Color)
	for i, r := range c.swatches {
		draw.Draw(dst, r, &image.Uniform{palette[i].Color}, image.Point{}, draw.Src)
		if st.hover.area == areaSwatch && st.hover.index == i {
			draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if i == selected {
			strokeRect(dst, r, th.Selection)
		}
	}

	wi := widthIndex(st.style.LineWidth)
	for i, r := range c.widths {
		state := StateDefault
		if i == wi {
			state = StatePressed
		} else if st.hover.area == areaWidth && st.hover.index == i {
			state = StateHover
		}
		draw.Draw(dst, r, &image.Uniform{buttonFill(th, state)}, image.Point{}, draw.Src)
		label := fmt.Sprintf("%g", lineWidths[i])
		render.DrawLabel(dst, r.Min.X+4, r.Min.Y+1, label, th.ButtonText, render.LabelSize)
		thick := int(lineWidths[i])
		mid := r.Min.Y + r.Dy()/2 - thick/2
		draw.Draw(dst, image.Rect(r.Min.X+30, mid, r.Max.X-4, mid+thick), &image.Uniform{st.style.Color}, image.Point{}, draw.Over)
	}

	for i, r := range c.fills {
		state := StateDefault
		if fillModes[i] == st.style.Fill {
			state = StatePressed
		} else if st.hover.area == areaFill && st.hover.index == i {
			state = StateHover
		}
		drawButton(dst, r, fillModes[i].String(), th, state)
	}
}

func drawStatus(dst *image.RGBA, th *theme.Theme, st paintState) {
	r := image.Rect(0, st.height-statusHeight, st.width, st.height)
	draw.Draw(dst, r, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	_, lh := render.MeasureLabel(st.status, render.LabelSize)
	render.DrawLabel(dst, 4, r.Min.Y+(statusHeight-lh)/2, st.status, th.StatusText, render.LabelSize)
}

// drawMessage shows a transient boxed message in the middle of the window.
func drawMessage(dst *image.RGBA, th *theme.Theme, width, height int, msg string) {
	const size = 16
	mw, mh := render.MeasureLabel(msg, size)
	px := (width - mw) / 2
	py := (height - mh) / 2
	rect := image.Rect(px-8, py-8, px+mw+8, py+mh+8)
	bg := th.StatusBackground
	bg.A = 230
	draw.Draw(dst, rect, &image.Uniform{bg}, image.Point{}, draw.Over)
	strokeRect(dst, rect, th.ButtonBorder)
	render.DrawLabel(dst, px, py, msg, th.StatusText, size)
}

// strokeRect outlines r one pixel inside its bounds.
func strokeRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	u := &image.Uniform{c}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
