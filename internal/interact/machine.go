// Package interact turns pointer gestures into document mutations. One
// Machine drives one tool; every tool shares the select and move rules.
package interact

import (
	"github.com/example/vecdraw/internal/command"
	"github.com/example/vecdraw/internal/document"
	"github.com/example/vecdraw/internal/drag"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/history"
	"github.com/example/vecdraw/internal/shape"
)

// DragThreshold is how far the pointer must travel from the press before
// a drag-built shape is instantiated.
const DragThreshold = 3

// Host supplies the state a Machine works against.
type Host interface {
	Document() *document.Document
	History() *history.History
	// Canvas returns the canvas extents used to bound moves.
	Canvas() (w, h float64)
	// Style is applied to newly created shapes.
	Style() shape.Style
}

// State is the gesture phase of a Machine.
type State int

const (
	Idle State = iota
	Creating
	Moving
	BoxSelecting
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Moving:
		return "moving"
	case BoxSelecting:
		return "box-selecting"
	}
	return "idle"
}

// Machine consumes pointer events for one tool.
type Machine struct {
	tool  Tool
	host  Host
	state State

	// a press that only cleared the selection must not start a shape
	clearedSelection bool

	moving []shape.Shape
	group  drag.Group

	anchor   geom.Point
	creating shape.Shape

	band *shape.Overlay

	vertices []geom.Point
	polyline *shape.Polyline
}

// New returns an idle machine for tool.
func New(tool Tool, host Host) *Machine {
	return &Machine{tool: tool, host: host}
}

func (m *Machine) Tool() Tool { return m.tool }

func (m *Machine) State() State { return m.state }

// Building reports whether a multi-click shape is partly placed.
func (m *Machine) Building() bool { return len(m.vertices) > 0 || m.polyline != nil }

func (m *Machine) doc() *document.Document { return m.host.Document() }

// Press handles a button going down.
func (m *Machine) Press(p Pointer) {
	if p.secondary() {
		m.secondaryPress()
		return
	}
	if m.Building() {
		m.place(p)
		return
	}
	doc := m.doc()
	if _, ok := doc.SelectedAt(p.Pos); ok {
		m.moving = doc.Selection()
		m.group.Start(p.Pos)
		m.state = Moving
		return
	}
	if _, ok := doc.HitTest(p.Pos); ok {
		doc.SelectAt(p.Pos)
		return
	}
	hadSelection := len(doc.Selection()) > 0
	doc.ClearSelection()
	if m.tool == ToolSelect {
		m.band = shape.NewBand(p.Pos, p.Pos)
		m.anchor = p.Pos
		m.state = BoxSelecting
		doc.SetPreview(m.band)
		return
	}
	if hadSelection {
		m.clearedSelection = true
		return
	}
	m.begin(p)
}

// begin starts a new shape for a creation tool.
func (m *Machine) begin(p Pointer) {
	switch {
	case m.tool.spans():
		m.anchor = p.Pos
		m.creating = nil
		m.state = Creating
	case m.tool == ToolSquiggle:
		m.anchor = p.Pos
		m.creating = shape.NewSquiggle(m.host.Style(), p.Pos)
		m.state = Creating
		m.doc().SetPreview(m.creating)
	case m.tool == ToolTriangle, m.tool == ToolPolyline:
		m.place(p)
	}
}

// Drag handles pointer motion with a button held.
func (m *Machine) Drag(p Pointer) {
	switch m.state {
	case Moving:
		m.dragMoving(p)
	case Creating:
		m.dragCreating(p)
	case BoxSelecting:
		m.band.Box = geom.RectFromPoints(m.anchor, p.Pos)
		m.doc().SetPreview(m.band)
	}
}

func (m *Machine) dragMoving(p Pointer) {
	bounds := make([]geom.Rect, len(m.moving))
	for i, s := range m.moving {
		bounds[i] = s.Bounds()
	}
	w, h := m.host.Canvas()
	dx, dy := m.group.Step(p.Pos, bounds, w, h)
	if dx != 0 || dy != 0 {
		m.doc().Offset(m.moving, dx, dy)
	}
}

func (m *Machine) dragCreating(p Pointer) {
	switch sh := m.creating.(type) {
	case *shape.Squiggle:
		sh.AddPoint(p.Pos)
		m.doc().SetPreview(sh)
	case shape.Spanner:
		sh.Span(m.anchor, p.Pos)
		m.doc().SetPreview(sh)
	case nil:
		if m.anchor.Dist(p.Pos) <= DragThreshold {
			return
		}
		kind, _ := m.tool.Kind()
		created, ok := shape.Create(kind, m.host.Style(), m.anchor, p.Pos)
		if !ok {
			return
		}
		m.creating = created
		m.doc().SetPreview(created)
	}
}

// Release handles a button going up and ends the gesture.
func (m *Machine) Release(p Pointer) {
	defer func() { m.clearedSelection = false }()
	switch m.state {
	case Moving:
		m.finishMove()
	case Creating:
		m.finishCreate(p)
	case BoxSelecting:
		m.finishBox(p)
	}
}

func (m *Machine) finishMove() {
	moving, total := m.moving, m.group.Total
	moved := m.group.Moved()
	m.moving = nil
	m.state = Idle
	doc := m.doc()
	if !moved {
		if total.X != 0 || total.Y != 0 {
			doc.Offset(moving, -total.X, -total.Y)
		}
		return
	}
	doc.Batch(func() {
		// replay the live drag as one recorded step
		doc.Offset(moving, -total.X, -total.Y)
		m.host.History().Execute(command.NewMove(doc, moving, total.X, total.Y))
	})
}

func (m *Machine) finishCreate(p Pointer) {
	created := m.creating
	m.creating = nil
	m.state = Idle
	doc := m.doc()
	if created == nil {
		return
	}
	if sp, ok := created.(shape.Spanner); ok {
		sp.Span(m.anchor, p.Pos)
	}
	doc.Batch(func() {
		doc.SetPreview(nil)
		if !created.Degenerate() {
			// freehand strokes are added unselected, like polylines
			m.commit(created, created.Kind() != shape.KindSquiggle)
		}
	})
}

func (m *Machine) finishBox(p Pointer) {
	r := geom.RectFromPoints(m.anchor, p.Pos)
	m.band = nil
	m.state = Idle
	doc := m.doc()
	doc.Batch(func() {
		doc.SetPreview(nil)
		doc.SelectMany(doc.Overlapping(r))
	})
}

// commit records the addition of s, selecting it when asked.
func (m *Machine) commit(s shape.Shape, selectIt bool) {
	doc := m.doc()
	doc.Batch(func() {
		m.host.History().Execute(command.NewAdd(doc, s))
		if selectIt {
			doc.Select(s)
		}
	})
}

// place adds one vertex for the multi-click tools.
func (m *Machine) place(p Pointer) {
	switch m.tool {
	case ToolTriangle:
		m.placeTriangle(p)
	case ToolPolyline:
		m.placePolyline(p)
	}
}

func (m *Machine) placeTriangle(p Pointer) {
	m.vertices = append(m.vertices, p.Pos)
	doc := m.doc()
	if len(m.vertices) < 3 {
		doc.SetPreview(shape.NewMarkers(m.host.Style().Color, m.vertices...))
		return
	}
	pts := m.vertices
	m.vertices = nil
	t, ok := shape.Create(shape.KindTriangle, m.host.Style(), pts...)
	doc.Batch(func() {
		doc.SetPreview(nil)
		if ok && !t.Degenerate() {
			m.commit(t, true)
		}
	})
}

func (m *Machine) placePolyline(p Pointer) {
	doc := m.doc()
	if m.polyline == nil {
		m.polyline = shape.NewPolyline(m.host.Style())
	}
	m.polyline.AddPoint(p.Pos)
	m.polyline.ClearPreview()
	if p.Clicks >= 2 && m.polyline.Len() >= 2 {
		m.finishPolyline()
		return
	}
	doc.SetPreview(m.polyline)
}

// finishPolyline commits the polyline when it has a segment and always
// ends construction.
func (m *Machine) finishPolyline() {
	pl := m.polyline
	m.polyline = nil
	pl.ClearPreview()
	doc := m.doc()
	doc.Batch(func() {
		doc.SetPreview(nil)
		if !pl.Degenerate() {
			m.commit(pl, false)
		}
	})
}

func (m *Machine) secondaryPress() {
	switch {
	case m.polyline != nil:
		m.finishPolyline()
	case len(m.vertices) > 0:
		m.vertices = nil
		m.doc().SetPreview(nil)
	}
}

// Hover handles pointer motion with no button held.
func (m *Machine) Hover(p Pointer) {
	if m.polyline == nil || m.state == Moving {
		return
	}
	m.polyline.SetPreview(p.Pos)
	m.doc().SetPreview(m.polyline)
}

// Exit handles the pointer leaving the canvas.
func (m *Machine) Exit() {
	if m.polyline == nil {
		return
	}
	m.polyline.ClearPreview()
	m.doc().SetPreview(m.polyline)
}

// Cancel abandons any gesture or construction in progress. A live move is
// reverted without recording anything.
func (m *Machine) Cancel() {
	doc := m.doc()
	doc.Batch(func() {
		if m.state == Moving && (m.group.Total.X != 0 || m.group.Total.Y != 0) {
			doc.Offset(m.moving, -m.group.Total.X, -m.group.Total.Y)
		}
		if m.state != Idle || m.Building() {
			doc.SetPreview(nil)
		}
	})
	*m = Machine{tool: m.tool, host: m.host}
}
