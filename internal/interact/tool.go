package interact

import (
	"fmt"
	"strings"

	"github.com/example/vecdraw/internal/shape"
)

// Tool selects which gesture rules apply.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolSquare
	ToolCircle
	ToolOval
	ToolTriangle
	ToolPolyline
	ToolSquiggle
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolSelect, ToolRectangle, ToolSquare, ToolCircle, ToolOval, ToolTriangle, ToolPolyline, ToolSquiggle}

var toolNames = []string{"select", "rectangle", "square", "circle", "oval", "triangle", "polyline", "squiggle"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool accepts a tool name case-insensitively.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "rect" {
		return ToolRectangle, nil
	}
	for i, n := range toolNames {
		if n == s {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// Kind returns the shape kind a creation tool builds.
func (t Tool) Kind() (shape.Kind, bool) {
	switch t {
	case ToolRectangle:
		return shape.KindRectangle, true
	case ToolSquare:
		return shape.KindSquare, true
	case ToolCircle:
		return shape.KindCircle, true
	case ToolOval:
		return shape.KindOval, true
	case ToolTriangle:
		return shape.KindTriangle, true
	case ToolPolyline:
		return shape.KindPolyline, true
	case ToolSquiggle:
		return shape.KindSquiggle, true
	}
	return 0, false
}

// spans reports tools that build a shape by dragging out from an anchor.
func (t Tool) spans() bool {
	return t == ToolRectangle || t == ToolSquare || t == ToolCircle || t == ToolOval
}
