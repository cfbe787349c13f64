// Package config loads vecdraw's rc file and environment overrides.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/theme"
)

// Built-in defaults.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
	DefaultTool         = "select"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Config holds the application configuration. Field tags name the
// VECDRAW_* environment overrides.
type Config struct {
	Theme        string
	ExportDir    string  `split_words:"true"`
	CanvasWidth  int     `split_words:"true"`
	CanvasHeight int     `split_words:"true"`
	Color        string
	LineWidth    float64 `split_words:"true"`
	Fill         string
	Tool         string
	Notify       Notify
	Themes       map[string]*theme.Theme `ignored:"true"`
}

// New creates a new Config with defaults.
func New() *Config {
	st := shape.DefaultStyle()
	return &Config{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Color:        theme.FormatColor(st.Color),
		LineWidth:    st.LineWidth,
		Fill:         st.Fill.String(),
		Tool:         DefaultTool,
		Themes:       make(map[string]*theme.Theme),
	}
}

// Style returns the drawing style the config describes.
func (c *Config) Style() (shape.Style, error) {
	col, err := theme.ParseColor(c.Color)
	if err != nil {
		return shape.Style{}, fmt.Errorf("color: %w", err)
	}
	if c.LineWidth <= 0 {
		return shape.Style{}, fmt.Errorf("line_width must be positive, got %g", c.LineWidth)
	}
	fill, err := shape.ParseFillMode(c.Fill)
	if err != nil {
		return shape.Style{}, fmt.Errorf("fill: %w", err)
	}
	return shape.Style{Color: col, LineWidth: c.LineWidth, Fill: fill}, nil
}

// Canvas returns the canvas extents, rejecting empty ones.
func (c *Config) Canvas() (w, h float64, err error) {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return 0, 0, fmt.Errorf("canvas must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	return float64(c.CanvasWidth), float64(c.CanvasHeight), nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	fmt.Fprintf(&sb, "canvas_width = %d\n", c.CanvasWidth)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.CanvasHeight)
	fmt.Fprintf(&sb, "color = %s\n", c.Color)
	fmt.Fprintf(&sb, "line_width = %g\n", c.LineWidth)
	fmt.Fprintf(&sb, "fill = %s\n", c.Fill)
	fmt.Fprintf(&sb, "tool = %s\n", c.Tool)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		c.Themes[name].WriteTo(&sb)
	}
	return sb.String()
}
