package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/vecdraw/internal/shape"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
export_dir = /tmp/drawings
canvas_width = 1024
canvas_height = "768"
color = #FF0000
line_width = 4.5
fill = filled
tool = oval

[notify]
export = true
copy = false

[theme.my_custom_theme]
Background = #111111
Selection: #FF00FF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.ExportDir != "/tmp/drawings" {
		t.Errorf("Expected export_dir '/tmp/drawings', got '%s'", cfg.ExportDir)
	}
	if cfg.CanvasWidth != 1024 || cfg.CanvasHeight != 768 {
		t.Errorf("canvas %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.Tool != "oval" {
		t.Errorf("tool %q", cfg.Tool)
	}
	if !cfg.Notify.Export || cfg.Notify.Copy {
		t.Errorf("notify %+v", cfg.Notify)
	}

	st, err := cfg.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	want := shape.Style{Color: color.RGBA{255, 0, 0, 255}, LineWidth: 4.5, Fill: shape.Filled}
	if st != want {
		t.Errorf("style %+v want %+v", st, want)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background != (color.RGBA{0x11, 0x11, 0x11, 255}) || th.Selection != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("Unexpected theme colors: %+v", th)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"canvas_width = wide\n",
		"[notify]\nexport = maybe\n",
		"[theme.x]\nCanvas = #12\n",
	}
	for _, in := range tests {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestDefaults(t *testing.T) {
	cfg := New()
	st, err := cfg.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if st != shape.DefaultStyle() {
		t.Errorf("default style %+v", st)
	}
	w, h, err := cfg.Canvas()
	if err != nil || w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Errorf("canvas %vx%v %v", w, h, err)
	}
	cfg.CanvasWidth = 0
	if _, _, err := cfg.Canvas(); err == nil {
		t.Errorf("expected error for an empty canvas")
	}
	cfg.LineWidth = 0
	if _, err := cfg.Style(); err == nil {
		t.Errorf("expected error for zero line width")
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
export_dir = /home/user/drawings
color = dodgerblue

[notify]
export = true
copy = true

[theme.custom]
Name = custom
Background = #000000
Canvas = #FFFFFF80
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.String() != cfg2.String() {
		t.Errorf("rendering changed:\n%s\n---\n%s", cfg, cfg2)
	}
	t1, t2 := cfg.Themes["custom"], cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("VECDRAW_CANVAS_WIDTH", "640")
	t.Setenv("VECDRAW_LINE_WIDTH", "3")
	t.Setenv("VECDRAW_NOTIFY_COPY", "true")
	cfg := New()
	cfg.Theme = "from-file"
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.CanvasWidth != 640 || cfg.LineWidth != 3 || !cfg.Notify.Copy {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Theme != "from-file" || cfg.CanvasHeight != DefaultCanvasHeight {
		t.Errorf("unset variables changed fields: %+v", cfg)
	}

	t.Setenv("VECDRAW_CANVAS_HEIGHT", "tall")
	if err := ApplyEnv(cfg); err == nil {
		t.Errorf("expected error for a bad integer")
	}
}

func TestLoaderPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	l := NewLoader("v1.0.0", "")
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("expected no config, got %s", p)
	}

	fallback := filepath.Join(home, ".config", "vecdraw", "vecdraw.rc")
	if err := os.MkdirAll(filepath.Dir(fallback), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fallback, []byte("tool = circle\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if p := l.GetConfigPath(); p != fallback {
		t.Fatalf("path %q want %q", p, fallback)
	}

	override := filepath.Join(t.TempDir(), "custom.rc")
	cfg := New()
	cfg.Tool = "square"
	if err := Save(cfg, override); err != nil {
		t.Fatalf("Save: %v", err)
	}
	l.OverridePath = override
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Tool != "square" {
		t.Fatalf("override not used: tool %q", loaded.Tool)
	}
}
