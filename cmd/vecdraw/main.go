package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/config"
	"github.com/example/vecdraw/internal/interact"
	"github.com/example/vecdraw/internal/notify"
	"github.com/example/vecdraw/internal/session"
	"github.com/example/vecdraw/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	exportAlert bool
	copyAlert   bool
	verbose     bool
	systemClip  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	sub := *r
	sub.program = program
	sub.fs = nil
	return &sub
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("vecdraw", flag.ExitOnError),
		program:  "vecdraw",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
	}
	r.fs.BoolVar(&r.exportAlert, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting")
	r.fs.BoolVar(&r.copyAlert, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.verbose, "verbose", false, "log every history action")
	r.fs.BoolVar(&r.systemClip, "system-clipboard", true, "mirror copied shapes to the desktop clipboard as text")

	// Precedence: CLI > Env > Config > Default. Env and config are already
	// merged by the loader.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (light, dark, or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlert)
		r.notifier.Enable(notify.EventCopy, r.copyAlert)
	}
	r.activeTheme = r.loadTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "script":
		cmd, err = parseScriptCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	case "help":
		cmd = &helpCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) loadTheme() *theme.Theme {
	name := r.themeName
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	var inline map[string]*theme.Theme
	if r.config != nil {
		inline = r.config.Themes
	}
	t, err := theme.NewLoader(inline).Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

// newSession starts a session from the effective configuration.
func (r *root) newSession() (*session.Session, error) {
	cfg := r.config
	if cfg == nil {
		cfg = config.New()
	}
	st, err := cfg.Style()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	w, h, err := cfg.Canvas()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	tool, err := interact.ParseTool(cfg.Tool)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	systemClip := r.systemClip
	if systemClip && !clipboard.Available() {
		log.Printf("clipboard: desktop clipboard unavailable, copies stay in the editor")
		systemClip = false
	}
	s := session.New(
		session.WithCanvas(w, h),
		session.WithStyle(st),
		session.WithTool(tool),
		session.WithVerbose(r.verbose),
		session.WithSystemClipboard(systemClip),
	)
	if r.verbose {
		log.Printf("session %s: canvas %gx%g tool %s", s.ID, w, h, tool)
	}
	return s, nil
}

// background is the export page color.
func (r *root) background() color.Color {
	if r.activeTheme == nil {
		return color.White
	}
	return r.activeTheme.Canvas
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
