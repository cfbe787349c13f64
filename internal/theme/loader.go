package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no source defines the requested theme.
var ErrNotFound = errors.New("theme not found")

// Loader finds themes by name or path.
type Loader struct {
	// Inline themes, usually the [theme.<name>] sections of the config
	// file. They win over every other source.
	Inline    map[string]*Theme
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard search directories.
func NewLoader(inline map[string]*Theme) *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		Inline:    inline,
		ConfigDir: filepath.Join(home, ".config", "vecdraw", "themes"),
		SystemDir: "/usr/share/vecdraw/themes",
	}
}

// Load resolves name. An empty name yields Default. Lookup order: inline
// themes, an existing file path, the embedded themes, ConfigDir, SystemDir.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := l.Inline[name]; ok {
		return t, nil
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return parseFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if t, err := parseFile(EmbeddedThemes, "defaults/"+filename); err == nil {
		return t, nil
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		t, err := parseFile(os.DirFS(dir), filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return t, err
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

func parseFile(fsys fs.FS, name string) (*Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return t, nil
}
