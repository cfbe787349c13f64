// Package notify raises desktop notifications after exports and copies.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/vecdraw/internal/config"
	"github.com/example/vecdraw/internal/platform"
	"github.com/kelseyhightower/envconfig"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventExport emits a notification when a drawing is written to disk.
	EventExport Event = "export"
	// EventCopy emits a notification when data is copied to the clipboard.
	EventCopy Event = "copy"
)

// Preferences describes notification wording. Each template takes one %s
// for the event detail.
type Preferences struct {
	Title      string
	ExportText string `split_words:"true"`
	CopyText   string `split_words:"true"`
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title:      "vecdraw",
		ExportText: "Exported %s",
		CopyText:   "Copied %s to clipboard",
	}
}

// LoadPreferences applies VECDRAW_NOTIFY_TITLE, VECDRAW_NOTIFY_EXPORT_TEXT
// and VECDRAW_NOTIFY_COPY_TEXT over the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if err := envconfig.Process(config.EnvPrefix+"_NOTIFY", &prefs); err != nil {
		log.Printf("notification preferences: %v", err)
		return DefaultPreferences()
	}
	return prefs
}

// Sender delivers one notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications for enabled events.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	return &Notifier{prefs: prefs, enabled: make(map[Event]bool), send: platform.Notify}
}

// FromConfig enables the events switched on in the [notify] section.
func FromConfig(n config.Notify) *Notifier {
	nt := New(LoadPreferences())
	nt.Enable(EventExport, n.Export)
	nt.Enable(EventCopy, n.Copy)
	return nt
}

// WithSender replaces the delivery function.
func (n *Notifier) WithSender(s Sender) *Notifier {
	n.send = s
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Export reports a written file, using it as the icon when it is a PNG.
func (n *Notifier) Export(path string) {
	if !n.enabledFor(EventExport) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil && strings.EqualFold(filepath.Ext(abs), ".png") {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventExport, detail, opts)
}

// Copy reports a clipboard copy.
func (n *Notifier) Copy(detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	switch event {
	case EventExport:
		return n.prefs.ExportText
	case EventCopy:
		return n.prefs.CopyText
	}
	return ""
}
