// Package clipboard holds the editor's shape clipboard and mirrors copies
// to the desktop clipboard when one is reachable.
package clipboard

import (
	"strings"

	"github.com/example/vecdraw/internal/shape"
)

// PasteOffset is how far each successive paste shifts on both axes.
const PasteOffset = 20

// Store is the session's shape clipboard.
type Store struct {
	items   []shape.Shape
	counter int
}

// NewStore returns an empty clipboard.
func NewStore() *Store { return &Store{} }

// Copy replaces the contents with clones of shapes and resets the paste
// counter.
func (s *Store) Copy(shapes []shape.Shape) {
	items := make([]shape.Shape, 0, len(shapes))
	for _, sh := range shapes {
		items = append(items, sh.Clone())
	}
	s.items = items
	s.counter = 0
}

// Paste returns fresh clones of the contents offset by PasteOffset times
// the number of pastes since the last copy. An empty clipboard returns nil
// and leaves the counter alone.
func (s *Store) Paste() []shape.Shape {
	if len(s.items) == 0 {
		return nil
	}
	s.counter++
	d := float64(PasteOffset * s.counter)
	out := make([]shape.Shape, 0, len(s.items))
	for _, sh := range s.items {
		c := sh.Clone()
		c.Offset(d, d)
		out = append(out, c)
	}
	return out
}

// Len returns the number of held shapes.
func (s *Store) Len() int { return len(s.items) }

// Empty reports whether there is nothing to paste.
func (s *Store) Empty() bool { return len(s.items) == 0 }

// Counter returns the number of pastes since the last copy.
func (s *Store) Counter() int { return s.counter }

// Summary renders shapes as text, one per line, for the desktop clipboard.
func Summary(shapes []shape.Shape) string {
	var sb strings.Builder
	for _, sh := range shapes {
		sb.WriteString(shape.Describe(sh))
		sb.WriteByte('\n')
	}
	return sb.String()
}
