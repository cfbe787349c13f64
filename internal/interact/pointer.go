package interact

import (
	"time"

	"github.com/example/vecdraw/internal/geom"
	"golang.org/x/mobile/event/mouse"
)

// Pointer is one sample of the pointer stream in canvas coordinates.
type Pointer struct {
	Pos    geom.Point
	Button mouse.Button
	// Clicks counts rapid successive presses; 2 is a double click.
	Clicks int
}

// At is a primary button sample at (x, y).
func At(x, y float64) Pointer {
	return Pointer{Pos: geom.Pt(x, y), Button: mouse.ButtonLeft, Clicks: 1}
}

func (p Pointer) secondary() bool { return p.Button == mouse.ButtonRight }

// ClickCounter derives click counts for backends that only report single
// presses.
type ClickCounter struct {
	Interval time.Duration
	Slop     float64

	last   time.Time
	pos    geom.Point
	button mouse.Button
	n      int
}

// NewClickCounter uses a 400ms double click window and 4 units of slop.
func NewClickCounter() *ClickCounter {
	return &ClickCounter{Interval: 400 * time.Millisecond, Slop: 4}
}

// Press records a press and returns its click count.
func (c *ClickCounter) Press(p geom.Point, b mouse.Button, at time.Time) int {
	if c.n > 0 && b == c.button && at.Sub(c.last) <= c.Interval && p.Dist(c.pos) <= c.Slop {
		c.n++
	} else {
		c.n = 1
	}
	c.last = at
	c.pos = p
	c.button = b
	return c.n
}
