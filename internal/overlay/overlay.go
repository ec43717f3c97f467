// Package overlay holds the small page effects layered over the field: the
// loading fade, the cursor follower and the typewriter banner.
package overlay

import "time"

// Loader is an opaque cover that lifts once the field has had time to fill
// the screen.
type Loader struct {
	Hold time.Duration
	Fade time.Duration
}

// NewLoader holds for one second and fades over 600ms.
func NewLoader() Loader {
	return Loader{Hold: time.Second, Fade: 600 * time.Millisecond}
}

// Alpha is the cover opacity elapsed after start.
func (l Loader) Alpha(elapsed time.Duration) float64 {
	switch {
	case elapsed <= l.Hold:
		return 1
	case l.Fade <= 0 || elapsed >= l.Hold+l.Fade:
		return 0
	}
	return 1 - float64(elapsed-l.Hold)/float64(l.Fade)
}

// Done reports whether the cover is fully gone.
func (l Loader) Done(elapsed time.Duration) bool {
	return l.Alpha(elapsed) == 0
}

// Cursor tracks the pointer with a dot that follows exactly and a ring that
// eases after it.
type Cursor struct {
	DotX, DotY   float64
	RingX, RingY float64
	Ease         float64
}

// NewCursor starts off-screen with a 13% ring ease.
func NewCursor() *Cursor {
	return &Cursor{DotX: -200, DotY: -200, RingX: -200, RingY: -200, Ease: 0.13}
}

// Move records a new pointer position.
func (c *Cursor) Move(x, y float64) {
	c.DotX, c.DotY = x, y
}

// Tick closes Ease of the remaining ring-to-dot gap. Call once per frame.
func (c *Cursor) Tick() {
	c.RingX += (c.DotX - c.RingX) * c.Ease
	c.RingY += (c.DotY - c.RingY) * c.Ease
}
