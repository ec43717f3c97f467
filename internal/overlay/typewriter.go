package overlay

import "time"

// DefaultRoles are typed when no roles are configured.
var DefaultRoles = []string{
	"Full-Stack Developer",
	"Frontend Engineer",
	"Vue & React Expert",
	"UI / UX Enthusiast",
	"Problem Solver",
}

// Typewriter types each role a rune at a time, holds it, deletes it and
// moves to the next one.
type Typewriter struct {
	Roles  []string
	Start  time.Duration
	Type   time.Duration
	Delete time.Duration
	Hold   time.Duration

	role     int
	n        int
	deleting bool
	wait     time.Duration
}

// NewTypewriter cycles roles, skipping empty ones, with the page timings.
func NewTypewriter(roles []string) *Typewriter {
	var kept []string
	for _, r := range roles {
		if r != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = DefaultRoles
	}
	tw := &Typewriter{
		Roles:  kept,
		Start:  600 * time.Millisecond,
		Type:   75 * time.Millisecond,
		Delete: 45 * time.Millisecond,
		Hold:   1800 * time.Millisecond,
	}
	tw.wait = tw.Start
	return tw
}

// Text is the currently visible part of the current role.
func (tw *Typewriter) Text() string {
	return string([]rune(tw.Roles[tw.role])[:tw.n])
}

// Role is the index of the role being typed.
func (tw *Typewriter) Role() int { return tw.role }

// Advance moves the typewriter forward by dt, running every keystroke that
// fell due.
func (tw *Typewriter) Advance(dt time.Duration) {
	for dt >= tw.wait {
		dt -= tw.wait
		tw.wait = tw.key()
	}
	tw.wait -= dt
}

// key types or deletes one rune and returns the delay before the next.
func (tw *Typewriter) key() time.Duration {
	full := len([]rune(tw.Roles[tw.role]))
	if tw.deleting {
		tw.n--
	} else {
		tw.n++
	}
	switch {
	case !tw.deleting && tw.n == full:
		tw.deleting = true
		return tw.Hold
	case tw.deleting && tw.n == 0:
		tw.deleting = false
		tw.role = (tw.role + 1) % len(tw.Roles)
	}
	if tw.deleting {
		return tw.Delete
	}
	return tw.Type
}
