// Package field simulates a fixed population of rising specks joined by
// faint proximity lines.
package field

// Field owns the particle population and the dimensions of the surface it
// renders into. It is not safe for concurrent use; hosts drive it from a
// single goroutine.
type Field struct {
	cfg           Config
	particles     []Particle
	width, height float64
	rng           Random
	grid          *Grid
	links         []Link
}

// New allocates cfg.Particles particles spread over a w×h surface.
func New(cfg Config, w, h float64, rng Random) *Field {
	f := &Field{
		cfg:       cfg,
		particles: make([]Particle, cfg.Particles),
		width:     w,
		height:    h,
		rng:       rng,
		grid:      NewGrid(cfg.LinkDistance),
	}
	for i := range f.particles {
		Reset(&f.particles[i], rng, w, h, true, &f.cfg)
	}
	return f
}

// NewFrom adopts ps as the population instead of rolling fresh particles.
// The field keeps ps; cfg.Particles is ignored.
func NewFrom(cfg Config, w, h float64, rng Random, ps []Particle) *Field {
	cfg.Particles = len(ps)
	return &Field{
		cfg:       cfg,
		particles: ps,
		width:     w,
		height:    h,
		rng:       rng,
		grid:      NewGrid(cfg.LinkDistance),
	}
}

// Len is the population size; it never changes.
func (f *Field) Len() int { return len(f.particles) }

// Size is the current surface size.
func (f *Field) Size() (w, h float64) { return f.width, f.height }

// Particles returns the live population. Callers must not retain it across
// frames.
func (f *Field) Particles() []Particle { return f.particles }

// Resize changes the surface dimensions. Particles keep their positions and
// may sit outside the new bounds until they drift back or are recycled.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
}

// Step advances every particle by one frame and recycles those that
// drifted off the top. It returns the number recycled.
func (f *Field) Step() int {
	n := 0
	for i := range f.particles {
		if f.advance(i) {
			n++
		}
	}
	return n
}

func (f *Field) advance(i int) bool {
	p := &f.particles[i]
	if !Advance(p, f.cfg.ExitY) {
		return false
	}
	Reset(p, f.rng, f.width, f.height, false, &f.cfg)
	return true
}

// Links returns the current connection lines with their alpha filled in.
// The slice is reused by the next call.
func (f *Field) Links() []Link {
	f.links = f.links[:0]
	if f.cfg.useGrid(len(f.particles)) {
		f.grid.Build(f.particles)
		f.links = f.grid.Connections(f.links, f.particles)
	} else {
		f.links = Connections(f.links, f.particles, f.cfg.LinkDistance)
	}
	for k := range f.links {
		f.links[k].Alpha = LinkAlpha(f.links[k].D, f.cfg.LinkDistance, f.cfg.LinkOpacity)
	}
	return f.links
}

// Frame runs one full update-and-render cycle: clear, step and draw each
// particle, then draw the connection lines between post-step positions.
func (f *Field) Frame(s Surface) {
	s.ClearRect(0, 0, f.width, f.height)
	for i := range f.particles {
		f.advance(i)
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.R, p.Color, p.A)
	}
	f.DrawLinks(s)
}

// Render draws the current state without stepping, e.g. while paused.
func (f *Field) Render(s Surface) {
	s.ClearRect(0, 0, f.width, f.height)
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.R, p.Color, p.A)
	}
	f.DrawLinks(s)
}

// DrawLinks strokes every current connection line.
func (f *Field) DrawLinks(s Surface) {
	for _, l := range f.Links() {
		a, b := &f.particles[l.I], &f.particles[l.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, f.cfg.LinkColor, l.Alpha)
	}
}
