package field

import (
	"image/color"
)

// Random is the subset of *rand.Rand the field draws from.
type Random interface {
	Float64() float64
}

// Particle is one floating speck. R, A and Color only change on Reset.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, units per frame
	R      float64 // Radius
	A      float64 // Opacity
	Color  color.RGBA
}

// Ranges for the re-rolled attributes. Lower bounds inclusive, upper exclusive.
const (
	MinRadius  = 0.5
	MaxRadius  = 2.1
	MinAlpha   = 0.1
	MaxAlpha   = 0.65
	MaxDriftX  = 0.175
	MinRise    = 0.1
	MaxRise    = 0.55
	radiusSpan = MaxRadius - MinRadius
	alphaSpan  = MaxAlpha - MinAlpha
	riseSpan   = MaxRise - MinRise
)

// Reset re-rolls p in place. Fresh particles are spread over the whole
// surface; recycled ones re-enter just below the bottom edge.
func Reset(p *Particle, rng Random, w, h float64, fresh bool, cfg *Config) {
	p.X = rng.Float64() * w
	if fresh {
		p.Y = rng.Float64() * h
	} else {
		p.Y = h + cfg.SpawnOffset
	}
	p.VX = (rng.Float64() - 0.5) * 2 * MaxDriftX
	p.VY = -(rng.Float64()*riseSpan + MinRise)
	p.R = rng.Float64()*radiusSpan + MinRadius
	p.A = rng.Float64()*alphaSpan + MinAlpha
	p.Color = cfg.Palette.pick(rng)
}

// Advance moves p by one frame of velocity and reports whether it has
// drifted past the top exit line.
func Advance(p *Particle, exitY float64) bool {
	p.X += p.VX
	p.Y += p.VY
	return p.Y < exitY
}
