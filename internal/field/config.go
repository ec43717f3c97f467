package field

import (
	"fmt"
	"image/color"
)

// Partition selects how connection pairs are found.
type Partition string

const (
	PartitionAuto Partition = "auto" // bins above GridThreshold particles
	PartitionOn   Partition = "on"
	PartitionOff  Partition = "off"
)

// GridThreshold is the population above which PartitionAuto switches to
// spatial bins. The all-pairs pass is O(n²) and stops being cheap past a
// few hundred particles.
const GridThreshold = 300

// Palette holds the two speck colors.
type Palette struct {
	Accent       color.RGBA
	Muted        color.RGBA
	AccentChance float64
}

func (pl Palette) pick(rng Random) color.RGBA {
	if rng.Float64() > 1-pl.AccentChance {
		return pl.Accent
	}
	return pl.Muted
}

// Config tunes a Field. Zero values are not usable; start from
// DefaultConfig. ExitY sits at or above the top edge and SpawnOffset is
// non-negative, so a recycled particle always re-enters at or below the
// bottom edge.
type Config struct {
	Particles    int
	LinkDistance float64
	LinkOpacity  float64
	LinkWidth    float64
	LinkColor    color.RGBA
	ExitY        float64
	SpawnOffset  float64
	Partition    Partition
	Palette      Palette
}

// Default speck colors.
var (
	Accent = color.RGBA{0xe9, 0x3b, 0x67, 0xff}
	Muted  = color.RGBA{0xb0, 0xc4, 0xc3, 0xff}
)

// DefaultConfig returns the stock field: 70 particles, 110-unit links.
func DefaultConfig() Config {
	return Config{
		Particles:    70,
		LinkDistance: 110,
		LinkOpacity:  0.07,
		LinkWidth:    0.6,
		LinkColor:    Accent,
		ExitY:        -8,
		SpawnOffset:  5,
		Partition:    PartitionAuto,
		Palette: Palette{
			Accent:       Accent,
			Muted:        Muted,
			AccentChance: 0.45,
		},
	}
}

// Validate reports the first setting that cannot drive a field.
func (c Config) Validate() error {
	switch {
	case c.Particles < 0:
		return fmt.Errorf("particles must be non-negative, got %d", c.Particles)
	case c.LinkDistance <= 0:
		return fmt.Errorf("link distance must be positive, got %g", c.LinkDistance)
	case c.LinkOpacity < 0 || c.LinkOpacity > 1:
		return fmt.Errorf("link opacity must be in [0,1], got %g", c.LinkOpacity)
	case c.LinkWidth <= 0:
		return fmt.Errorf("link width must be positive, got %g", c.LinkWidth)
	case c.ExitY > 0:
		return fmt.Errorf("exit line must be at or above the top edge, got %g", c.ExitY)
	case c.SpawnOffset < 0:
		return fmt.Errorf("spawn offset must be non-negative, got %g", c.SpawnOffset)
	case c.Palette.AccentChance < 0 || c.Palette.AccentChance > 1:
		return fmt.Errorf("accent chance must be in [0,1], got %g", c.Palette.AccentChance)
	}
	switch c.Partition {
	case PartitionAuto, PartitionOn, PartitionOff:
	default:
		return fmt.Errorf("unknown partition mode %q", c.Partition)
	}
	return nil
}

func (c Config) useGrid(n int) bool {
	switch c.Partition {
	case PartitionOn:
		return true
	case PartitionOff:
		return false
	}
	return n > GridThreshold
}
