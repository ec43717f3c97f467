// Package config reads the gcfg (INI-style) settings file.
package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/gcfg.v1"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Example is a settings file spelling out every default.
const Example = `[Field]

# Number of particles. The population never changes while running.
Particles = 70

# Particles closer than LinkDistance are joined by a line whose opacity
# falls from LinkOpacity to zero at that distance.
LinkDistance = 110
LinkOpacity = 0.07
LinkWidth = 0.6

# A particle is recycled once it rises above ExitY and re-enters
# SpawnOffset below the bottom edge.
ExitY = -8
SpawnOffset = 5

# How link pairs are found: off checks every pair, on uses spatial bins,
# auto switches to bins above 300 particles.
Partition = auto

[Palette]

# Colors are quoted: an unquoted # starts a comment.

Accent = "#e93b67"
Muted = "#b0c4c3"
Link = "#e93b67"
Background = "#0d0e10"

# Chance that a particle takes the accent color.
AccentChance = 0.45

[Window]

Width = 1280
Height = 800
Title = Particle Field
# Updates per second; -1 follows the display refresh rate.
TPS = 60

[Overlay]

Loader = true
Cursor = true
Typewriter = true
# Role may be repeated; leave unset for the built-in roles.
# Role = Full-Stack Developer

[Terminal]

# Surface units covered by one terminal cell.
CellWidth = 8
CellHeight = 16
LineGain = 4
FPS = 30`

// FieldConfig is the [Field] section.
type FieldConfig struct {
	Particles    int
	LinkDistance float64
	LinkOpacity  float64
	LinkWidth    float64
	ExitY        float64
	SpawnOffset  float64
	Partition    string
}

// PaletteConfig is the [Palette] section; colors are hex strings.
type PaletteConfig struct {
	Accent       string
	Muted        string
	Link         string
	Background   string
	AccentChance float64
}

// WindowConfig is the [Window] section.
type WindowConfig struct {
	Width, Height int
	Title         string
	TPS           int
}

// OverlayConfig is the [Overlay] section. Role may repeat.
type OverlayConfig struct {
	Loader     bool
	Cursor     bool
	Typewriter bool
	Role       []string
}

// TerminalConfig is the [Terminal] section.
type TerminalConfig struct {
	CellWidth  float64
	CellHeight float64
	LineGain   float64
	FPS        int
}

// Config is the whole settings file.
type Config struct {
	Field    FieldConfig
	Palette  PaletteConfig
	Window   WindowConfig
	Overlay  OverlayConfig
	Terminal TerminalConfig
}

// Default returns the settings used when no file is given.
func Default() Config {
	fc := field.DefaultConfig()
	return Config{
		Field: FieldConfig{
			Particles:    fc.Particles,
			LinkDistance: fc.LinkDistance,
			LinkOpacity:  fc.LinkOpacity,
			LinkWidth:    fc.LinkWidth,
			ExitY:        fc.ExitY,
			SpawnOffset:  fc.SpawnOffset,
			Partition:    string(fc.Partition),
		},
		Palette: PaletteConfig{
			Accent:       "#e93b67",
			Muted:        "#b0c4c3",
			Link:         "#e93b67",
			Background:   "#0d0e10",
			AccentChance: fc.Palette.AccentChance,
		},
		Window:   WindowConfig{Width: 1280, Height: 800, Title: "Particle Field", TPS: 60},
		Overlay:  OverlayConfig{Loader: true, Cursor: true, Typewriter: true},
		Terminal: TerminalConfig{CellWidth: 8, CellHeight: 16, LineGain: 4, FPS: 30},
	}
}

// Load reads fname over the defaults. Keys missing from the file keep their
// default values.
func Load(fname string) (Config, error) {
	c := Default()
	if err := gcfg.ReadFileInto(&c, fname); err != nil {
		return c, fmt.Errorf("read config %s: %w", fname, err)
	}
	return c, c.Validate()
}

// Parse is Load for an in-memory file.
func Parse(s string) (Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(&c, s); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

// SyncWithFPS as Window.TPS ties updates to the display refresh rate. It
// mirrors ebiten.SyncWithFPS so this package stays free of the windowing
// stack.
const SyncWithFPS = -1

// Validate reports the first setting that cannot be run.
func (c Config) Validate() error {
	if _, err := c.Simulation(); err != nil {
		return err
	}
	if _, err := parseColor("Background", c.Palette.Background); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 && c.Window.TPS != SyncWithFPS {
		return fmt.Errorf("window TPS must be positive or %d, got %d", SyncWithFPS, c.Window.TPS)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell %gx%g must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	return nil
}

// Simulation converts the [Field] and [Palette] sections.
func (c Config) Simulation() (field.Config, error) {
	fc := field.Config{
		Particles:    c.Field.Particles,
		LinkDistance: c.Field.LinkDistance,
		LinkOpacity:  c.Field.LinkOpacity,
		LinkWidth:    c.Field.LinkWidth,
		ExitY:        c.Field.ExitY,
		SpawnOffset:  c.Field.SpawnOffset,
		Partition:    field.Partition(c.Field.Partition),
	}
	var err error
	if fc.Palette.Accent, err = parseColor("Accent", c.Palette.Accent); err != nil {
		return fc, err
	}
	if fc.Palette.Muted, err = parseColor("Muted", c.Palette.Muted); err != nil {
		return fc, err
	}
	if fc.LinkColor, err = parseColor("Link", c.Palette.Link); err != nil {
		return fc, err
	}
	fc.Palette.AccentChance = c.Palette.AccentChance
	return fc, fc.Validate()
}

// Background is the page color behind the field.
func (c Config) Background() color.RGBA {
	bg, err := parseColor("Background", c.Palette.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return bg
}

func parseColor(name, hex string) (color.RGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette %s %q: %w", name, hex, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
