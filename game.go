package main

import (
	"context"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/overlay"
)

// Game hosts the field in an ebiten window. Ebiten calls Update, Draw and
// Layout from one goroutine, so a resize never lands mid-frame.
type Game struct {
	ctx    context.Context
	cfg    config.Config
	fc     field.Config
	rng    *rand.Rand
	field  *field.Field
	layer  *ebiten.Image // field is drawn here, then over the background
	bg     color.RGBA
	paused bool

	// Overlays; nil when disabled
	loader  *overlay.Loader
	cursor  *overlay.Cursor
	typer   *overlay.Typewriter
	elapsed time.Duration
	tick    time.Duration // zero when synced to the display; see advance
	last    time.Time

	width, height int
}

// NewGame creates the field for the configured window size.
func NewGame(ctx context.Context, cfg config.Config, fc field.Config, rng *rand.Rand) *Game {
	g := &Game{
		ctx:    ctx,
		cfg:    cfg,
		fc:     fc,
		rng:    rng,
		bg:     cfg.Background(),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	if cfg.Window.TPS > 0 {
		g.tick = time.Second / time.Duration(cfg.Window.TPS)
	}
	g.field = field.New(fc, float64(g.width), float64(g.height), rng)
	if cfg.Overlay.Loader {
		l := overlay.NewLoader()
		g.loader = &l
	}
	if cfg.Overlay.Cursor {
		g.cursor = overlay.NewCursor()
	}
	if cfg.Overlay.Typewriter {
		g.typer = overlay.NewTypewriter(cfg.Overlay.Role)
	}
	return g
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field = field.New(g.fc, float64(g.width), float64(g.height), g.rng)
	}

	dt := g.advance(time.Now())
	if g.cursor != nil {
		mx, my := ebiten.CursorPosition()
		g.cursor.Move(float64(mx), float64(my))
	}
	if g.typer != nil {
		g.typer.Advance(dt)
	}
	return nil
}

// advance moves the overlay clock by one update. With a fixed TPS every
// update is one tick; synced to the display, it is the wall time since the
// previous update.
func (g *Game) advance(now time.Time) time.Duration {
	dt := g.tick
	if dt == 0 {
		if !g.last.IsZero() {
			dt = now.Sub(g.last)
		}
		g.last = now
	}
	g.elapsed += dt
	return dt
}

// loaderAlpha is the loading cover opacity; the loader is dropped once it
// has faded out.
func (g *Game) loaderAlpha() float64 {
	if g.loader == nil {
		return 0
	}
	if g.loader.Done(g.elapsed) {
		g.loader = nil
		return 0
	}
	return g.loader.Alpha(g.elapsed)
}

// Draw runs one field frame per rendered frame, like a browser animation
// frame callback: clear, step and draw every particle, then the links.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.layer == nil || g.layer.Bounds().Dx() != g.width || g.layer.Bounds().Dy() != g.height {
		g.layer = ebiten.NewImage(g.width, g.height)
	}
	s := ebitenSurface{img: g.layer}
	if g.paused {
		g.field.Render(s)
	} else {
		g.field.Frame(s)
	}

	screen.Fill(g.bg)
	screen.DrawImage(g.layer, nil)
	g.drawOverlays(screen)
}

func (g *Game) drawOverlays(screen *ebiten.Image) {
	if g.typer != nil {
		ebitenutil.DebugPrintAt(screen, g.typer.Text()+"|", 24, g.height/2)
	}
	if g.cursor != nil {
		g.cursor.Tick()
		vector.DrawFilledCircle(screen, float32(g.cursor.DotX), float32(g.cursor.DotY), 4, g.fc.Palette.Accent, true)
		a := g.fc.Palette.Accent
		ring := color.NRGBA{R: a.R, G: a.G, B: a.B, A: 0x80}
		vector.StrokeCircle(screen, float32(g.cursor.RingX), float32(g.cursor.RingY), 18, 1.5, ring, true)
	}
	if a := g.loaderAlpha(); a > 0 {
		cover := color.NRGBA{R: g.bg.R, G: g.bg.G, B: g.bg.B, A: uint8(a*255 + 0.5)}
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), cover, false)
	}
}

// Layout follows the window size; the field keeps its particles and simply
// renders into the new bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

func runWindow(ctx context.Context, cfg config.Config, fc field.Config, rng *rand.Rand) error {
	g := NewGame(ctx, cfg, fc, rng)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)
	if g.cursor != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	return ebiten.RunGame(g)
}
