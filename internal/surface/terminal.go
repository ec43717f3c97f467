package surface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal draws into a tcell screen. Each cell covers CellW×CellH surface
// units; partial alpha is approximated by blending towards the background.
type Terminal struct {
	Screen       tcell.Screen
	CellW, CellH float64
	// LineGain multiplies connection alpha. Cells cannot hold sub-cell
	// strokes, so faint lines would otherwise vanish entirely.
	LineGain float64

	bg      colorful.Color
	bgStyle tcell.Style
}

// NewTerminal uses 8×16 unit cells and no line gain.
func NewTerminal(s tcell.Screen, bg color.RGBA) *Terminal {
	t := &Terminal{Screen: s, CellW: 8, CellH: 16, LineGain: 1}
	t.SetBackground(bg)
	return t
}

// SetBackground sets the color cleared to and blended towards.
func (t *Terminal) SetBackground(bg color.RGBA) {
	t.bg, _ = colorful.MakeColor(bg)
	t.bgStyle = tcell.StyleDefault.Background(toTcell(t.bg))
}

// Bounds is the screen size in surface units.
func (t *Terminal) Bounds() (w, h float64) {
	cols, rows := t.Screen.Size()
	return float64(cols) * t.CellW, float64(rows) * t.CellH
}

func (t *Terminal) cell(x, y float64) (int, int) {
	return int(math.Floor(x / t.CellW)), int(math.Floor(y / t.CellH))
}

func (t *Terminal) inside(cx, cy int) bool {
	cols, rows := t.Screen.Size()
	return cx >= 0 && cy >= 0 && cx < cols && cy < rows
}

// ClearRect blanks every cell the rectangle touches.
func (t *Terminal) ClearRect(x, y, w, h float64) {
	x0, y0 := t.cell(x, y)
	x1, y1 := t.cell(x+w-1, y+h-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if t.inside(cx, cy) {
				t.Screen.SetContent(cx, cy, ' ', nil, t.bgStyle)
			}
		}
	}
}

// FillCircle marks the cell under the center with a glyph sized by r.
func (t *Terminal) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	cx, cy := t.cell(x, y)
	if !t.inside(cx, cy) {
		return
	}
	glyph := '·'
	switch {
	case r >= 1.6:
		glyph = '●'
	case r >= 1:
		glyph = '•'
	}
	t.Screen.SetContent(cx, cy, glyph, nil, t.style(c, alpha))
}

// StrokeLine walks the cells between the end points and marks the empty
// ones, leaving particles on top.
func (t *Terminal) StrokeLine(x0, y0, x1, y1, _ float64, c color.RGBA, alpha float64) {
	st := t.style(c, alpha*t.LineGain)
	ax, ay := t.cell(x0, y0)
	bx, by := t.cell(x1, y1)
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := sign(bx-ax), sign(by-ay)
	e := dx + dy
	for {
		if t.inside(ax, ay) {
			if r, _, _, _ := t.Screen.GetContent(ax, ay); r == ' ' {
				t.Screen.SetContent(ax, ay, '·', nil, st)
			}
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (t *Terminal) style(c color.RGBA, alpha float64) tcell.Style {
	fg, _ := colorful.MakeColor(c)
	return t.bgStyle.Foreground(toTcell(t.bg.BlendRgb(fg, clamp01(alpha))))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
