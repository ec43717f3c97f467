package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface draws into an ebiten image as a field.Surface.
type ebitenSurface struct {
	img *ebiten.Image
}

// ClearRect clears the covered pixels to transparent.
func (e ebitenSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	if r.Eq(e.img.Bounds()) {
		e.img.Clear()
		return
	}
	e.img.SubImage(r).(*ebiten.Image).Clear()
}

// FillCircle fills an antialiased disc.
func (e ebitenSurface) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	vector.DrawFilledCircle(e.img, float32(x), float32(y), float32(r), withAlpha(c, alpha), true)
}

// StrokeLine strokes an antialiased segment.
func (e ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64) {
	vector.StrokeLine(e.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), withAlpha(c, alpha), true)
}

// withAlpha scales the color's own alpha by a global alpha.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := float64(c.A) * min(max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a + 0.5)}
}
