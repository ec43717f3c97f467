// Package surface adapts headless drawing backends to field.Surface. The
// ebiten window adapter lives with the window host.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Canvas renders through the HTML5-style canvas API on a pure Go software
// backend, so frames can be produced without a window or GPU.
type Canvas struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
}

// NewCanvas returns a w×h offscreen canvas, or field.ErrNoSurface when the
// size cannot hold a single pixel.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", w, h, field.ErrNoSurface)
	}
	b := softwarebackend.New(w, h)
	return &Canvas{backend: b, cv: canvas.New(b)}, nil
}

// Size is the canvas size in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.cv.Width(), c.cv.Height()
}

// Image is the backing image; it holds the last drawn frame.
func (c *Canvas) Image() *image.RGBA { return c.backend.Image }

// ClearRect clears to transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.cv.ClearRect(x, y, w, h)
}

// FillCircle fills a full arc.
func (c *Canvas) FillCircle(x, y, r float64, col color.RGBA, alpha float64) {
	c.cv.BeginPath()
	c.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	c.cv.SetFillStyle(col)
	c.cv.SetGlobalAlpha(alpha)
	c.cv.Fill()
}

// StrokeLine strokes a single segment.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.RGBA, alpha float64) {
	c.cv.BeginPath()
	c.cv.MoveTo(x0, y0)
	c.cv.LineTo(x1, y1)
	c.cv.SetStrokeStyle(col)
	c.cv.SetGlobalAlpha(alpha)
	c.cv.SetLineWidth(width)
	c.cv.Stroke()
}
