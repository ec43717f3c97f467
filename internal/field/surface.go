package field

import (
	"errors"
	"image/color"
)

//go:generate go tool mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

// ErrNoSurface is returned when a host has nothing usable to draw on. The
// field is never started in that case.
var ErrNoSurface = errors.New("field: no drawing surface available")

// Surface is the 2D drawing target a frame renders into. Alpha is the global
// alpha applied on top of the color's own.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64)
}
