package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math/rand"
	"os"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/surface"
)

// renderSnapshot runs frames field frames offscreen and returns the last
// one, composited over the background unless transparent is set.
func renderSnapshot(cfg config.Config, fc field.Config, rng *rand.Rand, frames int, transparent bool) (image.Image, error) {
	cv, err := surface.NewCanvas(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, err
	}
	f := field.New(fc, float64(cfg.Window.Width), float64(cfg.Window.Height), rng)
	for i := 0; i < frames; i++ {
		f.Frame(cv)
	}
	if transparent {
		return cv.Image(), nil
	}
	out := image.NewRGBA(cv.Image().Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(cfg.Background()), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), cv.Image(), image.Point{}, draw.Over)
	return out, nil
}

func writeSnapshot(fname string, cfg config.Config, fc field.Config, rng *rand.Rand, frames int, transparent bool) error {
	img, err := renderSnapshot(cfg, fc, rng, frames, transparent)
	if err != nil {
		return err
	}
	file, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	log.Printf("wrote %s after %d frames", fname, frames)
	return file.Close()
}
