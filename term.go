package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/loop"
	"github.com/olivierh59500/particle-field-go/internal/surface"
)

// runTerminal renders the field into the terminal until ctx is done or the
// user presses q, Esc or Ctrl-C.
func runTerminal(ctx context.Context, cfg config.Config, fc field.Config, rng *rand.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", field.ErrNoSurface, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", field.ErrNoSurface, err)
	}
	screen.HideCursor()
	return termSession(ctx, screen, cfg, fc, rng)
}

// termSession owns screen from here on and finalizes it before returning.
func termSession(ctx context.Context, screen tcell.Screen, cfg config.Config, fc field.Config, rng *rand.Rand) error {
	term := surface.NewTerminal(screen, cfg.Background())
	term.CellW, term.CellH = cfg.Terminal.CellWidth, cfg.Terminal.CellHeight
	term.LineGain = cfg.Terminal.LineGain

	w, h := term.Bounds()
	f := field.New(fc, w, h, rng)
	frames := loop.New(cfg.Terminal.FPS, func() error {
		f.Frame(term)
		screen.Show()
		return nil
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return frames.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		screen.Fini()
		return nil
	})
	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventResize:
				err := frames.Post(ctx, func() {
					screen.Sync()
					f.Resize(term.Bounds())
				})
				if err != nil {
					return nil
				}
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					return nil
				}
			}
		}
	})

	err := g.Wait()
	log.Printf("terminal session ended after %d frames", frames.Frames())
	return err
}
