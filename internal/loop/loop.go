// Package loop drives frame callbacks from a single goroutine.
package loop

import (
	"context"
	"errors"
	"time"
)

// FrameFunc renders one frame. A non-nil error stops the loop.
type FrameFunc func() error

// Loop runs frames at a fixed interval. Work queued with Post runs on the
// same goroutine between frames, so nothing it touches changes mid-frame.
type Loop struct {
	interval time.Duration
	frame    FrameFunc
	queue    chan func()
	frames   uint64
}

// New returns a loop running fps frames per second.
func New(fps int, frame FrameFunc) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		frame:    frame,
		queue:    make(chan func(), 16),
	}
}

// Post queues fn to run on the loop goroutine before the next frame. It
// blocks while the queue is full and gives up when ctx is done.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case l.queue <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Frames reports how many frames have completed. Only meaningful from the
// loop goroutine or after Run returns.
func (l *Loop) Frames() uint64 { return l.frames }

// Run blocks, rendering one frame per tick, until ctx is cancelled or a
// frame fails. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.queue:
			fn()
		case <-ticker.C:
			if err := l.drain(ctx); err != nil {
				return nil
			}
			if err := l.frame(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
			l.frames++
		}
	}
}

// drain runs everything already queued so a frame always sees the latest
// posted state.
func (l *Loop) drain(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		default:
			return nil
		}
	}
}

// ErrStop ends Run cleanly when returned from a frame.
var ErrStop = errors.New("loop: stop")
