package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

func main() {
	var (
		configFile  = flag.String("config", "", "gcfg settings file; defaults are used when empty")
		mode        = flag.String("mode", "window", "host to run in: window, term or snapshot")
		out         = flag.String("out", "field.png", "snapshot output file")
		frames      = flag.Int("frames", 600, "frames to simulate before a snapshot")
		transparent = flag.Bool("transparent", false, "leave the snapshot background transparent")
		seed        = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
		example     = flag.Bool("example-config", false, "print an example settings file and exit")
	)
	flag.Parse()

	if *example {
		fmt.Println(config.Example)
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	fc, err := cfg.Simulation()
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "window":
		err = runWindow(ctx, cfg, fc, rng)
	case "term":
		err = runTerminal(ctx, cfg, fc, rng)
	case "snapshot":
		err = writeSnapshot(*out, cfg, fc, rng, *frames, *transparent)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	if errors.Is(err, field.ErrNoSurface) {
		log.Printf("particle field not started: %v", err)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
