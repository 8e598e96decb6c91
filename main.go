package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toroid-snake/game"
	"toroid-snake/tui"
	"toroid-snake/ui"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// frontEnd is a render target that also supplies key events.
type frontEnd interface {
	game.Surface
	game.Input
	Close()
}

type window struct {
	*ui.Renderer
	*ui.Input
}

func openFrontEnd(name string, cfg game.Config) (frontEnd, error) {
	switch name {
	case "raylib":
		return window{Renderer: ui.NewRenderer(cfg), Input: ui.NewInput()}, nil
	case "tui":
		scr, err := tui.NewScreen(cfg)
		if err != nil {
			return nil, err
		}
		return scr, nil
	default:
		return nil, errors.Errorf("unknown backend %q", name)
	}
}

func run(backend string, seed uint64) error {
	cfg := game.DefaultConfig()
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	g, err := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	glog.Infof("session %s: seed %d, backend %s", g.Session, cfg.Seed, backend)

	fe, err := openFrontEnd(backend, cfg)
	if err != nil {
		return err
	}
	defer fe.Close()

	clock := game.NewTickerClock(cfg.TickRate)
	defer clock.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return g.Run(ctx, game.RunContext{Surface: fe, Input: fe, Clock: clock})
}

func main() {
	backend := flag.String("backend", "raylib", "Front end: raylib (window) or tui (terminal)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = seed from the clock)")
	flag.Parse()

	if err := run(*backend, *seed); err != nil {
		glog.Errorf("snake: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
