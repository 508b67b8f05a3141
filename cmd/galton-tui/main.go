package main

import (
	"flag"
	"log"

	"galton/internal/app"
	"galton/internal/core"
	_ "galton/internal/sims/galton"
	"galton/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := app.LoadEnv(".env", cfg); err != nil {
		log.Fatalf("[galton] %v", err)
	}
	frame := flag.Duration("frame", tui.DefaultFrameInterval, "terminal redraw interval")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatalf("[galton] %v", err)
	}

	var clicker *tui.Clicker
	if cfg.Sound {
		clicker = tui.NewClicker()
		if err := clicker.Initialize(); err != nil {
			// Non-fatal, the board runs without sound
			log.Printf("[audio] initialization failed: %v", err)
		}
		defer clicker.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[tui] %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[tui] %v", err)
	}

	ctrl := app.NewController(sim, core.NewSystemClock(), cfg.TickDelay, cfg.Seed)
	if cfg.Paused {
		ctrl.Press(app.ActionPause)
	}
	tui.New(screen, ctrl, clicker).Run(*frame)
	screen.Fini()

	if provider, ok := sim.(core.StatusProvider); ok {
		log.Printf("[galton] %s %s", sim.Name(), provider.StatusLine())
	}
}
