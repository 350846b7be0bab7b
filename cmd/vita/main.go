//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"vita/internal/app"
	"vita/internal/core"
	"vita/internal/sims/vita"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var sim core.Sim
	if cfg.ConfigPath != "" {
		simCfg, err := vita.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		sim = vita.NewWithConfig(simCfg)
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown sim %q", cfg.Sim)
		}
		sim = factory(nil)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	size := sim.Size()

	ebiten.SetWindowTitle("vita — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
