package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"vita/internal/core"
	"vita/internal/sims/vita"
	"vita/internal/telemetry"
)

func main() {
	defaults := vita.DefaultConfig()

	configPath := flag.String("config", "", "path to a YAML simulation config")
	width := flag.Int("w", defaults.Width, "grid width")
	height := flag.Int("h", defaults.Height, "grid height")
	seed := flag.Int64("seed", defaults.Seed, "seed for glider placement")
	fraction := flag.Float64("fraction", defaults.Params.SeedFraction, "glider count as a fraction of total cells")
	workers := flag.Int("workers", defaults.Params.Workers, "worker goroutines for the step loop")
	steps := flag.Int("steps", 200, "generations to simulate")
	outDir := flag.String("out", "", "output directory for stats.csv and config.yaml (empty disables)")
	tps := flag.Int("tps", 0, "pace the run at this many generations per second (0 = flat out)")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		loaded, err := vita.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			cfg.Width = *width
		case "h":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "fraction":
			cfg.Params.SeedFraction = *fraction
		case "workers":
			cfg.Params.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	grid, err := vita.Initialize(cfg.Width, cfg.Height, cfg.Seed, cfg.Params.SeedFraction)
	if err != nil {
		log.Fatalf("initializing grid: %v", err)
	}
	engine := vita.NewEngine(cfg.Params)

	out, err := telemetry.NewOutputManager(*outDir)
	if err != nil {
		log.Fatalf("preparing output: %v", err)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		log.Fatalf("writing config snapshot: %v", err)
	}

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	start := time.Now()
	var last telemetry.GenStats
	for gen := 0; gen <= *steps; gen++ {
		last = telemetry.Collect(gen, grid.Cells())
		if err := out.WriteStats(last); err != nil {
			log.Fatalf("writing stats: %v", err)
		}
		if gen == *steps {
			break
		}
		if pacer != nil {
			for !pacer.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		grid = engine.Step(grid)
	}
	elapsed := time.Since(start)

	fmt.Printf("vita %dx%d seed=%d fraction=%g workers=%d\n",
		cfg.Width, cfg.Height, cfg.Seed, cfg.Params.SeedFraction, cfg.Params.Workers)
	fmt.Printf("ran %d generations in %s (%.1f gen/s)\n",
		*steps, elapsed.Round(time.Millisecond), float64(*steps)/elapsed.Seconds())
	fmt.Printf("final: mean=%.4f stddev=%.4f live=%d active=%d\n",
		last.Mean, last.StdDev, last.LiveCells, last.ActiveCells)
	if *outDir != "" {
		fmt.Printf("stats written to %s\n", *outDir)
	}
}
