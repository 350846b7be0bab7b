package vita

import (
	"sync"

	"vita/internal/core"
)

// Engine applies the continuous-Life transition rule, producing a fresh grid
// each generation. The zero value is not useful; build one with NewEngine or
// fill the thresholds explicitly.
type Engine struct {
	// SurviveMax is the combined-average ceiling above which a live cell dies.
	SurviveMax float64
	// BirthMin is the combined-average floor at which a dead cell activates.
	BirthMin float64
	// Workers splits the per-cell loop across row bands when > 1. Every cell
	// reads only the prior generation and writes only its own slot, so the
	// result is identical for any worker count.
	Workers int
}

// NewEngine builds an Engine from rule parameters.
func NewEngine(p Params) Engine {
	return Engine{SurviveMax: p.SurviveMax, BirthMin: p.BirthMin, Workers: p.Workers}
}

// Step computes the next generation from g into a newly allocated grid. The
// input grid is never written.
func (e Engine) Step(g *core.FloatGrid) *core.FloatGrid {
	next := core.NewFloatGrid(g.W, g.H)

	workers := e.Workers
	if workers > g.H {
		workers = g.H
	}
	if workers <= 1 {
		e.stepRows(g, next, 0, g.H)
		return next
	}

	band := (g.H + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < g.H; y0 += band {
		y1 := y0 + band
		if y1 > g.H {
			y1 = g.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			e.stepRows(g, next, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
	return next
}

func (e Engine) stepRows(prev, next *core.FloatGrid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < prev.W; x++ {
			next.Set(x, y, e.nextValue(prev, x, y))
		}
	}
}

// nextValue evaluates the rule for a single cell of the prior generation.
func (e Engine) nextValue(prev *core.FloatGrid, x, y int) float64 {
	near := AverageInRing(prev, x, y, NearRadius)
	distant := AverageInRing(prev, x, y, DistantRadius)
	combined := (near + distant) / 2

	// The live branch tests for exact equality with 1: partially alive cells
	// always take the dead branch. This mirrors the original rule and the
	// tests depend on it; do not relax it to a threshold.
	if prev.Get(x, y) == 1 {
		if combined <= e.SurviveMax {
			return (1 + combined) / 2
		}
		return 0
	}
	if combined >= e.BirthMin {
		return (1 + combined) / 2
	}
	return 0
}
