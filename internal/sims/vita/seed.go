package vita

import (
	"errors"
	"fmt"

	"vita/internal/core"
)

// ErrInvalidConfig reports a rejected configuration value.
var ErrInvalidConfig = errors.New("vita: invalid configuration")

// PlaceGlider writes the seven-cell glider pattern anchored at (x, y): a 2x2
// body plus a three-cell diagonal tail running up-left. All offsets wrap, so
// anchors near (0, 0) spill onto the opposite edges.
func PlaceGlider(g *core.FloatGrid, x, y int) {
	g.Set(x, y, 1)
	g.Set(x+1, y, 1)
	g.Set(x, y+1, 1)
	g.Set(x+1, y+1, 1)

	g.Set(x-1, y-1, 1)
	g.Set(x-2, y-2, 1)
	g.Set(x-3, y-3, 1)
}

// SeedRandom places count gliders at anchors drawn uniformly from the grid.
// The x coordinate is drawn before y for each anchor, and gliders are placed
// in draw order, so overlapping patterns resolve deterministically for a
// given seed.
func SeedRandom(g *core.FloatGrid, rng *core.RNG, count int) {
	w, h := g.Dimensions()
	for i := 0; i < count; i++ {
		x := rng.IntN(w)
		y := rng.IntN(h)
		PlaceGlider(g, x, y)
	}
}

// Initialize builds a zero grid of the given dimensions and seeds
// floor(width*height*seedFraction) gliders from a deterministic RNG.
func Initialize(width, height int, seed int64, seedFraction float64) (*core.FloatGrid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidConfig, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidConfig, height)
	}
	if seedFraction < 0 {
		return nil, fmt.Errorf("%w: seed fraction %f", ErrInvalidConfig, seedFraction)
	}

	g := core.NewFloatGrid(width, height)
	startCells := int(float64(width*height) * seedFraction)
	SeedRandom(g, core.NewRNG(seed), startCells)
	return g, nil
}

// Read returns the vitality at (x, y) for rendering. Coordinates wrap like
// every other grid access.
func Read(g *core.FloatGrid, x, y int) float64 {
	return g.Get(x, y)
}
