package vita

import (
	"slices"
	"testing"

	"vita/internal/core"
)

func defaultEngine() Engine {
	return NewEngine(DefaultConfig().Params)
}

// referenceStep recomputes the transition rule with plain nested loops,
// independent of the engine's code paths, for cross-checking.
func referenceStep(g *core.FloatGrid) []float64 {
	w, h := g.Dimensions()
	avg := func(x, y, r int) float64 {
		sum := 0.0
		for j := y - r; j <= y+r; j++ {
			for i := x - r; i <= x+r; i++ {
				if i == x && j == y {
					continue
				}
				sum += g.Get(i, j)
			}
		}
		return sum / float64((2*r+1)*(2*r+1)-1)
	}

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			combined := (avg(x, y, 1) + avg(x, y, 3)) / 2
			v := 0.0
			if g.Get(x, y) == 1 {
				if combined <= 0.8 {
					v = (1 + combined) / 2
				}
			} else if combined >= 0.275 {
				v = (1 + combined) / 2
			}
			out[y*w+x] = v
		}
	}
	return out
}

func TestAllZeroIsFixedPoint(t *testing.T) {
	e := defaultEngine()
	next := e.Step(core.NewFloatGrid(10, 10))
	for i, v := range next.Cells() {
		if v != 0 {
			t.Fatalf("cell %d of a zero grid became %f", i, v)
		}
	}
}

func TestAllOnesDiesEverywhere(t *testing.T) {
	// Every cell sees combined == 1 > 0.8, so a uniform live grid collapses
	// to zero in a single generation.
	g := core.NewFloatGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, 1)
		}
	}

	next := defaultEngine().Step(g)
	for i, v := range next.Cells() {
		if v != 0 {
			t.Fatalf("cell %d of an all-ones grid became %f, want 0", i, v)
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := core.NewFloatGrid(10, 10)
	PlaceGlider(g, 4, 4)
	before := append([]float64(nil), g.Cells()...)

	defaultEngine().Step(g)

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Step mutated its input grid")
	}
}

func TestStepMatchesReference(t *testing.T) {
	g := core.NewFloatGrid(12, 9)
	PlaceGlider(g, 0, 0)
	PlaceGlider(g, 6, 4)

	next := defaultEngine().Step(g)
	want := referenceStep(g)

	if !slices.Equal(next.Cells(), want) {
		t.Fatal("engine step disagrees with reference computation")
	}
}

func TestParallelStepMatchesSequential(t *testing.T) {
	g := core.NewFloatGrid(32, 17)
	SeedRandom(g, core.NewRNG(99), 12)

	seq := defaultEngine()
	seq.Workers = 1
	par := defaultEngine()
	par.Workers = 4

	a := seq.Step(g)
	b := par.Step(g)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("parallel step differs from sequential step")
	}

	// More workers than rows still covers every cell exactly once.
	par.Workers = 64
	c := par.Step(g)
	if !slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("oversubscribed parallel step differs from sequential step")
	}
}

func TestGliderEndToEnd(t *testing.T) {
	g := core.NewFloatGrid(10, 10)
	PlaceGlider(g, 0, 0)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true,
		{9, 9}: true, {8, 8}: true, {7, 7}: true,
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := g.Get(x, y)
			if want[[2]int{x, y}] {
				if v != 1 {
					t.Fatalf("glider cell (%d,%d) = %f, want 1", x, y, v)
				}
				continue
			}
			if v != 0 {
				t.Fatalf("cell (%d,%d) = %f, want 0", x, y, v)
			}
		}
	}

	next := defaultEngine().Step(g)
	ref := referenceStep(g)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got, want := next.Get(x, y), ref[y*10+x]; got != want {
				t.Fatalf("stepped cell (%d,%d) = %f, want %f", x, y, got, want)
			}
		}
	}
}

func TestLiveBranchRequiresExactUnity(t *testing.T) {
	// A cell at 0.999 in a saturated neighborhood takes the dead branch and
	// is reborn at full strength, while an exactly-live cell dies. The rule
	// branches on equality with 1, not on a threshold.
	full := core.NewFloatGrid(10, 10)
	almost := core.NewFloatGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			full.Set(x, y, 1)
			almost.Set(x, y, 1)
		}
	}
	almost.Set(5, 5, 0.999)

	e := defaultEngine()
	if got := e.Step(full).Get(5, 5); got != 0 {
		t.Fatalf("live cell in saturated neighborhood = %f, want 0", got)
	}
	if got := e.Step(almost).Get(5, 5); got != 1 {
		t.Fatalf("almost-live cell in saturated neighborhood = %f, want 1", got)
	}
}
