package core

import "testing"

func TestGridWrapInvariant(t *testing.T) {
	g := NewFloatGrid(10, 7)
	g.Set(3, 4, 0.5)

	for k := -3; k <= 3; k++ {
		if got := g.Get(3+k*10, 4+k*7); got != 0.5 {
			t.Fatalf("Get(%d,%d) = %f, want 0.5", 3+k*10, 4+k*7, got)
		}
	}
}

func TestGridNegativeCoordinates(t *testing.T) {
	g := NewFloatGrid(10, 10)
	g.Set(-1, -1, 1)

	if got := g.Get(9, 9); got != 1 {
		t.Fatalf("Set(-1,-1) should land at (9,9), got %f there", got)
	}
	if got := g.Get(-11, -21); got != 1 {
		t.Fatalf("Get(-11,-21) should wrap to (9,9), got %f", got)
	}

	x, y := g.Wrap(10, -1)
	if x != 0 || y != 9 {
		t.Fatalf("Wrap(10,-1) = (%d,%d), want (0,9)", x, y)
	}
}

func TestGridDimensionsFixed(t *testing.T) {
	g := NewFloatGrid(100, 50)
	w, h := g.Dimensions()
	if w != 100 || h != 50 {
		t.Fatalf("Dimensions() = (%d,%d), want (100,50)", w, h)
	}
	if len(g.Cells()) != 100*50 {
		t.Fatalf("backing slice length %d, want %d", len(g.Cells()), 100*50)
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewFloatGrid(4, 4)
	g.Set(1, 1, 0.25)

	dup := g.Clone()
	dup.Set(1, 1, 0.75)

	if got := g.Get(1, 1); got != 0.25 {
		t.Fatalf("clone write leaked into original: %f", got)
	}
	if got := dup.Get(1, 1); got != 0.75 {
		t.Fatalf("clone did not take write: %f", got)
	}
}

func TestGridClear(t *testing.T) {
	g := NewFloatGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, 1)
		}
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %f", i, v)
		}
	}
}
