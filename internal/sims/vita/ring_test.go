package vita

import (
	"testing"

	"vita/internal/core"
)

func TestRingCellCount(t *testing.T) {
	if got := RingCellCount(NearRadius); got != 8 {
		t.Fatalf("RingCellCount(1) = %d, want 8", got)
	}
	if got := RingCellCount(DistantRadius); got != 48 {
		t.Fatalf("RingCellCount(3) = %d, want 48", got)
	}
}

func TestAverageDivisorIndependentOfPosition(t *testing.T) {
	// On a uniform field the average equals the cell value only when the
	// divisor matches the full ring size, wrap included.
	g := core.NewFloatGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, 0.5)
		}
	}

	positions := [][2]int{{0, 0}, {9, 9}, {0, 9}, {9, 0}, {5, 5}, {0, 4}, {4, 0}}
	for _, pos := range positions {
		for _, r := range []int{NearRadius, DistantRadius} {
			if got := AverageInRing(g, pos[0], pos[1], r); got != 0.5 {
				t.Fatalf("AverageInRing(%d,%d,r=%d) = %f, want 0.5", pos[0], pos[1], r, got)
			}
		}
	}
}

func TestAverageWrapsAtCorner(t *testing.T) {
	g := core.NewFloatGrid(4, 4)
	g.Set(3, 3, 1)

	// (3,3) is the (-1,-1) neighbor of the origin on a 4x4 torus.
	if got, want := AverageInRing(g, 0, 0, 1), 1.0/8; got != want {
		t.Fatalf("corner near average = %f, want %f", got, want)
	}
}

func TestDistantRingIncludesInnerCells(t *testing.T) {
	// Only the 8 near neighbors of the center are set. The radius-3 average
	// still sees them: the block excludes just the center cell.
	g := core.NewFloatGrid(9, 9)
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			if i == 0 && j == 0 {
				continue
			}
			g.Set(4+i, 4+j, 1)
		}
	}

	if got, want := AverageInRing(g, 4, 4, DistantRadius), 8.0/48; got != want {
		t.Fatalf("distant average = %f, want %f (inner cells must be counted)", got, want)
	}
}

func TestAverageExcludesCenter(t *testing.T) {
	g := core.NewFloatGrid(9, 9)
	g.Set(4, 4, 1)

	for _, r := range []int{NearRadius, DistantRadius} {
		if got := AverageInRing(g, 4, 4, r); got != 0 {
			t.Fatalf("radius %d average counted the center cell: %f", r, got)
		}
	}
}
