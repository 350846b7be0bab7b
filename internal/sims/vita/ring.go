package vita

import "vita/internal/core"

// Ring radii used by the transition rule.
const (
	NearRadius    = 1
	DistantRadius = 3
)

// RingCellCount returns the number of cells in a Chebyshev ring of the given
// radius, i.e. the (2r+1)x(2r+1) block minus its center.
func RingCellCount(radius int) int {
	side := 2*radius + 1
	return side*side - 1
}

// AverageInRing returns the mean cell value over the square block of the
// given Chebyshev radius around (x, y), excluding the center cell itself.
// Toroidal wrapping guarantees a full block at every position, so the divisor
// is always (2r+1)^2 - 1.
//
// The distant ring (radius 3) keeps the inner 3x3 cells in its sum; only the
// center is skipped.
func AverageInRing(g *core.FloatGrid, x, y, radius int) float64 {
	sum := 0.0
	for j := -radius; j <= radius; j++ {
		for i := -radius; i <= radius; i++ {
			if i == 0 && j == 0 {
				continue
			}
			sum += g.Get(x+i, y+j)
		}
	}
	return sum / float64(RingCellCount(radius))
}
