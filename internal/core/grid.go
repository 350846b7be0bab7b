package core

// FloatGrid stores a 2D grid of float64 cell values in row-major order with
// toroidal topology: both axes wrap, so any signed coordinate addresses a
// valid cell.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Dimensions returns the fixed grid extents.
func (g *FloatGrid) Dimensions() (int, int) { return g.W, g.H }

// Cells exposes the backing slice so callers can read values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for already-wrapped coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates. Negative and
// out-of-range values map onto the grid, so Wrap(-1, 0) on a WxH grid yields
// (W-1, 0).
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the cell value at (x, y), wrapping coordinates of any sign or
// magnitude.
func (g *FloatGrid) Get(x, y int) float64 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set writes the cell value at (x, y), wrapping coordinates of any sign or
// magnitude.
func (g *FloatGrid) Set(x, y int, v float64) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = v
}

// Clone returns an independent copy of the grid.
func (g *FloatGrid) Clone() *FloatGrid {
	dup := &FloatGrid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(dup.data, g.data)
	return dup
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
