package vita

import (
	"vita/internal/core"
)

// Sim adapts the continuous-Life engine to the core.Sim contract consumed by
// the host loop. It owns the current generation grid and a quantized display
// buffer for the palette renderer.
type Sim struct {
	cfg    Config
	engine Engine

	cur        *core.FloatGrid
	display    []uint8
	generation int
}

// New returns a simulation with the provided dimensions using defaults.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from the provided options.
func NewWithConfig(cfg Config) *Sim {
	s := &Sim{
		cfg:     cfg,
		engine:  NewEngine(cfg.Params),
		cur:     core.NewFloatGrid(cfg.Width, cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "vita" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cur.W, H: s.cur.H} }

// Cells exposes the quantized display buffer.
func (s *Sim) Cells() []uint8 { return s.display }

// Vitality exposes the raw float field of the current generation.
func (s *Sim) Vitality() []float64 { return s.cur.Cells() }

// Grid exposes the current generation grid.
func (s *Sim) Grid() *core.FloatGrid { return s.cur }

// Generation reports how many steps have run since the last reset.
func (s *Sim) Generation() int { return s.generation }

// Reset zeroes the field and reseeds gliders deterministically. A zero seed
// falls back to the configured seed.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.cur.Clear()
	startCells := int(float64(s.cur.W*s.cur.H) * s.cfg.Params.SeedFraction)
	SeedRandom(s.cur, core.NewRNG(effective), startCells)
	s.generation = 0
	s.rebuildDisplay()
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.cur = s.engine.Step(s.cur)
	s.generation++
	s.rebuildDisplay()
}

func init() {
	core.Register("vita", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
