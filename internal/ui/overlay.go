//go:build ebiten

package ui

import (
	"image/color"

	"vita/internal/core"
	"vita/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type vitalityProvider interface {
	Vitality() []float64
}

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles a mask highlighting cells that are exactly live (value 1),
// which makes the rule's equality branch visible against the continuous
// field around it.
type Overlay struct {
	sim      core.Sim
	scale    int
	showLive bool

	painter *render.GridPainter
	mask    []bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles overlay toggle input.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showLive = !o.showLive
	}
}

// Draw composites the enabled overlay layers above the simulation.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showLive {
		return
	}
	provider, ok := o.sim.(vitalityProvider)
	if !ok {
		return
	}

	size := o.sim.Size()
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
		o.mask = make([]bool, size.W*size.H)
	}

	field := provider.Vitality()
	if len(field) != len(o.mask) {
		return
	}
	for i, v := range field {
		o.mask[i] = v == 1
	}

	tint := color.RGBA{R: 255, G: 255, B: 255, A: 140}
	o.painter.BlitMask(screen, o.mask, tint, o.scale)
}
