//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"vita/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type generationProvider interface {
	Generation() int
}

const hudLineHeight = 14

// HUD renders the parameter panel to the right of the simulation view. Tab
// cycles through the adjustable controls; up/down nudge the selected one by
// its step.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	controls []core.ParameterControl
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles HUD input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	dir := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		dir = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		dir = -1
	}
	if dir != 0 {
		h.nudge(h.controls[h.selected], dir)
	}
}

// nudge adjusts a control by one step in the given direction, respecting its
// bounds. The simulation setters clamp again, so a stale snapshot cannot push
// a value out of range.
func (h *HUD) nudge(ctrl core.ParameterControl, dir int) {
	cur, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	next := cur + float64(dir)*ctrl.Step
	if ctrl.HasMin && next < ctrl.Min {
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		next = ctrl.Max
	}

	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(next))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, next)
		}
	}
}

func (h *HUD) currentValue(key string) (float64, bool) {
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	line := 1
	put := func(s string, c color.Color) {
		text.Draw(h.panel, s, face, 6, line*hudLineHeight, c)
		line++
	}

	put(h.sim.Name(), color.White)
	if provider, ok := h.sim.(generationProvider); ok {
		put(fmt.Sprintf("gen %d", provider.Generation()), color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	line++

	for _, group := range h.snapshot.Groups {
		put(group.Name, color.RGBA{R: 120, G: 170, B: 255, A: 255})
		for _, p := range group.Params {
			prefix := "  "
			c := color.Color(color.RGBA{R: 200, G: 200, B: 205, A: 255})
			if h.isSelected(p.Key) {
				prefix = "> "
				c = color.White
			}
			put(prefix+p.Label+": "+p.Value, c)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) isSelected(key string) bool {
	if len(h.controls) == 0 {
		return false
	}
	return h.controls[h.selected].Key == key
}
