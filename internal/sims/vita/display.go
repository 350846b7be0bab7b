package vita

import "image/color"

const paletteLevels = 256

var vitaPalette = buildVitaPalette()

// Palette exposes the color ramp used for rendering vitality values.
func (s *Sim) Palette() []color.RGBA {
	return vitaPalette
}

// buildVitaPalette maps quantized vitality onto an HSV ramp: hue sweeps to
// 340 degrees while saturation and value track vitality, so dead cells render
// black and fully live cells a saturated magenta.
func buildVitaPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteLevels)
	for i := range palette {
		v := float64(i) / float64(paletteLevels-1)
		palette[i] = hsvToRGBA(340*v, v, v)
	}
	return palette
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	if s <= 0 {
		gray := uint8(v*255 + 0.5)
		return color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}

	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	sector := int(h / 60)
	frac := h/60 - float64(sector)

	p := v * (1 - s)
	q := v * (1 - s*frac)
	t := v * (1 - s*(1-frac))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return paletteLevels - 1
	}
	return uint8(v*float64(paletteLevels-1) + 0.5)
}

func (s *Sim) rebuildDisplay() {
	for i, v := range s.cur.Cells() {
		s.display[i] = quantize(v)
	}
}
