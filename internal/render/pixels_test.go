package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 0, B: 128, A: 255},
	}
	cells := []uint8{0, 1, 9} // 9 clamps to the last palette entry
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 255,
		255, 0, 128, 255,
		255, 0, 128, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{3, 7}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	fillPaletteRGBA(buf, cells, nil)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want cleared", i, b)
		}
	}
}

func TestFillMaskRGBA(t *testing.T) {
	tint := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	mask := []bool{true, false, true}
	buf := make([]byte, 4*len(mask))

	fillMaskRGBA(buf, mask, tint)

	want := []byte{
		255, 255, 255, 160,
		0, 0, 0, 0,
		255, 255, 255, 160,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}
