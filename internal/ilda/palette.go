package ilda

import "fmt"

// PaletteIDTF14 returns a pragmatic 256-entry preview palette: index 0 is
// black, indices 1..14 are the conventional primary set, and the remainder
// is filled with a 6-step color cube. It is not a strict reproduction of any
// published table, but it previews files from common tools sensibly.
func PaletteIDTF14() []RGB {
	pal := make([]RGB, 256)
	base := map[int]RGB{
		1:  {255, 0, 0},     // red
		2:  {0, 255, 0},     // green
		3:  {0, 0, 255},     // blue
		4:  {255, 255, 0},   // yellow
		5:  {255, 0, 255},   // magenta
		6:  {0, 255, 255},   // cyan
		7:  {255, 255, 255}, // white
		8:  {255, 128, 0},   // orange
		9:  {128, 0, 255},   // purple
		10: {0, 128, 255},   // azure
		11: {128, 255, 0},   // lime
		12: {255, 0, 128},   // pink
		13: {0, 255, 128},   // spring green
		14: {128, 128, 128}, // gray
	}
	for i, c := range base {
		pal[i] = c
	}

	steps := []uint8{0, 51, 102, 153, 204, 255}
	idx := 15
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				if idx >= 256 {
					return pal
				}
				pal[idx] = RGB{R: r, G: g, B: b}
				idx++
			}
		}
	}
	return pal
}

// PaletteWhite63 maps indices 1..63 to white for files that use a single
// color index and should simply show as monochrome; other indices fall back
// to the IDTF14-style table.
func PaletteWhite63() []RGB {
	pal := PaletteIDTF14()
	for i := 1; i < 64; i++ {
		pal[i] = RGB{R: 255, G: 255, B: 255}
	}
	return pal
}

// PaletteByName resolves a palette by its user-facing name.
func PaletteByName(name string) ([]RGB, error) {
	switch name {
	case "", "idtf14", "default":
		return PaletteIDTF14(), nil
	case "white63", "mono", "monochrome":
		return PaletteWhite63(), nil
	}
	return nil, fmt.Errorf("ilda: unknown palette %q (supported: idtf14, white63)", name)
}
