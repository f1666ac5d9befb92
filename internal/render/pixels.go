package render

import (
	"image/color"

	"grid-game/internal/fog"
	"grid-game/internal/terrain"
)

// FillTerrainRGBA converts tiles into RGBA pixels in buf, one pixel per cell.
// cols is the grid width used to recover (row, col) for dappling; a nil
// dappler paints flat colours.
func FillTerrainRGBA(buf []byte, cells []terrain.Tile, cols int, d *Dappler) {
	for i, t := range cells {
		base := i * 4
		col := TileColor(t)
		if d != nil && cols > 0 {
			dr, dg, db := d.Offset(i/cols, i%cols)
			col.R = clampChannel(int(col.R) + dr)
			col.G = clampChannel(int(col.G) + dg)
			col.B = clampChannel(int(col.B) + db)
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fogPalette is indexed by fog.State. The trailing entry catches corrupt
// values.
var fogPalette = []color.RGBA{
	fog.Hidden:      {R: 0, G: 0, B: 0, A: 255},
	fog.Seen:        {R: 100, G: 100, B: 100, A: 150},
	fog.Visible:     {R: 0, G: 0, B: 0, A: 0},
	fog.Visible + 1: {R: 255, G: 0, B: 255, A: 255},
}

// FogColor returns the overlay colour for a fog state.
func FogColor(s fog.State) color.RGBA {
	if int(s) >= len(fogPalette) {
		return fogPalette[len(fogPalette)-1]
	}
	return fogPalette[s]
}

// FillFogRGBA converts fog states into overlay pixels.
func FillFogRGBA(buf []byte, states []uint8) {
	FillPaletteRGBA(buf, states, fogPalette)
}

// FertilityColor blends from brown at zero to green at the fertility
// ceiling. The overlay is translucent.
func FertilityColor(v, ceiling float64) color.RGBA {
	t := 0.0
	if ceiling > 0 {
		t = v / ceiling
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(128 * (1 - t)),
		G: uint8(64 + (255-64)*t),
		B: 0,
		A: 100,
	}
}

// FillFertilityRGBA converts fertility values into overlay pixels.
func FillFertilityRGBA(buf []byte, vals []float64, ceiling float64) {
	for i, v := range vals {
		base := i * 4
		col := FertilityColor(v, ceiling)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
