package render

import (
	"image/color"

	"grid-game/internal/terrain"
)

// Unknown is drawn for values outside the terrain enumeration.
var Unknown = color.RGBA{R: 255, G: 0, B: 255, A: 255}

var tilePalette = buildTilePalette()

func buildTilePalette() []color.RGBA {
	p := make([]color.RGBA, terrain.TileCount)
	for i := range p {
		p[i] = Unknown
	}
	set := func(t terrain.Tile, r, g, b uint8) { p[t] = color.RGBA{R: r, G: g, B: b, A: 255} }
	set(terrain.TileSea, 0, 0, 255)
	set(terrain.TileLand, 154, 255, 0)
	set(terrain.TileHills, 165, 217, 117)
	set(terrain.TileMountain, 169, 169, 169)
	set(terrain.TileRiverSource, 255, 0, 0)
	set(terrain.TileRiver, 0, 94, 255)
	set(terrain.TileIce, 255, 255, 255)
	set(terrain.TileTundra, 149, 158, 133)
	set(terrain.TileTundraHills, 191, 201, 171)
	set(terrain.TileTaiga, 70, 97, 24)
	set(terrain.TileTaigaHills, 109, 148, 41)
	set(terrain.TileDesert, 255, 236, 91)
	set(terrain.TileDesertHills, 224, 181, 81)
	set(terrain.TileIceCap, 255, 255, 255)
	set(terrain.TileLake, 0, 94, 255)
	set(terrain.TileFloodplain, 137, 227, 0)
	set(terrain.TileForest, 1, 51, 3)
	set(terrain.TileForestHills, 3, 107, 7)
	set(terrain.TileJungle, 29, 173, 39)
	set(terrain.TileJungleHills, 36, 212, 48)
	set(terrain.TileCoast, 0, 94, 255)
	set(terrain.TileDeepOcean, 22, 0, 224)
	return p
}

// TileColor returns the display colour for t.
func TileColor(t terrain.Tile) color.RGBA {
	if int(t) >= len(tilePalette) {
		return Unknown
	}
	return tilePalette[t]
}

// Palette exposes the tile colours indexed by tile value. Callers must not
// modify it.
func Palette() []color.RGBA { return tilePalette }
