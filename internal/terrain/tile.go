package terrain

import "strconv"

// Tile enumerates the terrain values a grid cell can hold.
type Tile uint8

const (
	TileSea Tile = iota
	TileLand
	TileHills
	TileMountain
	TileRiverSource
	TileRiver
	TileIce
	TileTundra
	TileTundraHills
	TileTaiga
	TileTaigaHills
	TileDesert
	TileDesertHills
	TileIceCap
	TileLake
	TileFloodplain
	TileForest
	TileForestHills
	TileJungle
	TileJungleHills
	TileCoast
	TileDeepOcean
	// TileUnassigned marks cells that no stage has written yet. It never
	// survives region typing.
	TileUnassigned
)

// TileCount is the number of enumeration values, including TileUnassigned.
const TileCount = int(TileUnassigned) + 1

var tileNames = [...]string{
	TileSea:         "sea",
	TileLand:        "land",
	TileHills:       "hills",
	TileMountain:    "mountain",
	TileRiverSource: "river-source",
	TileRiver:       "river",
	TileIce:         "ice",
	TileTundra:      "tundra",
	TileTundraHills: "tundra-hills",
	TileTaiga:       "taiga",
	TileTaigaHills:  "taiga-hills",
	TileDesert:      "desert",
	TileDesertHills: "desert-hills",
	TileIceCap:      "ice-cap",
	TileLake:        "lake",
	TileFloodplain:  "floodplain",
	TileForest:      "forest",
	TileForestHills: "forest-hills",
	TileJungle:      "jungle",
	TileJungleHills: "jungle-hills",
	TileCoast:       "coast",
	TileDeepOcean:   "deep-ocean",
	TileUnassigned:  "unassigned",
}

var tileGlyphs = [...]byte{
	TileSea:         '~',
	TileLand:        '.',
	TileHills:       'n',
	TileMountain:    '^',
	TileRiverSource: '*',
	TileRiver:       '=',
	TileIce:         '#',
	TileTundra:      ',',
	TileTundraHills: 'm',
	TileTaiga:       't',
	TileTaigaHills:  'T',
	TileDesert:      ':',
	TileDesertHills: ';',
	TileIceCap:      '@',
	TileLake:        'o',
	TileFloodplain:  '"',
	TileForest:      'f',
	TileForestHills: 'F',
	TileJungle:      'j',
	TileJungleHills: 'J',
	TileCoast:       '-',
	TileDeepOcean:   ' ',
	TileUnassigned:  '?',
}

// String returns the tile name, or Tile(n) for values outside the enumeration.
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "Tile(" + strconv.Itoa(int(t)) + ")"
}

// Glyph returns a single ASCII character for text dumps.
func (t Tile) Glyph() byte {
	if int(t) < len(tileGlyphs) {
		return tileGlyphs[t]
	}
	return '!'
}

// Valid reports whether t is a real terrain value, excluding TileUnassigned.
func (t Tile) Valid() bool {
	return t < TileUnassigned
}

// IsHillFamily reports whether t is one of the hill variants that raise
// neighbouring elevation.
func (t Tile) IsHillFamily() bool {
	return t == TileHills || t == TileTundraHills || t == TileDesertHills
}

// SmoothingFamilies lists the tiles the smoother and blender count, in
// tie-break priority order.
var SmoothingFamilies = [...]Tile{
	TileSea,
	TileLand,
	TileHills,
	TileMountain,
	TileIce,
	TileTundra,
	TileTundraHills,
	TileTaiga,
	TileTaigaHills,
	TileDesert,
	TileDesertHills,
}

// familyIndex maps a tile to its slot in SmoothingFamilies, or -1.
var familyIndex = buildFamilyIndex()

func buildFamilyIndex() [TileCount]int {
	var idx [TileCount]int
	for i := range idx {
		idx[i] = -1
	}
	for i, t := range SmoothingFamilies {
		idx[t] = i
	}
	return idx
}

func smoothingSlot(t Tile) int {
	if int(t) >= TileCount {
		return -1
	}
	return familyIndex[t]
}
