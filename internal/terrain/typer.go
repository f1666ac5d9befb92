package terrain

import "grid-game/pkg/core"

// BiomeClass is the dominant leaning assigned to a whole region.
type BiomeClass uint8

const (
	BiomeSeaLeaning BiomeClass = iota
	BiomeLandLeaning
	BiomeHillLeaning
	BiomeMountainLeaning
)

func (b BiomeClass) String() string {
	switch b {
	case BiomeSeaLeaning:
		return "sea-leaning"
	case BiomeLandLeaning:
		return "land-leaning"
	case BiomeHillLeaning:
		return "hill-leaning"
	case BiomeMountainLeaning:
		return "mountain-leaning"
	default:
		return "unknown"
	}
}

// weightedTile is one band of a percentage table.
type weightedTile struct {
	tile   Tile
	weight int
}

// fillTables holds, per biome class, the cell fill bands in roll order. Each
// table sums to 100.
var fillTables = [...][]weightedTile{
	BiomeSeaLeaning:      {{TileSea, 60}, {TileLand, 15}, {TileHills, 15}, {TileMountain, 10}},
	BiomeLandLeaning:     {{TileLand, 40}, {TileSea, 30}, {TileHills, 30}},
	BiomeHillLeaning:     {{TileHills, 50}, {TileSea, 20}, {TileMountain, 15}, {TileLand, 15}},
	BiomeMountainLeaning: {{TileMountain, 45}, {TileSea, 20}, {TileLand, 10}, {TileHills, 25}},
}

// classBands splits a 0..99 roll into biome classes.
var classBands = [...]struct {
	below int
	class BiomeClass
}{
	{40, BiomeSeaLeaning},
	{70, BiomeLandLeaning},
	{82, BiomeHillLeaning},
	{100, BiomeMountainLeaning},
}

func rollClass(rng *core.RNG) BiomeClass {
	roll := rng.Percent()
	for _, b := range classBands {
		if roll < b.below {
			return b.class
		}
	}
	return BiomeMountainLeaning
}

func rollFill(class BiomeClass, rng *core.RNG) Tile {
	table := fillTables[class]
	roll := rng.Percent()
	acc := 0
	for _, wt := range table {
		acc += wt.weight
		if roll < acc {
			return wt.tile
		}
	}
	return table[len(table)-1].tile
}

// assignRegionTypes classifies every region and re-rolls each of its cells
// against the class table. Cells without a region become sea, so the grid
// holds no TileUnassigned afterwards.
func assignRegionTypes(g *Grid, regions *RegionMap, regionCount int, rng *core.RNG) []BiomeClass {
	classes := make([]BiomeClass, regionCount)
	for id := range classes {
		classes[id] = rollClass(rng)
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			id := regions.At(row, col)
			if id == noRegion {
				continue
			}
			g.Set(row, col, rollFill(classes[id], rng))
		}
	}
	fillUnassignedWithSea(g)
	return classes
}

func fillUnassignedWithSea(g *Grid) {
	for i, t := range g.cells {
		if t == TileUnassigned {
			g.cells[i] = TileSea
		}
	}
}
