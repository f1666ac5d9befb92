package terrain

import "grid-game/pkg/core"

// refineBiomes runs the final order-sensitive passes: floodplains, forest,
// taiga, jungle, coast and deep ocean.
func refineBiomes(g *Grid, p Params, rng *core.RNG) {
	floodplains(g)
	latitudeForest(g, rng)
	taiga(g)
	jungle(g, rng)
	coast(g, p.CoastOuterChance, rng)
	deepOcean(g, p.DeepOceanChance, rng)
}

// floodplains converts desert cells bordering a river.
func floodplains(g *Grid) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.At(row, col) == TileDesert && g.anyMoore(row, col, TileRiver) {
				g.Set(row, col, TileFloodplain)
			}
		}
	}
}

// wooded returns the wooded variant of a land or hills tile.
func wooded(t Tile, flat, hill Tile) (Tile, bool) {
	switch t {
	case TileLand:
		return flat, true
	case TileHills:
		return hill, true
	}
	return t, false
}

// forestChance grows towards the poles across three widening bands.
func forestChance(row, rows int) float64 {
	r, n := float64(row), float64(rows)
	chance := 0.0
	if r < n/2.5 || r >= 5*n/6.3 {
		chance = 0.1
	}
	if r < n/4.3 || r >= 5*n/6.1 {
		chance = 0.5
	}
	if r < n/5.5 || r >= 5*n/5.6 {
		chance = 0.7
	}
	return chance
}

// jungleChance peaks around the equator across three nested bands.
func jungleChance(row, rows int) float64 {
	r, n := float64(row), float64(rows)
	chance := 0.0
	if row >= rows/3 && row <= 2*rows/3 {
		chance = 0.2
	}
	if r >= n/2.6 && r <= 2*n/3.2 {
		chance = 0.4
	}
	if r >= n/2.4 && r <= 2*n/3.4 {
		chance = 0.7
	}
	return chance
}

func latitudeForest(g *Grid, rng *core.RNG) {
	for row := 0; row < g.rows; row++ {
		chance := forestChance(row, g.rows)
		for col := 0; col < g.cols; col++ {
			next, ok := wooded(g.At(row, col), TileForest, TileForestHills)
			if ok && rng.Chance(chance) {
				g.Set(row, col, next)
			}
		}
	}
}

// inTaigaBand reports whether row lies in the outermost latitude band.
func inTaigaBand(row, rows int) bool {
	top := int(float64(rows) / 6.5)
	bottom := 5 * rows / 6
	return row < top || row >= bottom
}

// taiga converts the remaining land and hills of the polar bands. Cells
// already forested keep their forest.
func taiga(g *Grid) {
	for row := 0; row < g.rows; row++ {
		if !inTaigaBand(row, g.rows) {
			continue
		}
		for col := 0; col < g.cols; col++ {
			if next, ok := wooded(g.At(row, col), TileTaiga, TileTaigaHills); ok {
				g.Set(row, col, next)
			}
		}
	}
}

func jungle(g *Grid, rng *core.RNG) {
	for row := 0; row < g.rows; row++ {
		chance := jungleChance(row, g.rows)
		for col := 0; col < g.cols; col++ {
			next, ok := wooded(g.At(row, col), TileJungle, TileJungleHills)
			if ok && rng.Chance(chance) {
				g.Set(row, col, next)
			}
		}
	}
}

// isShoreMaker reports whether t turns nearby sea into coast.
func isShoreMaker(t Tile) bool {
	return t != TileSea && t != TileIce && t != TileCoast
}

// nearShore reports whether a shore-making tile lies within Chebyshev
// distance radius of (row, col).
func nearShore(g *Grid, row, col, radius int) bool {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			r, c := row+dr, col+dc
			if g.InBounds(r, c) && isShoreMaker(g.At(r, c)) {
				return true
			}
		}
	}
	return false
}

// coast converts sea touching land, and sea one further step out with
// outerChance.
func coast(g *Grid, outerChance float64, rng *core.RNG) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.At(row, col) != TileSea {
				continue
			}
			switch {
			case nearShore(g, row, col, 1):
				g.Set(row, col, TileCoast)
			case nearShore(g, row, col, 2):
				if rng.Chance(outerChance) {
					g.Set(row, col, TileCoast)
				}
			}
		}
	}
}

func deepOcean(g *Grid, chance float64, rng *core.RNG) {
	for i, t := range g.cells {
		if t == TileSea && rng.Chance(chance) {
			g.cells[i] = TileDeepOcean
		}
	}
}
