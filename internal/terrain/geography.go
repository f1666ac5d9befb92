package terrain

import "grid-game/pkg/core"

// geography evaluates the position rules for one grid. Rules run per cell in
// row-major order and see earlier cells' results.
type geography struct {
	g   *Grid
	p   Params
	rng *core.RNG
}

// applyGeography overwrites tiles by absolute position: sea along the west and
// east edges, ice at the poles, tundra in the high latitudes, ice caps on
// enclosed peaks and desert across the equatorial third.
func applyGeography(g *Grid, p Params, rng *core.RNG) {
	geo := geography{g: g, p: p, rng: rng}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.At(row, col) == TileUnassigned {
				continue
			}
			geo.edgeSea(row, col)
			geo.polarIce(row, col)
			geo.tundra(row, col)
			geo.peakIce(row, col)
			geo.equatorDesert(row, col)
		}
	}
}

// inEdgeSea reports whether col lies in the deterministic sea columns.
func (geo geography) inEdgeSea(col int) bool {
	cols := geo.g.cols
	return col < geo.p.EdgeSeaCols || col >= cols-geo.p.EdgeSeaCols
}

func (geo geography) edgeSea(row, col int) {
	if geo.g.At(row, col) == TileSea {
		return
	}
	cols := geo.g.cols
	if geo.inEdgeSea(col) {
		geo.g.Set(row, col, TileSea)
		return
	}
	fringe := col <= geo.p.EdgeSeaFringe || col >= cols-geo.p.EdgeSeaFringe
	if fringe && geo.rng.Chance(geo.p.EdgeSeaChance) {
		geo.g.Set(row, col, TileSea)
	}
}

// polarIce leaves the deterministic sea columns untouched so the west and
// east margins stay open water at every latitude.
func (geo geography) polarIce(row, col int) {
	if geo.inEdgeSea(col) {
		return
	}
	rows := geo.g.rows
	if row < geo.p.PolarIceRows || row >= rows-geo.p.PolarIceRows {
		geo.g.Set(row, col, TileIce)
		return
	}
	fringe := row <= geo.p.PolarIceFringe || row >= rows-geo.p.PolarIceFringe
	if fringe && geo.rng.Chance(geo.p.PolarIceChance) {
		geo.g.Set(row, col, TileIce)
	}
}

func (geo geography) tundra(row, col int) {
	t := geo.g.At(row, col)
	var cold Tile
	switch t {
	case TileLand:
		cold = TileTundra
	case TileHills:
		cold = TileTundraHills
	default:
		return
	}
	rows := geo.g.rows
	ice, band, fringe := geo.p.PolarIceFringe, geo.p.TundraRows, geo.p.TundraFringe
	switch {
	case (row >= ice && row <= band) || (row >= rows-band && row < rows-ice):
		geo.g.Set(row, col, cold)
	case (row >= band && row <= fringe) || (row >= rows-fringe && row < rows-band):
		if geo.rng.Chance(geo.p.TundraChance) {
			geo.g.Set(row, col, cold)
		}
	}
}

// peakIce caps cells whose whole neighbourhood is mountain or ice. Enclosed
// sea freezes too; only the deterministic sea columns are exempt.
func (geo geography) peakIce(row, col int) {
	if geo.inEdgeSea(col) {
		return
	}
	if !geo.g.surroundedByMountainOrIce(row, col) {
		return
	}
	if geo.rng.Chance(geo.p.PeakIceChance) {
		geo.g.Set(row, col, TileIce)
	}
}

func (geo geography) equatorDesert(row, col int) {
	rows := geo.g.rows
	if row < rows/3 || row >= 2*rows/3 {
		return
	}
	switch geo.g.At(row, col) {
	case TileLand:
		geo.g.Set(row, col, TileDesert)
	case TileHills:
		if geo.rng.Chance(geo.p.DesertHillChance) {
			geo.g.Set(row, col, TileDesert)
		}
	}
}

// surroundedByMountainOrIce reports whether every in-bounds Moore neighbour
// is a mountain or ice.
func (g *Grid) surroundedByMountainOrIce(row, col int) bool {
	for _, d := range mooreOffsets {
		r, c := row+d.Row, col+d.Col
		if !g.InBounds(r, c) {
			continue
		}
		if t := g.At(r, c); t != TileMountain && t != TileIce {
			return false
		}
	}
	return true
}
