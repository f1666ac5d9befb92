// Package fertility derives a per-cell fertility layer from finished terrain.
package fertility

import (
	"grid-game/internal/terrain"
	"grid-game/pkg/core"
)

const (
	// Max is the ceiling every fertility value is clamped to.
	Max = 10.0
	// Fallback is the base fertility of values outside the enumeration.
	Fallback = 1.0
)

var bases = map[terrain.Tile]float64{
	terrain.TileSea:         3,
	terrain.TileLand:        5,
	terrain.TileHills:       4,
	terrain.TileMountain:    0.3,
	terrain.TileRiverSource: 5,
	terrain.TileRiver:       5,
	terrain.TileIce:         0,
	terrain.TileTundra:      0.5,
	terrain.TileTundraHills: 0,
	terrain.TileTaiga:       1,
	terrain.TileTaigaHills:  0.5,
	terrain.TileDesert:      0,
	terrain.TileDesertHills: 0,
	terrain.TileIceCap:      0,
	terrain.TileLake:        5,
	terrain.TileFloodplain:  8,
	terrain.TileForest:      5,
	terrain.TileForestHills: 4,
	terrain.TileJungle:      2,
	terrain.TileJungleHills: 2,
	terrain.TileCoast:       5,
	terrain.TileDeepOcean:   1,
}

// Base returns the nominal fertility of a tile before jitter and blur.
func Base(t terrain.Tile) float64 {
	if v, ok := bases[t]; ok {
		return v
	}
	return Fallback
}

// Map holds fertility values in [0, Max] in row-major order.
type Map struct {
	rows, cols int
	vals       []float64
}

// Rows returns the number of rows.
func (m *Map) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Map) Cols() int { return m.cols }

// At returns the fertility of (row, col).
func (m *Map) At(row, col int) float64 { return m.vals[row*m.cols+col] }

// Values exposes the backing slice.
func (m *Map) Values() []float64 { return m.vals }

// Mean returns the average fertility, or 0 for an empty map.
func (m *Map) Mean() float64 {
	if len(m.vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range m.vals {
		sum += v
	}
	return sum / float64(len(m.vals))
}

// Generate jitters each tile's base fertility by up to ±(0.2 + 0.1·base),
// clamps to [0, Max] and smooths the result with a 3×3 box blur clipped at
// the grid edges.
func Generate(g *terrain.Grid, rng *core.RNG) *Map {
	rows, cols := g.Rows(), g.Cols()
	raw := make([]float64, g.Len())
	for i, t := range g.Cells() {
		base := Base(t)
		spread := 0.2 + 0.1*base
		raw[i] = clamp(base+rng.Uniform(-spread, spread), 0, Max)
	}
	return &Map{rows: rows, cols: cols, vals: boxBlur(raw, rows, cols)}
}

func boxBlur(src []float64, rows, cols int) []float64 {
	out := make([]float64, len(src))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sum, n := 0.0, 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					r, c := row+dr, col+dc
					if r < 0 || r >= rows || c < 0 || c >= cols {
						continue
					}
					sum += src[r*cols+c]
					n++
				}
			}
			out[row*cols+col] = sum / float64(n)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
