package terrain

import (
	"fmt"

	"grid-game/pkg/core"
)

const (
	// Unreachable is the distance assigned to cells no sea tile can reach.
	Unreachable = 1 << 30
	// RiverElevation pins traced river cells above any natural elevation so
	// a trace never selects them as the lowest neighbour.
	RiverElevation = 200

	elevationPeak      = 100
	elevationLowland   = 40
	elevationHighland  = 60
	hillNeighborGain   = 3
	peakNeighborGain   = 5
	seaNeighborPenalty = 5
)

// Field is an integer matrix with the same dimensions as a Grid.
type Field struct {
	rows, cols int
	vals       []int
}

// newFieldFor allocates a zeroed field sized to match g.
func newFieldFor(g *Grid) *Field {
	return &Field{rows: g.rows, cols: g.cols, vals: make([]int, g.rows*g.cols)}
}

// mustMatch panics when the field and grid dimensions differ. A mismatch is
// a programming error, not a runtime condition.
func (f *Field) mustMatch(g *Grid) {
	if f.rows != g.rows || f.cols != g.cols || len(f.vals) != len(g.cells) {
		panic(fmt.Sprintf("terrain: field %dx%d does not match grid %dx%d", f.rows, f.cols, g.rows, g.cols))
	}
}

// At returns the value at (row, col).
func (f *Field) At(row, col int) int { return f.vals[row*f.cols+col] }

// Set writes the value at (row, col).
func (f *Field) Set(row, col, v int) { f.vals[row*f.cols+col] = v }

// Values exposes the backing slice in row-major order.
func (f *Field) Values() []int { return f.vals }

// DistanceField holds cardinal-step distances to the nearest sea tile.
type DistanceField struct{ Field }

// ElevationField holds derived heights used to route rivers. Zero is sea
// level.
type ElevationField struct{ Field }

// NewElevationField wraps values for grid g. It panics when the dimensions
// disagree.
func NewElevationField(g *Grid, vals []int) *ElevationField {
	f := &ElevationField{Field{rows: g.rows, cols: g.cols, vals: vals}}
	f.mustMatch(g)
	return f
}

// buildDistanceField runs a multi-source breadth-first search from every sea
// cell over 4-connectivity.
func buildDistanceField(g *Grid) *DistanceField {
	d := &DistanceField{*newFieldFor(g)}
	queue := make([]Point, 0, len(g.cells))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.At(row, col) == TileSea {
				queue = append(queue, Point{Row: row, Col: col})
				continue
			}
			d.Set(row, col, Unreachable)
		}
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := d.At(cur.Row, cur.Col) + 1
		for _, dir := range cardinalOffsets {
			r, c := cur.Row+dir.Row, cur.Col+dir.Col
			if !g.InBounds(r, c) || next >= d.At(r, c) {
				continue
			}
			d.Set(r, c, next)
			queue = append(queue, Point{Row: r, Col: c})
		}
	}
	return d
}

// baseElevation returns the terrain-weighted height of (row, col) before the
// sea distance is added.
func baseElevation(g *Grid, row, col int) int {
	t := g.At(row, col)
	var base int
	switch {
	case t == TileSea:
		return 0
	case t == TileMountain || t == TileLake:
		return elevationPeak
	case t == TileLand || t == TileTundra || t == TileDesert:
		base = elevationLowland
	case t.IsHillFamily():
		base = elevationHighland
	default:
		return 0
	}
	var hills, peaks, seas int
	for _, d := range mooreOffsets {
		r, c := row+d.Row, col+d.Col
		if !g.InBounds(r, c) {
			continue
		}
		switch n := g.At(r, c); {
		case n.IsHillFamily():
			hills++
		case n == TileMountain:
			peaks++
		case n == TileSea:
			seas++
		}
	}
	return base + hillNeighborGain*hills + peakNeighborGain*peaks - seaNeighborPenalty*seas
}

// buildElevation derives the elevation field and seeds river sources. Cells
// seeded as river sources keep elevation zero so later traces can drain into
// them.
func buildElevation(g *Grid, dist *DistanceField, riverChance int, rng *core.RNG) (*ElevationField, int) {
	dist.mustMatch(g)
	elev := &ElevationField{*newFieldFor(g)}
	seeded := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			h := baseElevation(g, row, col) + dist.At(row, col)
			if g.At(row, col) != TileSea && h > 1 && rng.IntN(100)+1 <= riverChance {
				g.Set(row, col, TileRiverSource)
				seeded++
				continue
			}
			elev.Set(row, col, h)
		}
	}
	return elev, seeded
}

// lowestNeighbor returns the Moore neighbour with the strictly lowest
// elevation. The first neighbour in scan order wins ties.
func lowestNeighbor(elev *ElevationField, row, col int) (Point, bool) {
	best := Point{Row: -1, Col: -1}
	bestH := 0
	found := false
	for _, d := range mooreOffsets {
		r, c := row+d.Row, col+d.Col
		if r < 0 || r >= elev.rows || c < 0 || c >= elev.cols {
			continue
		}
		if h := elev.At(r, c); !found || h < bestH {
			best, bestH, found = Point{Row: r, Col: c}, h, true
		}
	}
	return best, found
}

// traceRivers walks every river source downhill. Each step turns one source
// into river, pins it to RiverElevation and marks the lowest neighbour as the
// next source unless that neighbour is already sea or river. It returns the
// number of steps taken, or ErrRiverBudgetExhausted when sources remain after
// budget steps.
func traceRivers(g *Grid, elev *ElevationField, budget int) (int, error) {
	elev.mustMatch(g)
	var pending []Point
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.At(row, col) == TileRiverSource {
				pending = append(pending, Point{Row: row, Col: col})
			}
		}
	}

	steps := 0
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if g.At(cur.Row, cur.Col) != TileRiverSource {
			continue
		}
		if steps >= budget {
			return steps, fmt.Errorf("%w: %d steps, %d sources pending", ErrRiverBudgetExhausted, steps, len(pending)+1)
		}
		steps++

		g.Set(cur.Row, cur.Col, TileRiver)
		elev.Set(cur.Row, cur.Col, RiverElevation)

		next, ok := lowestNeighbor(elev, cur.Row, cur.Col)
		if !ok {
			continue
		}
		switch g.At(next.Row, next.Col) {
		case TileSea, TileRiver:
			continue
		}
		g.Set(next.Row, next.Col, TileRiverSource)
		pending = append(pending, next)
	}
	return steps, nil
}

// hydrologyResult summarizes one hydrology run for logging.
type hydrologyResult struct {
	Sources int
	Steps   int
}

// runHydrology builds the distance and elevation fields, seeds river sources
// and traces them to termination.
func runHydrology(g *Grid, p Params, budget int, rng *core.RNG) (hydrologyResult, error) {
	dist := buildDistanceField(g)
	elev, seeded := buildElevation(g, dist, p.RiverSourceChance, rng)
	steps, err := traceRivers(g, elev, budget)
	return hydrologyResult{Sources: seeded, Steps: steps}, err
}
