package terrain

import "strings"

// Point addresses a grid cell.
type Point struct {
	Row, Col int
}

// mooreOffsets lists the eight neighbours in row-major scan order.
var mooreOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// cardinalOffsets lists the four edge-adjacent neighbours.
var cardinalOffsets = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid stores a rows × cols matrix of tiles in row-major order. Its
// dimensions are fixed at construction.
type Grid struct {
	rows, cols int
	cells      []Tile
}

// NewGrid allocates a grid filled with TileUnassigned.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Tile, rows*cols)}
	g.Fill(TileUnassigned)
	return g
}

// NewGridFilled allocates a grid with every cell set to t.
func NewGridFilled(rows, cols int, t Tile) *Grid {
	g := NewGrid(rows, cols)
	g.Fill(t)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice. Consumers must treat it as read-only once
// generation has finished.
func (g *Grid) Cells() []Tile { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the tile at (row, col). The coordinates must be in bounds.
func (g *Grid) At(row, col int) Tile { return g.cells[row*g.cols+col] }

// Set writes the tile at (row, col). The coordinates must be in bounds.
func (g *Grid) Set(row, col int, t Tile) { g.cells[row*g.cols+col] = t }

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.cells {
		g.cells[i] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]Tile, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Histogram counts every tile value. Values outside the enumeration are
// accumulated in the returned unknown count.
func (g *Grid) Histogram() (counts [TileCount]int, unknown int) {
	for _, c := range g.cells {
		if int(c) >= TileCount {
			unknown++
			continue
		}
		counts[c]++
	}
	return counts, unknown
}

// String renders the grid as glyph rows, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, t := range g.cells[r*g.cols : (r+1)*g.cols] {
			b.WriteByte(t.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// countMoore returns how many in-bounds Moore neighbours of (row, col)
// satisfy match.
func (g *Grid) countMoore(row, col int, match func(Tile) bool) int {
	n := 0
	for _, d := range mooreOffsets {
		r, c := row+d.Row, col+d.Col
		if !g.InBounds(r, c) {
			continue
		}
		if match(g.At(r, c)) {
			n++
		}
	}
	return n
}

// anyMoore reports whether any in-bounds Moore neighbour equals t.
func (g *Grid) anyMoore(row, col int, t Tile) bool {
	for _, d := range mooreOffsets {
		r, c := row+d.Row, col+d.Col
		if g.InBounds(r, c) && g.At(r, c) == t {
			return true
		}
	}
	return false
}
