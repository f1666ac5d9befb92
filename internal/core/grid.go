package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *ByteGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col). The coordinates must be in bounds.
func (g *ByteGrid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Set writes v at (row, col). The coordinates must be in bounds.
func (g *ByteGrid) Set(row, col int, v uint8) { g.data[g.Index(row, col)] = v }

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }
