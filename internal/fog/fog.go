// Package fog tracks which cells of a world the player has explored.
package fog

import "grid-game/internal/core"

// State is the visibility of one cell.
type State uint8

const (
	Hidden State = iota
	Seen
	Visible
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Seen:
		return "seen"
	case Visible:
		return "visible"
	default:
		return "invalid"
	}
}

// Map holds one State per cell. It depends only on the world dimensions, not
// on terrain.
type Map struct {
	grid *core.ByteGrid
}

// New returns a fully hidden map.
func New(rows, cols int) *Map {
	return &Map{grid: core.NewByteGrid(rows, cols)}
}

// Rows returns the number of rows.
func (m *Map) Rows() int { return m.grid.Rows }

// Cols returns the number of columns.
func (m *Map) Cols() int { return m.grid.Cols }

// Cells exposes the states in row-major order for rendering.
func (m *Map) Cells() []uint8 { return m.grid.Cells() }

// At returns the state of (row, col). Out of bounds cells report Hidden.
func (m *Map) At(row, col int) State {
	if !m.grid.InBounds(row, col) {
		return Hidden
	}
	return State(m.grid.At(row, col))
}

// Reveal marks (row, col) visible. Out of bounds coordinates are ignored.
func (m *Map) Reveal(row, col int) {
	if m.grid.InBounds(row, col) {
		m.grid.Set(row, col, uint8(Visible))
	}
}

// RevealRadius marks every in-bounds cell within Euclidean distance radius of
// (row, col) visible.
func (m *Map) RevealRadius(row, col, radius int) {
	r2 := radius * radius
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc <= r2 {
				m.Reveal(row+dr, col+dc)
			}
		}
	}
}

// MarkSeen demotes every visible cell to seen.
func (m *Map) MarkSeen() {
	cells := m.grid.Cells()
	for i, v := range cells {
		if State(v) == Visible {
			cells[i] = uint8(Seen)
		}
	}
}

// Reset hides every cell.
func (m *Map) Reset() { m.grid.Clear() }

// Count returns the number of cells in state s.
func (m *Map) Count(s State) int {
	n := 0
	for _, v := range m.grid.Cells() {
		if State(v) == s {
			n++
		}
	}
	return n
}
