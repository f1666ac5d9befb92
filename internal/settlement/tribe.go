// Package settlement places and moves the player's tribe on a finished world.
package settlement

import (
	"errors"
	"fmt"

	"grid-game/internal/fog"
	"grid-game/internal/terrain"
	"grid-game/pkg/core"
)

// SightRadius is how far a tribe reveals fog around itself.
const SightRadius = 8

var (
	// ErrNoWalkableTile is returned when a world has nowhere to spawn.
	ErrNoWalkableTile = errors.New("settlement: no walkable tile")
	// ErrOutOfBounds is returned for moves that leave the world.
	ErrOutOfBounds = errors.New("settlement: move target out of bounds")
)

// Walkable reports whether a tribe may spawn on t.
func Walkable(t terrain.Tile) bool {
	switch t {
	case terrain.TileLand, terrain.TileHills, terrain.TileForest, terrain.TileJungle:
		return true
	}
	return false
}

// Tribe is the player's wandering group.
type Tribe struct {
	Name string

	row, col   int
	rows, cols int
}

// Spawn places a named tribe on a walkable tile chosen uniformly at random.
func Spawn(g *terrain.Grid, rng *core.RNG) (*Tribe, error) {
	var candidates []int
	for i, t := range g.Cells() {
		if Walkable(t) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoWalkableTile
	}
	idx := candidates[rng.IntN(len(candidates))]
	return &Tribe{
		Name: Name(rng),
		row:  idx / g.Cols(),
		col:  idx % g.Cols(),
		rows: g.Rows(),
		cols: g.Cols(),
	}, nil
}

// Position returns the tribe's cell.
func (t *Tribe) Position() (row, col int) { return t.row, t.col }

// RevealFog uncovers a disc of SightRadius around the tribe.
func (t *Tribe) RevealFog(m *fog.Map) {
	m.RevealRadius(t.row, t.col, SightRadius)
}

// MoveTo relocates the tribe. Targets outside the world are rejected and
// leave the tribe in place.
func (t *Tribe) MoveTo(row, col int) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	t.row, t.col = row, col
	return nil
}

// MoveBy shifts the tribe by (dr, dc).
func (t *Tribe) MoveBy(dr, dc int) error {
	return t.MoveTo(t.row+dr, t.col+dc)
}
