package settlement

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"grid-game/internal/fog"
	"grid-game/internal/terrain"
	"grid-game/pkg/core"
)

func TestSpawnPicksWalkableTile(t *testing.T) {
	g := terrain.NewGridFilled(10, 10, terrain.TileSea)
	g.Set(3, 7, terrain.TileForest)
	g.Set(8, 1, terrain.TileJungle)
	rng := core.NewRNG(2)
	for i := 0; i < 20; i++ {
		tribe, err := Spawn(g, rng)
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		row, col := tribe.Position()
		if !Walkable(g.At(row, col)) {
			t.Fatalf("spawned on %s at (%d,%d)", g.At(row, col), row, col)
		}
	}
}

func TestSpawnCoversCandidates(t *testing.T) {
	g := terrain.NewGridFilled(4, 4, terrain.TileMountain)
	g.Set(0, 0, terrain.TileLand)
	g.Set(3, 3, terrain.TileHills)
	rng := core.NewRNG(6)
	seen := map[[2]int]bool{}
	for i := 0; i < 200; i++ {
		tribe, err := Spawn(g, rng)
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		row, col := tribe.Position()
		seen[[2]int{row, col}] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both candidates to be chosen, saw %v", seen)
	}
}

func TestSpawnWithoutWalkableTile(t *testing.T) {
	g := terrain.NewGridFilled(5, 5, terrain.TileIce)
	if _, err := Spawn(g, core.NewRNG(1)); !errors.Is(err, ErrNoWalkableTile) {
		t.Fatalf("expected ErrNoWalkableTile, got %v", err)
	}
}

func TestWalkable(t *testing.T) {
	walkable := []terrain.Tile{terrain.TileLand, terrain.TileHills, terrain.TileForest, terrain.TileJungle}
	for i := 0; i < terrain.TileCount; i++ {
		tile := terrain.Tile(i)
		if got, want := Walkable(tile), slices.Contains(walkable, tile); got != want {
			t.Fatalf("Walkable(%s) = %v, want %v", tile, got, want)
		}
	}
}

func TestMoveToBounds(t *testing.T) {
	g := terrain.NewGridFilled(6, 8, terrain.TileLand)
	tribe, err := Spawn(g, core.NewRNG(3))
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if err := tribe.MoveTo(5, 7); err != nil {
		t.Fatalf("in-bounds move rejected: %v", err)
	}
	if err := tribe.MoveTo(6, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := tribe.MoveBy(0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if row, col := tribe.Position(); row != 5 || col != 7 {
		t.Fatalf("rejected move changed position to (%d,%d)", row, col)
	}
	if err := tribe.MoveBy(-2, -3); err != nil {
		t.Fatalf("relative move rejected: %v", err)
	}
	if row, col := tribe.Position(); row != 3 || col != 4 {
		t.Fatalf("position after MoveBy = (%d,%d)", row, col)
	}
}

func TestRevealFogRadius(t *testing.T) {
	g := terrain.NewGridFilled(30, 30, terrain.TileLand)
	tribe, err := Spawn(g, core.NewRNG(8))
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if err := tribe.MoveTo(15, 15); err != nil {
		t.Fatalf("move: %v", err)
	}
	m := fog.New(30, 30)
	tribe.RevealFog(m)
	if m.At(15, 15+SightRadius) != fog.Visible {
		t.Fatal("cell at sight radius should be visible")
	}
	if m.At(15+SightRadius, 15+1) != fog.Hidden {
		t.Fatal("cell just outside the disc should stay hidden")
	}
}

func TestNameUsesSyllables(t *testing.T) {
	rng := core.NewRNG(12)
	for i := 0; i < 50; i++ {
		name := Name(rng)
		ok := false
		for _, first := range firstSyllables {
			if strings.HasPrefix(name, first) {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("name %q does not start with a known syllable", name)
		}
		ok = false
		for _, last := range lastSyllables {
			if strings.HasSuffix(name, last) {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("name %q does not end with a known syllable", name)
		}
	}
}
