package terrain

import (
	"errors"
	"testing"

	"grid-game/pkg/core"
)

func TestDistanceFieldFromSeaColumn(t *testing.T) {
	g := gridFromRows(t,
		"~....",
		"~.^..",
		"~....",
	)
	d := buildDistanceField(g)
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			if got := d.At(row, col); got != col {
				t.Fatalf("distance at (%d,%d) = %d, want %d", row, col, got, col)
			}
		}
	}
}

func TestDistanceFieldProperties(t *testing.T) {
	g := gridFromRows(t,
		"....~...",
		".^^.....",
		"......~.",
		"~.......",
	)
	d := buildDistanceField(g)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := d.At(row, col)
			if g.At(row, col) == TileSea {
				if v != 0 {
					t.Fatalf("sea cell (%d,%d) has distance %d", row, col, v)
				}
				continue
			}
			if v < 1 {
				t.Fatalf("land cell (%d,%d) has distance %d", row, col, v)
			}
			// Some cardinal neighbour is exactly one step closer.
			closer := false
			for _, dir := range cardinalOffsets {
				r, c := row+dir.Row, col+dir.Col
				if g.InBounds(r, c) && d.At(r, c) == v-1 {
					closer = true
				}
			}
			if !closer {
				t.Fatalf("cell (%d,%d) distance %d has no predecessor", row, col, v)
			}
		}
	}
}

func TestDistanceFieldUnreachableWithoutSea(t *testing.T) {
	g := NewGridFilled(3, 4, TileLand)
	d := buildDistanceField(g)
	for i, v := range d.Values() {
		if v != Unreachable {
			t.Fatalf("cell %d distance %d, want Unreachable", i, v)
		}
	}
}

func TestBaseElevation(t *testing.T) {
	g := gridFromRows(t,
		"n^~",
		"...",
		"n..",
	)
	// Land centre: 40 + 3*2 hills + 5*1 mountain - 5*1 sea.
	if got := baseElevation(g, 1, 1); got != 46 {
		t.Fatalf("land elevation = %d, want 46", got)
	}
	g.Set(1, 1, TileDesertHills)
	if got := baseElevation(g, 1, 1); got != 66 {
		t.Fatalf("hill elevation = %d, want 66", got)
	}
	g.Set(1, 1, TileMountain)
	if got := baseElevation(g, 1, 1); got != 100 {
		t.Fatalf("mountain elevation = %d, want 100", got)
	}
	if got := baseElevation(g, 0, 2); got != 0 {
		t.Fatalf("sea elevation = %d, want 0", got)
	}
	g.Set(1, 1, TileIce)
	if got := baseElevation(g, 1, 1); got != 0 {
		t.Fatalf("ice elevation = %d, want 0", got)
	}
}

func TestBuildElevationSeeding(t *testing.T) {
	g := gridFromRows(t,
		"~...",
		"~.n.",
	)
	dist := buildDistanceField(g)
	elev, seeded := buildElevation(g, dist, 0, core.NewRNG(1))
	if seeded != 0 || g.Count(TileRiverSource) != 0 {
		t.Fatal("zero chance must not seed sources")
	}
	if got, want := elev.At(1, 2), baseElevation(g, 1, 2)+2; got != want {
		t.Fatalf("elevation (1,2) = %d, want %d", got, want)
	}

	elev, seeded = buildElevation(g, dist, 100, core.NewRNG(1))
	if seeded != 6 || g.Count(TileRiverSource) != 6 {
		t.Fatalf("full chance seeded %d cells, want 6", seeded)
	}
	for row := 0; row < 2; row++ {
		for col := 1; col < 4; col++ {
			if elev.At(row, col) != 0 {
				t.Fatalf("seeded cell (%d,%d) kept elevation %d", row, col, elev.At(row, col))
			}
		}
	}
}

// ridgeElevation slopes down towards column 0 with a valley along row 2.
func ridgeElevation(g *Grid) *ElevationField {
	vals := make([]int, g.Len())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			dr := row - 2
			if dr < 0 {
				dr = -dr
			}
			vals[g.Index(row, col)] = col*10 + dr*5
		}
	}
	return NewElevationField(g, vals)
}

func TestTraceRiverFollowsValley(t *testing.T) {
	g := NewGridFilled(5, 10, TileLand)
	for row := 0; row < 5; row++ {
		g.Set(row, 0, TileSea)
	}
	g.Set(2, 4, TileRiverSource)
	elev := ridgeElevation(g)

	steps, err := traceRivers(g, elev, g.Len())
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if steps != 4 {
		t.Fatalf("expected 4 steps, got %d", steps)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			want := TileLand
			switch {
			case col == 0:
				want = TileSea
			case row == 2 && col >= 1 && col <= 4:
				want = TileRiver
			}
			if got := g.At(row, col); got != want {
				t.Fatalf("(%d,%d) = %s, want %s\n%s", row, col, got, want, dumpGrid(g))
			}
		}
	}
	for col := 1; col <= 4; col++ {
		if got := elev.At(2, col); got != RiverElevation {
			t.Fatalf("river cell (2,%d) elevation %d, want %d", col, got, RiverElevation)
		}
	}
}

func TestTraceRiverStopsAtExistingRiver(t *testing.T) {
	g := NewGridFilled(5, 10, TileLand)
	g.Set(2, 2, TileRiver)
	g.Set(2, 5, TileRiverSource)
	elev := ridgeElevation(g)

	steps, err := traceRivers(g, elev, g.Len())
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 steps before joining the river, got %d", steps)
	}
	if g.Count(TileRiver) != 4 || g.Count(TileRiverSource) != 0 {
		t.Fatalf("unexpected river layout:\n%s", dumpGrid(g))
	}
}

func TestTraceRiverBudgetExhausted(t *testing.T) {
	g := NewGridFilled(5, 10, TileLand)
	for row := 0; row < 5; row++ {
		g.Set(row, 0, TileSea)
	}
	g.Set(2, 4, TileRiverSource)

	steps, err := traceRivers(g, ridgeElevation(g), 2)
	if !errors.Is(err, ErrRiverBudgetExhausted) {
		t.Fatalf("expected ErrRiverBudgetExhausted, got %v", err)
	}
	if steps != 2 {
		t.Fatalf("expected 2 steps, got %d", steps)
	}
}

func TestLowestNeighborTieUsesScanOrder(t *testing.T) {
	g := NewGridFilled(3, 3, TileLand)
	elev := NewElevationField(g, []int{
		9, 5, 9,
		5, 9, 5,
		9, 5, 9,
	})
	p, ok := lowestNeighbor(elev, 1, 1)
	if !ok || p != (Point{Row: 0, Col: 1}) {
		t.Fatalf("lowest neighbour = %+v, want (0,1)", p)
	}
}

func TestElevationFieldDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on dimension mismatch")
		}
	}()
	NewElevationField(NewGrid(3, 3), make([]int, 8))
}

func TestRunHydrologyLeavesNoSources(t *testing.T) {
	g := NewGridFilled(20, 30, TileLand)
	for row := 0; row < 20; row++ {
		g.Set(row, 0, TileSea)
		g.Set(row, 29, TileSea)
	}
	p := DefaultConfig().Params
	p.RiverSourceChance = 20
	res, err := runHydrology(g, p, g.Len(), core.NewRNG(9))
	if err != nil {
		t.Fatalf("hydrology failed: %v", err)
	}
	if res.Sources == 0 || res.Steps < res.Sources {
		t.Fatalf("unexpected result %+v", res)
	}
	if n := g.Count(TileRiverSource); n != 0 {
		t.Fatalf("%d sources left untraced", n)
	}
}
