package terrain

import (
	"slices"
	"testing"
)

func enclosedSea(t *testing.T) *Grid {
	return gridFromRows(t,
		"~~~~~~~~~~",
		"~~~~~~~~~~",
		"~~~~~~~~~~",
		"~~~~...~~~",
		"~~~~...~~~",
		"~~~~...~~~",
		"~~~~~~~~~~",
		"~~~~~~~~~~",
		"~~~~~~~~~~",
		"~~~~~~~~~~",
	)
}

func TestReclassifySmallSeaBecomesLake(t *testing.T) {
	g := enclosedSea(t)
	if n := reclassifyWaterBodies(g, 92); n != 1 {
		t.Fatalf("expected one component converted, got %d", n)
	}
	if g.Count(TileLake) != 91 || g.Count(TileSea) != 0 {
		t.Fatalf("sea ring not converted:\n%s", dumpGrid(g))
	}
	if g.Count(TileLand) != 9 {
		t.Fatalf("land centre changed:\n%s", dumpGrid(g))
	}
}

func TestReclassifyKeepsLargeSea(t *testing.T) {
	g := enclosedSea(t)
	if n := reclassifyWaterBodies(g, 91); n != 0 {
		t.Fatalf("component at threshold converted (%d)", n)
	}
	if g.Count(TileSea) != 91 {
		t.Fatalf("sea changed:\n%s", dumpGrid(g))
	}
}

func TestReclassifyIdempotent(t *testing.T) {
	g := gridFromRows(t,
		"~~..~~~~",
		"~...~~~~",
		"...~...~",
		"..~~..~~",
	)
	reclassifyWaterBodies(g, 5)
	once := slices.Clone(g.Cells())
	if n := reclassifyWaterBodies(g, 5); n != 0 {
		t.Fatalf("second pass converted %d components", n)
	}
	if !slices.Equal(once, g.Cells()) {
		t.Fatal("second pass changed the grid")
	}
}

func TestSeaComponentsUseDiagonals(t *testing.T) {
	g := gridFromRows(t,
		"~.",
		".~",
	)
	comps := seaComponents(g)
	if len(comps) != 1 || len(comps[0]) != 2 {
		t.Fatalf("diagonal sea cells should form one component, got %v", comps)
	}
	if n := reclassifyWaterBodies(g, 2); n != 0 {
		t.Fatal("two-cell component meets threshold 2")
	}
}

func TestLakeThreshold(t *testing.T) {
	p := DefaultConfig().Params
	if got := lakeThreshold(250, p); got != 83 {
		t.Fatalf("threshold for 250 cols = %d, want 83", got)
	}
}
