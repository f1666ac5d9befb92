package terrain

import (
	"math"
	"testing"

	"grid-game/pkg/core"
)

func TestFloodplainsBorderRivers(t *testing.T) {
	g := gridFromRows(t,
		":::::",
		":::::",
		"::=::",
		":::::",
	)
	floodplains(g)
	want := gridFromRows(t,
		":::::",
		":\"\"\":",
		":\"=\":",
		":\"\"\":",
	)
	if dumpGrid(g) != dumpGrid(want) {
		t.Fatalf("floodplain layout:\n%s", dumpGrid(g))
	}
}

func TestForestChanceBands(t *testing.T) {
	cases := []struct {
		row  int
		want float64
	}{
		{0, 0.7},
		{17, 0.7},
		{20, 0.5},
		{30, 0.1},
		{50, 0},
		{80, 0.1},
		{82, 0.5},
		{95, 0.7},
	}
	for _, tc := range cases {
		if got := forestChance(tc.row, 100); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("forestChance(%d) = %f, want %f", tc.row, got, tc.want)
		}
	}
}

func TestJungleChanceBands(t *testing.T) {
	cases := []struct {
		row  int
		want float64
	}{
		{10, 0},
		{32, 0},
		{33, 0.2},
		{35, 0.2},
		{40, 0.4},
		{50, 0.7},
		{60, 0.4},
		{65, 0.2},
		{66, 0.2},
		{67, 0},
		{70, 0},
	}
	for _, tc := range cases {
		if got := jungleChance(tc.row, 100); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("jungleChance(%d) = %f, want %f", tc.row, got, tc.want)
		}
	}
}

func TestTaigaKeepsForest(t *testing.T) {
	g := NewGridFilled(13, 3, TileLand)
	g.Set(0, 0, TileForest)
	g.Set(1, 1, TileHills)
	taiga(g)
	if got := g.At(0, 0); got != TileForest {
		t.Fatalf("forest became %s", got)
	}
	if got := g.At(0, 1); got != TileTaiga {
		t.Fatalf("polar land became %s", got)
	}
	if got := g.At(1, 1); got != TileTaigaHills {
		t.Fatalf("polar hills became %s", got)
	}
	if got := g.At(6, 1); got != TileLand {
		t.Fatalf("mid-latitude land became %s", got)
	}
	if got := g.At(12, 2); got != TileTaiga {
		t.Fatalf("southern land became %s", got)
	}
}

func TestCoastRings(t *testing.T) {
	build := func() *Grid {
		g := NewGridFilled(9, 9, TileSea)
		g.Set(4, 4, TileLand)
		return g
	}
	chebyshev := func(row, col int) int {
		dr, dc := row-4, col-4
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		return max(dr, dc)
	}

	g := build()
	coast(g, 0, core.NewRNG(1))
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			want := TileSea
			switch chebyshev(row, col) {
			case 0:
				want = TileLand
			case 1:
				want = TileCoast
			}
			if got := g.At(row, col); got != want {
				t.Fatalf("(%d,%d) = %s, want %s\n%s", row, col, got, want, dumpGrid(g))
			}
		}
	}

	g = build()
	coast(g, 1, core.NewRNG(1))
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			d := chebyshev(row, col)
			if got := g.At(row, col); d > 0 && d <= 2 && got != TileCoast {
				t.Fatalf("(%d,%d) at radius %d = %s\n%s", row, col, d, got, dumpGrid(g))
			}
			if got := g.At(row, col); d > 2 && got != TileSea {
				t.Fatalf("(%d,%d) at radius %d = %s\n%s", row, col, d, got, dumpGrid(g))
			}
		}
	}
}

func TestCoastIgnoresIce(t *testing.T) {
	g := NewGridFilled(5, 5, TileSea)
	g.Set(2, 2, TileIce)
	coast(g, 1, core.NewRNG(3))
	if n := g.Count(TileCoast); n != 0 {
		t.Fatalf("ice produced %d coast cells", n)
	}
}

func TestDeepOceanOnlyReplacesSea(t *testing.T) {
	g := gridFromRows(t,
		"~~-",
		"~-.",
	)
	deepOcean(g, 1, core.NewRNG(5))
	if g.Count(TileSea) != 0 || g.Count(TileDeepOcean) != 3 {
		t.Fatalf("deep ocean conversion:\n%s", dumpGrid(g))
	}
	if g.Count(TileCoast) != 2 || g.Count(TileLand) != 1 {
		t.Fatalf("non-sea tiles changed:\n%s", dumpGrid(g))
	}
}
