package terrain

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func smallConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Rows = 60
	cfg.Cols = 90
	cfg.Seed = seed
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(smallConfig(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(smallConfig(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different worlds")
	}

	c, err := Generate(smallConfig(43))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical worlds")
	}
}

func TestGenerateInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := smallConfig(seed)
		g, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if g.Rows() != cfg.Rows || g.Cols() != cfg.Cols {
			t.Fatalf("seed %d: grid resized to %dx%d", seed, g.Rows(), g.Cols())
		}
		counts, unknown := g.Histogram()
		if unknown != 0 || counts[TileUnassigned] != 0 || counts[TileRiverSource] != 0 {
			t.Fatalf("seed %d: leftover values unknown=%d unassigned=%d sources=%d",
				seed, unknown, counts[TileUnassigned], counts[TileRiverSource])
		}
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				tile := g.At(row, col)
				edge := col < cfg.Params.EdgeSeaCols || col >= cfg.Cols-cfg.Params.EdgeSeaCols
				if edge && tile != TileSea && tile != TileCoast && tile != TileDeepOcean {
					t.Fatalf("seed %d: edge cell (%d,%d) is %s", seed, row, col, tile)
				}
				if tile == TileSea || tile == TileDeepOcean {
					for _, d := range mooreOffsets {
						r, c := row+d.Row, col+d.Col
						if !g.InBounds(r, c) {
							continue
						}
						switch n := g.At(r, c); n {
						case TileSea, TileDeepOcean, TileIce, TileCoast:
						default:
							t.Fatalf("seed %d: open water (%d,%d) touches %s", seed, row, col, n)
						}
					}
				}
			}
		}
	}
}

func TestOnStageObservesEveryStage(t *testing.T) {
	cfg := smallConfig(7)
	gen, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var seen []Stage
	gen.OnStage = func(s Stage, g *Grid) {
		seen = append(seen, s)
		switch s {
		case StageTyping:
			if n := g.Count(TileUnassigned); n != 0 {
				t.Fatalf("%d cells unassigned after typing", n)
			}
		case StageGeography:
			checkEdgeSea(t, g, cfg.Params.EdgeSeaCols)
		case StageHydrology:
			if n := g.Count(TileRiverSource); n != 0 {
				t.Fatalf("%d river sources after hydrology", n)
			}
		case StageWaterBodies:
			threshold := lakeThreshold(cfg.Cols, cfg.Params)
			for _, comp := range seaComponents(g) {
				if len(comp) < threshold {
					t.Fatalf("sea component of %d cells survived threshold %d", len(comp), threshold)
				}
			}
		}
	}
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !slices.Equal(seen, Stages[:]) {
		t.Fatalf("stages observed %v, want %v", seen, Stages)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.RegionCount = -1
	if _, err := New(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerateReportsBudgetExhaustion(t *testing.T) {
	cfg := smallConfig(3)
	cfg.Params.RiverSourceChance = 100
	cfg.Params.RiverStepBudget = 1
	if _, err := Generate(cfg); !errors.Is(err, ErrRiverBudgetExhausted) {
		t.Fatalf("expected ErrRiverBudgetExhausted, got %v", err)
	}
}

func TestGenerateLogsStages(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gen, err := New(smallConfig(11), log)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := buf.String()
	for _, s := range Stages {
		if !strings.Contains(out, "stage="+s.String()) {
			t.Fatalf("no log line for stage %s:\n%s", s, out)
		}
	}
	if !strings.Contains(out, "world generated") {
		t.Fatal("missing summary line")
	}
}

func TestValidateFlagsSentinel(t *testing.T) {
	g := NewGridFilled(2, 3, TileLand)
	if err := Validate(g); err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
	g.Set(1, 2, TileUnassigned)
	if err := Validate(g); !errors.Is(err, ErrInvalidTile) {
		t.Fatalf("expected ErrInvalidTile, got %v", err)
	}
	g.Set(1, 2, Tile(99))
	if err := Validate(g); !errors.Is(err, ErrInvalidTile) {
		t.Fatalf("expected ErrInvalidTile, got %v", err)
	}
}

func TestStageString(t *testing.T) {
	if StageWaterBodies.String() != "water-bodies" {
		t.Fatalf("unexpected name %q", StageWaterBodies.String())
	}
	if got := Stage(42).String(); got != "Stage(42)" {
		t.Fatalf("unknown stage = %q", got)
	}
}
