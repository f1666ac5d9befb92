package terrain

import (
	"fmt"
	"io"
	"log/slog"

	"grid-game/pkg/core"
)

// Stage identifies one step of the generation pipeline.
type Stage int

const (
	StagePartition Stage = iota
	StageTyping
	StageSmooth
	StageBlend
	StageGeography
	StageHydrology
	StageWaterBodies
	StageRefine
)

// Stages lists the pipeline in execution order.
var Stages = [...]Stage{
	StagePartition,
	StageTyping,
	StageSmooth,
	StageBlend,
	StageGeography,
	StageHydrology,
	StageWaterBodies,
	StageRefine,
}

var stageNames = [...]string{
	StagePartition:   "partition",
	StageTyping:      "typing",
	StageSmooth:      "smooth",
	StageBlend:       "blend",
	StageGeography:   "geography",
	StageHydrology:   "hydrology",
	StageWaterBodies: "water-bodies",
	StageRefine:      "refine",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Generator runs the pipeline for one configuration. It is not safe for
// concurrent use; run independent worlds with independent generators.
type Generator struct {
	cfg Config
	rng *core.RNG
	log *slog.Logger

	// OnStage, when set, is called after every stage with the working grid.
	// The grid must not be retained or modified.
	OnStage func(Stage, *Grid)
}

// New validates cfg and returns a generator seeded from cfg.Seed. A nil
// logger discards output.
func New(cfg Config, log *slog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		cfg: cfg,
		rng: core.NewRNG(cfg.Seed),
		log: log.With("seed", cfg.Seed, "rows", cfg.Rows, "cols", cfg.Cols),
	}, nil
}

// Config returns the configuration the generator was built with.
func (gen *Generator) Config() Config { return gen.cfg }

// RNG returns the generator's random stream so layers derived from the world
// stay reproducible from the same seed.
func (gen *Generator) RNG() *core.RNG { return gen.rng }

// Generate runs every stage in order and returns the finished grid. Calling
// it again continues the same random stream and yields a different world.
func (gen *Generator) Generate() (*Grid, error) {
	cfg := gen.cfg
	p := cfg.Params
	g := NewGrid(cfg.Rows, cfg.Cols)

	regions, _ := partitionRegions(cfg.Rows, cfg.Cols, p, gen.rng)
	gen.stageDone(StagePartition, g, "unassigned", regions.Unassigned())

	classes := assignRegionTypes(g, regions, p.RegionCount, gen.rng)
	gen.stageDone(StageTyping, g, "regions", len(classes))

	smooth(g, p.SmoothPasses)
	gen.stageDone(StageSmooth, g, "passes", p.SmoothPasses)

	blend(g, p.BlendPasses, gen.rng)
	gen.stageDone(StageBlend, g, "passes", p.BlendPasses)

	applyGeography(g, p, gen.rng)
	gen.stageDone(StageGeography, g, "ice", g.Count(TileIce), "desert", g.Count(TileDesert))

	hydro, err := runHydrology(g, p, cfg.riverBudget(), gen.rng)
	if err != nil {
		return nil, fmt.Errorf("hydrology: %w", err)
	}
	gen.stageDone(StageHydrology, g, "sources", hydro.Sources, "steps", hydro.Steps)

	lakes := reclassifyWaterBodies(g, lakeThreshold(cfg.Cols, p))
	gen.stageDone(StageWaterBodies, g, "lakes", lakes)

	refineBiomes(g, p, gen.rng)
	gen.stageDone(StageRefine, g, "coast", g.Count(TileCoast), "deep_ocean", g.Count(TileDeepOcean))

	if err := Validate(g); err != nil {
		return nil, err
	}
	gen.log.Info("world generated",
		"river", g.Count(TileRiver),
		"lakes", lakes,
		"land", g.Len()-g.Count(TileSea)-g.Count(TileDeepOcean)-g.Count(TileCoast)-g.Count(TileLake),
	)
	return g, nil
}

func (gen *Generator) stageDone(s Stage, g *Grid, attrs ...any) {
	gen.log.Debug("stage complete", append([]any{"stage", s.String()}, attrs...)...)
	if gen.OnStage != nil {
		gen.OnStage(s, g)
	}
}

// Validate reports ErrInvalidTile when any cell holds the construction
// sentinel or a value outside the enumeration.
func Validate(g *Grid) error {
	for i, t := range g.cells {
		if !t.Valid() {
			return fmt.Errorf("%w: %s at row %d col %d", ErrInvalidTile, t, i/g.cols, i%g.cols)
		}
	}
	return nil
}

// Generate builds a world from cfg without logging.
func Generate(cfg Config) (*Grid, error) {
	gen, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}
