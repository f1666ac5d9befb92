package world

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/google/uuid"

	"grid-game/internal/core"
	"grid-game/internal/fertility"
	"grid-game/internal/fog"
	"grid-game/internal/render"
	"grid-game/internal/settlement"
	"grid-game/internal/terrain"
)

// World wraps one generated terrain grid together with its derived layers:
// fertility, fog of war and the player's tribe.
type World struct {
	cfg Config
	log *slog.Logger

	id      uuid.UUID
	seed    int64
	grid    *terrain.Grid
	fert    *fertility.Map
	fog     *fog.Map
	tribe   *settlement.Tribe
	dappler *render.Dappler
	display []uint8
	err     error
}

// New returns an empty world. Call Reset to generate terrain.
func New(cfg Config, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{cfg: cfg, log: log, seed: cfg.Terrain.Seed}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "world" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.cfg.Terrain.Cols, H: w.cfg.Terrain.Rows}
}

// Cells exposes the tile values as bytes for generic painters.
func (w *World) Cells() []uint8 { return w.display }

// ID identifies the current generation run in logs.
func (w *World) ID() uuid.UUID { return w.id }

// Seed returns the seed of the current world.
func (w *World) Seed() int64 { return w.seed }

// Grid returns the generated terrain, or nil when generation failed.
func (w *World) Grid() *terrain.Grid { return w.grid }

// Fertility returns the fertility layer, or nil when generation failed.
func (w *World) Fertility() *fertility.Map { return w.fert }

// Fog returns the fog layer, or nil when the tribe is disabled.
func (w *World) Fog() *fog.Map { return w.fog }

// Tribe returns the player's tribe, or nil when none could spawn.
func (w *World) Tribe() *settlement.Tribe { return w.tribe }

// Dappler returns the colour dappler for the current world.
func (w *World) Dappler() *render.Dappler { return w.dappler }

// Err reports the error from the last Reset, if any.
func (w *World) Err() error { return w.err }

// Palette exposes the tile colours indexed by Cells values.
func (w *World) Palette() []color.RGBA { return render.Palette() }

// Reset generates the world for seed. Every value, zero included, is used as
// given; the configured seed only seeds Parameters before the first Reset.
func (w *World) Reset(seed int64) {
	w.seed = seed
	w.id = uuid.New()
	w.grid, w.fert, w.fog, w.tribe, w.dappler, w.display = nil, nil, nil, nil, nil, nil

	cfg := w.cfg.Terrain
	cfg.Seed = seed
	log := w.log.With("world", w.id.String())
	gen, err := terrain.New(cfg, log)
	if err != nil {
		w.fail(log, err)
		return
	}
	g, err := gen.Generate()
	if err != nil {
		w.fail(log, err)
		return
	}
	w.err = nil
	w.grid = g
	w.fert = fertility.Generate(g, gen.RNG())
	if w.cfg.DappleAmplitude > 0 {
		w.dappler = render.NewDappler(seed, w.cfg.DappleAmplitude)
	}
	w.display = make([]uint8, g.Len())
	for i, t := range g.Cells() {
		w.display[i] = uint8(t)
	}

	if w.cfg.Tribe {
		w.fog = fog.New(g.Rows(), g.Cols())
		tribe, err := settlement.Spawn(g, gen.RNG())
		if err != nil {
			log.Warn("tribe not spawned", "err", err)
		} else {
			w.tribe = tribe
			tribe.RevealFog(w.fog)
			row, col := tribe.Position()
			log.Info("tribe spawned", "name", tribe.Name, "row", row, "col", col)
		}
	}
	log.Debug("world ready", "fertility_mean", w.fert.Mean())
}

func (w *World) fail(log *slog.Logger, err error) {
	w.err = err
	log.Error("world generation failed", "err", err)
}

// Step refreshes the fog: cells outside the tribe's sight fall back to seen.
func (w *World) Step() {
	if w.fog == nil || w.tribe == nil {
		return
	}
	w.fog.MarkSeen()
	w.tribe.RevealFog(w.fog)
}

// MoveTribe shifts the tribe by (dr, dc) and updates the fog around it.
func (w *World) MoveTribe(dr, dc int) error {
	if w.tribe == nil {
		return nil
	}
	if err := w.tribe.MoveBy(dr, dc); err != nil {
		return err
	}
	w.Step()
	return nil
}

// Summary returns short status lines for the HUD.
func (w *World) Summary() []string {
	lines := []string{fmt.Sprintf("seed %d", w.seed)}
	if w.err != nil {
		return append(lines, "error: "+w.err.Error())
	}
	if w.grid == nil {
		return lines
	}
	lines = append(lines, "run "+w.id.String()[:8])
	if w.tribe != nil {
		row, col := w.tribe.Position()
		lines = append(lines, fmt.Sprintf("tribe %s at (%d, %d)", w.tribe.Name, row, col))
	}
	g := w.grid
	water := g.Count(terrain.TileSea) + g.Count(terrain.TileDeepOcean) + g.Count(terrain.TileCoast) + g.Count(terrain.TileLake)
	lines = append(lines,
		fmt.Sprintf("water %d%%", 100*water/g.Len()),
		fmt.Sprintf("river %d  lake %d", g.Count(terrain.TileRiver), g.Count(terrain.TileLake)),
		fmt.Sprintf("fertility %.2f", w.fert.Mean()),
	)
	return lines
}

// Describe names the tile at (row, col) for the cursor readout. Hidden cells
// reveal nothing.
func (w *World) Describe(row, col int) string {
	if w.grid == nil || !w.grid.InBounds(row, col) {
		return ""
	}
	if w.fog != nil && w.fog.At(row, col) == fog.Hidden {
		return fmt.Sprintf("(%d, %d) unexplored", row, col)
	}
	return fmt.Sprintf("(%d, %d) %s, fertility %.1f", row, col, w.grid.At(row, col), w.fert.At(row, col))
}

func init() {
	core.Register("world", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg), nil)
	})
}
