// Package report generates batches of worlds and summarises their tile
// composition for tuning the generation parameters.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"grid-game/internal/fertility"
	"grid-game/internal/terrain"
)

// Result describes one generated world.
type Result struct {
	ID      uuid.UUID
	Seed    int64
	Elapsed time.Duration
	Err     error

	Counts    [terrain.TileCount]int
	Cells     int
	Fertility float64
	// Map holds the glyph rendering when requested.
	Map string
}

// Share returns the fraction of cells holding t.
func (r Result) Share(t terrain.Tile) float64 {
	if r.Cells == 0 || int(t) >= terrain.TileCount {
		return 0
	}
	return float64(r.Counts[t]) / float64(r.Cells)
}

// Water returns the fraction of cells that are sea, coast, deep ocean or lake.
func (r Result) Water() float64 {
	return r.Share(terrain.TileSea) + r.Share(terrain.TileCoast) + r.Share(terrain.TileDeepOcean) + r.Share(terrain.TileLake)
}

// Options controls a batch run.
type Options struct {
	Config  terrain.Config
	Seeds   []int64
	Workers int
	// KeepMaps stores the glyph rendering of every world in the results.
	KeepMaps bool
	// Trace is called after every stage of the first seed's pipeline.
	Trace func(seed int64, s terrain.Stage, g *terrain.Grid)
	Log   *slog.Logger
}

// Seeds returns n seeds starting at base and advancing by step.
func Seeds(base, step int64, n int) []int64 {
	out := make([]int64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, base+int64(i)*step)
	}
	return out
}

// Run generates one world per seed, at most Workers at a time, and returns the
// results in seed order. Generation failures are recorded per result; the
// returned error is only set when ctx is cancelled.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, seed := range opts.Seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var trace func(terrain.Stage, *terrain.Grid)
			if i == 0 && opts.Trace != nil {
				trace = func(s terrain.Stage, grid *terrain.Grid) { opts.Trace(seed, s, grid) }
			}
			results[i] = generate(opts.Config, seed, opts.KeepMaps, trace, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func generate(cfg terrain.Config, seed int64, keepMap bool, trace func(terrain.Stage, *terrain.Grid), log *slog.Logger) Result {
	res := Result{ID: uuid.New(), Seed: seed}
	cfg.Seed = seed
	log = log.With("run", res.ID.String())

	start := time.Now()
	gen, err := terrain.New(cfg, log)
	if err != nil {
		res.Err = err
		return res
	}
	gen.OnStage = trace
	grid, err := gen.Generate()
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = err
		log.Warn("generation failed", "seed", seed, "err", err)
		return res
	}
	res.Counts, _ = grid.Histogram()
	res.Cells = grid.Len()
	res.Fertility = fertility.Generate(grid, gen.RNG()).Mean()
	if keepMap {
		res.Map = grid.String()
	}
	return res
}

// Summary aggregates a batch.
type Summary struct {
	Runs     int
	Failures int
	Mean     [terrain.TileCount]float64
	Water    float64
	Elapsed  time.Duration
}

// Summarise averages tile shares over the successful results.
func Summarise(results []Result) Summary {
	var s Summary
	s.Runs = len(results)
	ok := 0
	for _, r := range results {
		s.Elapsed += r.Elapsed
		if r.Err != nil {
			s.Failures++
			continue
		}
		ok++
		for t := 0; t < terrain.TileCount; t++ {
			s.Mean[t] += r.Share(terrain.Tile(t))
		}
		s.Water += r.Water()
	}
	if ok > 0 {
		for t := range s.Mean {
			s.Mean[t] /= float64(ok)
		}
		s.Water /= float64(ok)
	}
	return s
}

// Write prints one line per run followed by the mean tile composition, most
// common tiles first.
func Write(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "seed\trun\twater\triver\tlake\tcoast\tfertility\telapsed\t")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%d\t%s\terror: %v\t\t\t\t\t\t\n", r.Seed, r.ID.String()[:8], r.Err)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.1f%%\t%d\t%d\t%d\t%.2f\t%s\t\n",
			r.Seed, r.ID.String()[:8], 100*r.Water(),
			r.Counts[terrain.TileRiver], r.Counts[terrain.TileLake], r.Counts[terrain.TileCoast],
			r.Fertility, r.Elapsed.Round(time.Millisecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := Summarise(results)
	fmt.Fprintf(w, "\n%d runs, %d failed, water %.1f%%, total %s\n", s.Runs, s.Failures, 100*s.Water, s.Elapsed.Round(time.Millisecond))
	order := make([]terrain.Tile, 0, terrain.TileCount)
	for t := 0; t < terrain.TileCount; t++ {
		if s.Mean[t] > 0 {
			order = append(order, terrain.Tile(t))
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return s.Mean[order[i]] > s.Mean[order[j]] })
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range order {
		fmt.Fprintf(tw, "%c\t%s\t%.2f%%\t\n", t.Glyph(), t, 100*s.Mean[t])
	}
	return tw.Flush()
}
