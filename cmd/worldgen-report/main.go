package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"grid-game/internal/report"
	"grid-game/internal/terrain"
)

func main() {
	runs := flag.Int("runs", 8, "number of worlds to generate")
	seedBase := flag.Int64("seed", 1337, "seed of the first world")
	seedStep := flag.Int64("seed-step", 1, "seed increment between worlds")
	rows := flag.Int("rows", terrain.DefaultConfig().Rows, "world height in cells")
	cols := flag.Int("cols", terrain.DefaultConfig().Cols, "world width in cells")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worlds generated concurrently")
	ascii := flag.Bool("ascii", false, "print the glyph map of every world")
	trace := flag.Bool("trace", false, "print the first world after every stage")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := terrain.DefaultConfig()
	cfg.Rows = *rows
	cfg.Cols = *cols

	opts := report.Options{
		Config:   cfg,
		Seeds:    report.Seeds(*seedBase, *seedStep, *runs),
		Workers:  *workers,
		KeepMaps: *ascii,
		Log:      logger,
	}
	if *trace {
		opts.Trace = func(seed int64, s terrain.Stage, g *terrain.Grid) {
			fmt.Printf("== seed %d after %s ==\n%s\n", seed, s, g)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Generating %d worlds of %dx%d (%d workers)\n\n", *runs, cfg.Rows, cfg.Cols, *workers)
	results, err := report.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	if *ascii {
		for _, r := range results {
			if r.Err == nil {
				fmt.Printf("== seed %d ==\n%s\n", r.Seed, r.Map)
			}
		}
	}
	if err := report.Write(os.Stdout, results); err != nil {
		log.Fatal(err)
	}
}
