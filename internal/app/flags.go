package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Rows     int
	Cols     int
	HUDWidth int
	Dapple   int
	NoTribe  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "world", Scale: 4, TPS: 30, Seed: 1337, Rows: 150, Cols: 250, HUDWidth: 240, Dapple: 15}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world generation")
	fs.IntVar(&c.Rows, "rows", c.Rows, "world height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "world width in cells")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "side panel width in pixels (0 hides it)")
	fs.IntVar(&c.Dapple, "dapple", c.Dapple, "per-channel colour variation (0 disables)")
	fs.BoolVar(&c.NoTribe, "no-tribe", c.NoTribe, "skip tribe placement and fog of war")
}

// SimParams converts the flags into the key/value map sim factories accept.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"rows":   strconv.Itoa(c.Rows),
		"cols":   strconv.Itoa(c.Cols),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"dapple": strconv.Itoa(c.Dapple),
		"tribe":  strconv.FormatBool(!c.NoTribe),
	}
}
