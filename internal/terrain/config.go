package terrain

import (
	"fmt"
	"strconv"
)

// Params holds tunable counts and probabilities for the generation pipeline.
type Params struct {
	RegionCount       int
	RegionSizeDivisor int

	SmoothPasses int
	BlendPasses  int

	EdgeSeaCols      int
	EdgeSeaFringe    int
	EdgeSeaChance    float64
	PolarIceRows     int
	PolarIceFringe   int
	PolarIceChance   float64
	TundraRows       int
	TundraFringe     int
	TundraChance     float64
	PeakIceChance    float64
	DesertHillChance float64

	RiverSourceChance int // percent, rolled 1..100
	RiverStepBudget   int // 0 means rows*cols

	LakeThresholdDivisor int

	CoastOuterChance float64
	DeepOceanChance  float64
}

// Config controls the generated world dimensions and seed.
type Config struct {
	Rows int
	Cols int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows: 150,
		Cols: 250,
		Seed: 1337,
		Params: Params{
			RegionCount:          60,
			RegionSizeDivisor:    35,
			SmoothPasses:         6,
			BlendPasses:          3,
			EdgeSeaCols:          3,
			EdgeSeaFringe:        6,
			EdgeSeaChance:        0.6,
			PolarIceRows:         2,
			PolarIceFringe:       4,
			PolarIceChance:       0.5,
			TundraRows:           20,
			TundraFringe:         35,
			TundraChance:         0.5,
			PeakIceChance:        0.5,
			DesertHillChance:     0.4,
			RiverSourceChance:    1,
			RiverStepBudget:      0,
			LakeThresholdDivisor: 3,
			CoastOuterChance:     0.5,
			DeepOceanChance:      0.3,
		},
	}
}

// Validate rejects configurations that cannot produce a world.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid must be non-empty, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	p := c.Params
	cells := c.Rows * c.Cols
	if p.RegionCount <= 0 {
		return fmt.Errorf("%w: region count must be positive, got %d", ErrInvalidConfig, p.RegionCount)
	}
	if p.RegionCount > cells {
		return fmt.Errorf("%w: region count %d exceeds cell count %d", ErrInvalidConfig, p.RegionCount, cells)
	}
	if p.RegionSizeDivisor <= 0 {
		return fmt.Errorf("%w: region size divisor must be positive, got %d", ErrInvalidConfig, p.RegionSizeDivisor)
	}
	if p.LakeThresholdDivisor <= 0 {
		return fmt.Errorf("%w: lake threshold divisor must be positive, got %d", ErrInvalidConfig, p.LakeThresholdDivisor)
	}
	if p.SmoothPasses < 0 || p.BlendPasses < 0 {
		return fmt.Errorf("%w: pass counts must be non-negative", ErrInvalidConfig)
	}
	if p.RiverStepBudget < 0 {
		return fmt.Errorf("%w: river step budget must be non-negative, got %d", ErrInvalidConfig, p.RiverStepBudget)
	}
	if p.RiverSourceChance < 0 || p.RiverSourceChance > 100 {
		return fmt.Errorf("%w: river source chance must be a percentage, got %d", ErrInvalidConfig, p.RiverSourceChance)
	}
	chances := []struct {
		name string
		v    float64
	}{
		{"edge sea chance", p.EdgeSeaChance},
		{"polar ice chance", p.PolarIceChance},
		{"tundra chance", p.TundraChance},
		{"peak ice chance", p.PeakIceChance},
		{"desert hill chance", p.DesertHillChance},
		{"coast outer chance", p.CoastOuterChance},
		{"deep ocean chance", p.DeepOceanChance},
	}
	for _, ch := range chances {
		if ch.v < 0 || ch.v > 1 {
			return fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalidConfig, ch.name, ch.v)
		}
	}
	return nil
}

// riverBudget resolves the effective flow tracing step budget.
func (c Config) riverBudget() int {
	if c.Params.RiverStepBudget > 0 {
		return c.Params.RiverStepBudget
	}
	return c.Rows * c.Cols
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values leave the default in place; range checks are left to
// Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	setInt("rows", &c.Rows)
	setInt("cols", &c.Cols)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setInt("regions", &c.Params.RegionCount)
	setInt("region_size_divisor", &c.Params.RegionSizeDivisor)
	setInt("smooth_passes", &c.Params.SmoothPasses)
	setInt("blend_passes", &c.Params.BlendPasses)
	setFloat("edge_sea_chance", &c.Params.EdgeSeaChance)
	setFloat("polar_ice_chance", &c.Params.PolarIceChance)
	setFloat("tundra_chance", &c.Params.TundraChance)
	setFloat("peak_ice_chance", &c.Params.PeakIceChance)
	setFloat("desert_hill_chance", &c.Params.DesertHillChance)
	setInt("river_source_chance", &c.Params.RiverSourceChance)
	setInt("river_step_budget", &c.Params.RiverStepBudget)
	setInt("lake_threshold_divisor", &c.Params.LakeThresholdDivisor)
	setFloat("coast_outer_chance", &c.Params.CoastOuterChance)
	setFloat("deep_ocean_chance", &c.Params.DeepOceanChance)
	return c
}
