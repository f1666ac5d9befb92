package terrain

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -4 }},
		{"no regions", func(c *Config) { c.Params.RegionCount = 0 }},
		{"more regions than cells", func(c *Config) { c.Rows, c.Cols, c.Params.RegionCount = 2, 2, 5 }},
		{"zero region divisor", func(c *Config) { c.Params.RegionSizeDivisor = 0 }},
		{"zero lake divisor", func(c *Config) { c.Params.LakeThresholdDivisor = 0 }},
		{"negative smooth passes", func(c *Config) { c.Params.SmoothPasses = -1 }},
		{"negative budget", func(c *Config) { c.Params.RiverStepBudget = -10 }},
		{"river chance above 100", func(c *Config) { c.Params.RiverSourceChance = 101 }},
		{"chance above one", func(c *Config) { c.Params.CoastOuterChance = 1.5 }},
		{"negative chance", func(c *Config) { c.Params.EdgeSeaChance = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rows":                "40",
		"cols":                "90",
		"seed":                "-12",
		"regions":             "8",
		"deep_ocean_chance":   "0.75",
		"river_step_budget":   "500",
		"smooth_passes":       "not-a-number",
		"river_source_chance": "5",
	})
	if cfg.Rows != 40 || cfg.Cols != 90 || cfg.Seed != -12 {
		t.Fatalf("dimensions/seed not applied: %+v", cfg)
	}
	if cfg.Params.RegionCount != 8 || cfg.Params.RiverStepBudget != 500 || cfg.Params.RiverSourceChance != 5 {
		t.Fatalf("int params not applied: %+v", cfg.Params)
	}
	if cfg.Params.DeepOceanChance != 0.75 {
		t.Fatalf("deep ocean chance = %f", cfg.Params.DeepOceanChance)
	}
	if cfg.Params.SmoothPasses != DefaultConfig().Params.SmoothPasses {
		t.Fatal("unparseable value should keep the default")
	}
}

func TestRiverBudgetDefaultsToCellCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 10, 12
	if got := cfg.riverBudget(); got != 120 {
		t.Fatalf("default budget = %d, want 120", got)
	}
	cfg.Params.RiverStepBudget = 7
	if got := cfg.riverBudget(); got != 7 {
		t.Fatalf("explicit budget = %d, want 7", got)
	}
}
