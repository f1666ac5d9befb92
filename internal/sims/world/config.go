package world

import (
	"strconv"

	"grid-game/internal/terrain"
)

// Config controls the world sim. Terrain carries dimensions, seed and the
// generation parameters.
type Config struct {
	Terrain terrain.Config

	// DappleAmplitude bounds the per-channel colour variation; 0 disables it.
	DappleAmplitude int
	// Tribe spawns a tribe and fog after generation.
	Tribe bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Terrain:         terrain.DefaultConfig(),
		DappleAmplitude: 15,
		Tribe:           true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Terrain keys are parsed by terrain.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Terrain = terrain.FromMap(cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dapple"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.DappleAmplitude = parsed
		}
	}
	if v, ok := cfg["tribe"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Tribe = parsed
		}
	}
	return c
}
