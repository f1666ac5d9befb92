package world

import (
	"strconv"

	"grid-game/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg.Terrain
	p := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", c.Rows),
				intParam("cols", "Columns", c.Cols),
				int64Param("seed", "Seed", w.seed),
				intParam("dapple", "Dapple amplitude", w.cfg.DappleAmplitude),
				boolParam("tribe", "Tribe and fog", w.cfg.Tribe),
			},
		},
		{
			Name: "Regions",
			Params: []core.Parameter{
				intParam("regions", "Region count", p.RegionCount),
				intParam("region_size_divisor", "Region size divisor", p.RegionSizeDivisor),
				intParam("smooth_passes", "Smooth passes", p.SmoothPasses),
				intParam("blend_passes", "Blend passes", p.BlendPasses),
			},
		},
		{
			Name: "Geography",
			Params: []core.Parameter{
				floatParam("edge_sea_chance", "Edge sea chance", p.EdgeSeaChance),
				floatParam("polar_ice_chance", "Polar ice chance", p.PolarIceChance),
				floatParam("tundra_chance", "Tundra chance", p.TundraChance),
				floatParam("peak_ice_chance", "Peak ice chance", p.PeakIceChance),
				floatParam("desert_hill_chance", "Desert hill chance", p.DesertHillChance),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				intParam("river_source_chance", "River source chance (%)", p.RiverSourceChance),
				intParam("river_step_budget", "River step budget", p.RiverStepBudget),
				intParam("lake_threshold_divisor", "Lake threshold divisor", p.LakeThresholdDivisor),
				floatParam("coast_outer_chance", "Coast outer chance", p.CoastOuterChance),
				floatParam("deep_ocean_chance", "Deep ocean chance", p.DeepOceanChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust. Every change
// regenerates the world with the current seed.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "regions", Label: "Regions", Type: core.ParamTypeInt, Step: 5, Min: 1, HasMin: true},
		{Key: "smooth_passes", Label: "Smooth passes", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 20, HasMax: true},
		{Key: "blend_passes", Label: "Blend passes", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 20, HasMax: true},
		{Key: "river_source_chance", Label: "River sources %", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 100, HasMax: true},
		{Key: "peak_ice_chance", Label: "Peak ice", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "desert_hill_chance", Label: "Desert hills", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "deep_ocean_chance", Label: "Deep ocean", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and regenerates the world. It
// reports false for unknown keys and for values the config rejects.
func (w *World) SetIntParameter(key string, value int) bool {
	next := w.cfg
	p := &next.Terrain.Params
	switch key {
	case "regions":
		p.RegionCount = value
	case "region_size_divisor":
		p.RegionSizeDivisor = value
	case "smooth_passes":
		p.SmoothPasses = value
	case "blend_passes":
		p.BlendPasses = value
	case "river_source_chance":
		p.RiverSourceChance = value
	case "river_step_budget":
		p.RiverStepBudget = value
	case "lake_threshold_divisor":
		p.LakeThresholdDivisor = value
	case "dapple":
		if value < 0 {
			return false
		}
		next.DappleAmplitude = value
	default:
		return false
	}
	return w.apply(next)
}

// SetFloatParameter updates a probability tunable and regenerates the world.
func (w *World) SetFloatParameter(key string, value float64) bool {
	next := w.cfg
	p := &next.Terrain.Params
	switch key {
	case "edge_sea_chance":
		p.EdgeSeaChance = value
	case "polar_ice_chance":
		p.PolarIceChance = value
	case "tundra_chance":
		p.TundraChance = value
	case "peak_ice_chance":
		p.PeakIceChance = value
	case "desert_hill_chance":
		p.DesertHillChance = value
	case "coast_outer_chance":
		p.CoastOuterChance = value
	case "deep_ocean_chance":
		p.DeepOceanChance = value
	default:
		return false
	}
	return w.apply(next)
}

func (w *World) apply(next Config) bool {
	if err := next.Terrain.Validate(); err != nil {
		w.log.Warn("parameter rejected", "err", err)
		return false
	}
	w.cfg = next
	w.Reset(w.seed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
