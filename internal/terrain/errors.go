package terrain

import "errors"

var (
	// ErrInvalidConfig is returned when a Config cannot drive a generation run.
	ErrInvalidConfig = errors.New("terrain: invalid config")
	// ErrRiverBudgetExhausted is returned when flow tracing does not settle
	// within Params.RiverStepBudget steps.
	ErrRiverBudgetExhausted = errors.New("terrain: river trace step budget exhausted")
	// ErrInvalidTile is returned when a finished grid still holds a value
	// outside the terrain enumeration.
	ErrInvalidTile = errors.New("terrain: grid holds an invalid tile")
)
