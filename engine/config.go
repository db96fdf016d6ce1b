package engine

import "github.com/lixenwraith/gravity-eater/parameter"

// Config holds simulation settings fixed for the lifetime of a Game
// Zero value is not usable; start from DefaultConfig
type Config struct {
	MaxFoods           int
	MaxHazards         int
	InitialFoodCount   int
	InitialHazardCount int

	// MaxFrameDelta bounds every tick delta in seconds
	MaxFrameDelta float64
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		MaxFoods:           parameter.MaxFoods,
		MaxHazards:         parameter.MaxHazards,
		InitialFoodCount:   parameter.InitialFoodCount,
		InitialHazardCount: parameter.InitialHazardCount,
		MaxFrameDelta:      parameter.MaxFrameDelta,
	}
}
