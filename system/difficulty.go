package system

import (
	"math"

	"github.com/lixenwraith/gravity-eater/parameter"
)

// DifficultyLevel returns the pacing level for elapsed play time and score
// Monotonic in both inputs and capped at DifficultyMaxLevel; recompute every tick
func DifficultyLevel(elapsed float64, score int) float64 {
	return math.Min(parameter.DifficultyMaxLevel,
		elapsed*parameter.DifficultyPerSecond+float64(score)*parameter.DifficultyPerPoint)
}

// FoodSpawnRate returns food spawns per second at level
func FoodSpawnRate(level float64) float64 {
	return parameter.FoodSpawnRateBase + level*parameter.FoodSpawnRatePerLevel
}

// HazardSpawnRate returns hazard spawns per second at level
func HazardSpawnRate(level float64) float64 {
	return parameter.HazardSpawnRateBase + level*parameter.HazardSpawnRatePerLevel
}

// FoodBaseSpeed returns the per-axis food drift scale at level
func FoodBaseSpeed(level float64) float64 {
	return parameter.FoodBaseSpeed + level*parameter.FoodSpeedPerLevel
}
