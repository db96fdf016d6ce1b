package parameter

// Difficulty Curve
const (
	// DifficultyMaxLevel bounds game pacing
	DifficultyMaxLevel = 18.0

	DifficultyPerSecond = 0.11
	DifficultyPerPoint  = 0.0015
)

// Spawn Rates (entities per second)
const (
	FoodSpawnRateBase       = 8.0
	FoodSpawnRatePerLevel   = 0.8
	HazardSpawnRateBase     = 0.15
	HazardSpawnRatePerLevel = 0.07
)

// Hazard Scaling
const (
	HazardSpeedPerLevel  = 8.0
	HazardRadiusPerLevel = 0.5
)
