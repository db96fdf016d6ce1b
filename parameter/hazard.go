package parameter

// Hazard Spawn
const (
	// HazardSpawnOffset is how far beyond the chosen edge a hazard appears
	HazardSpawnOffset = 30.0

	HazardSpeedMin = 36.0
	HazardSpeedMax = 75.0

	// HazardSpeedJitterMax is added only to non-initial spawns
	HazardSpeedJitterMax = 15.0

	// HazardAxisNoise is the per-axis velocity noise range [-n, n]
	HazardAxisNoise = 20.0

	HazardRadiusMin = 20.0
	HazardRadiusMax = 38.0
)

// Hazard Lifetime
const (
	// HazardCullMargin is the distance outside the viewport past which a hazard is removed
	HazardCullMargin = 120.0
)

// Hazard Lethality
const (
	// HazardContactPlayerScale shrinks the player's radius for the lethal contact test
	HazardContactPlayerScale = 0.75

	// HazardLethalRatio is the hazard/player radius ratio a hazard must exceed to kill
	HazardLethalRatio = 1.1
)
