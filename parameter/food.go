package parameter

// Food Spawn
const (
	FoodRadiusMin     = 2.5
	FoodRadiusMax     = 5.4
	FoodMassFactorMin = 0.8
	FoodMassFactorMax = 1.6

	// FoodInitialMargin keeps opening-field food away from the walls
	FoodInitialMargin = 20.0

	// FoodBaseSpeed and FoodSpeedPerLevel give the per-axis drift scale: 42 + level*5
	FoodBaseSpeed     = 42.0
	FoodSpeedPerLevel = 5.0

	// FoodAxisDampMin and FoodAxisDampMax scale each velocity axis independently
	FoodAxisDampMin = 0.3
	FoodAxisDampMax = 0.9
)

// Food Physics
const (
	// FoodGravityEpsilon softens the inverse-square pull at d→0
	FoodGravityEpsilon = 40.0

	// FoodMaxAccel caps gravity acceleration at close range
	FoodMaxAccel = 1100.0

	// FoodMaxSpeed caps food speed after gravity is applied
	FoodMaxSpeed = 520.0

	// FoodWallRestitution is harder than the player's bounce
	FoodWallRestitution = -0.7
)
