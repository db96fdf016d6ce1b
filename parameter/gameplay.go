package parameter

// Capture
const (
	// FoodCaptureScale enlarges the food radius for capture so pickups feel generous
	FoodCaptureScale = 1.25

	// MassTransferRatio is the share of food mass the player absorbs
	MassTransferRatio = 0.65
)

// Combo & Scoring
const (
	ComboMin = 1
	ComboMax = 8

	// ComboWindow is the countdown in seconds reset by each capture
	ComboWindow = 0.6

	// ScorePerMass converts food mass into base points
	ScorePerMass = 10.0

	// ComboScoreStep is the multiplier bonus per combo level above 1
	ComboScoreStep = 0.35
)

// Persistence
const (
	// HighScoreKey names the single persisted value
	HighScoreKey = "gravityEaterHighScore"
)
