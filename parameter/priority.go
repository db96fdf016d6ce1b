package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityCombo  = 10 // Countdown decays before any capture this tick can refresh it
	PrioritySpawn  = 20
	PriorityPlayer = 30
	PriorityFood   = 40 // Gravity, integration and capture against the moved player
	PriorityHazard = 50 // Straight-line motion and cull
	PriorityLethal = 60 // Last: sees final positions of the tick
)
