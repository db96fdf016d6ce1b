package parameter

// Game Loop & Engine Timing
const (
	// MaxFrameDelta is the upper bound in seconds applied to every tick delta before integration
	// Long stalls (suspended terminal, dragged window) must not integrate as one giant step
	MaxFrameDelta = 0.033

	// DirectionEpsilon is the distance below which a steering direction collapses to zero
	DirectionEpsilon = 0.0001

	// GravityMinDistance is the distance below which food receives no gravity pull
	GravityMinDistance = 0.001
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the per-game event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Population Caps
const (
	MaxFoods   = 80
	MaxHazards = 20
)

// Opening Field
const (
	// InitialFoodCount is the number of food particles seeded on every (re)start
	InitialFoodCount = 22

	// InitialHazardCount is the number of hazards seeded on every (re)start
	InitialHazardCount = 1
)
