package parameter

// Player Spawn
const (
	// PlayerInitialMass is also the floor for player mass; mass only grows during a run
	PlayerInitialMass = 14.0

	// PlayerMoveAccel is the maximum steering acceleration toward the pointer (units/s²)
	PlayerMoveAccel = 700.0
)

// Player Derived Attributes
// Each attribute is base + k*f(mass) clamped to [Min, Max] so growth never destabilizes physics
const (
	PlayerRadiusBase     = 10.0
	PlayerRadiusPerSqrt  = 1.8
	PlayerRadiusMin      = 12.0
	PlayerRadiusMax      = 100.0
	PlayerGravityBase    = 260.0
	PlayerGravityPerMass = 24.0
	PlayerGravityMin     = 250.0
	PlayerGravityMax     = 3000.0
	PlayerPullBase       = 170.0
	PlayerPullPerSqrt    = 42.0
	PlayerPullMin        = 160.0
	PlayerPullMax        = 600.0
	PlayerSpeedBase      = 430.0
	PlayerSpeedPerSqrt   = 7.0
	PlayerSpeedMin       = 250.0
	PlayerSpeedMax       = 430.0
)

// Player Motion
const (
	// PlayerSteerDistance is the pointer distance at which full steering acceleration applies
	PlayerSteerDistance = 180.0

	// PlayerSteerMinFactor keeps at least 20% acceleration near the target to avoid stalling jitter
	PlayerSteerMinFactor = 0.2

	// PlayerDamping is applied once per tick after the speed clamp
	PlayerDamping = 0.995

	// PlayerWallRestitution is the signed velocity factor on wall contact (soft bounce)
	PlayerWallRestitution = -0.35
)
