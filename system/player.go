package system

import (
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/physics"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// PlayerSystem steers the player toward the pointer and keeps it inside the viewport
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (ps *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// Update applies distance-scaled steering, speed clamp, per-tick damping and soft wall bounce
// Damping is per tick, not per second; acceptable because dt is clamped upstream
func (ps *PlayerSystem) Update(s *engine.State, dt float64) {
	p := s.Player
	to := vmath.V2Sub(s.Pointer, p.Pos)
	dist := vmath.Magnitude(to)
	dir := vmath.Normalize2D(to, parameter.DirectionEpsilon)

	accel := p.MoveAccel * vmath.Clamp(dist/parameter.PlayerSteerDistance, parameter.PlayerSteerMinFactor, 1)
	physics.Accelerate(&p.Kinetic, vmath.V2Scale(dir, accel), dt)
	physics.ClampSpeed(&p.Kinetic, p.MaxSpeed)
	physics.Damp(&p.Kinetic, parameter.PlayerDamping)
	physics.Integrate(&p.Kinetic, dt)

	physics.ReflectBounds(&p.Kinetic, p.Radius, s.Viewport, parameter.PlayerWallRestitution)
}
