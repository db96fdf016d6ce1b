package component

import (
	"math"

	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// PlayerComponent is the gravity well steered toward the pointer
// Radius, GravityStrength, PullRadius and MaxSpeed are derived from Mass by Recalc
type PlayerComponent struct {
	core.Kinetic

	Mass      float64
	MoveAccel float64

	// Derived, recomputed on every mass change
	Radius          float64
	GravityStrength float64
	PullRadius      float64
	MaxSpeed        float64
}

// NewPlayer creates a player at rest at pos with initial mass
func NewPlayer(pos vmath.Vec2) *PlayerComponent {
	p := &PlayerComponent{
		Kinetic:   core.Kinetic{Pos: pos},
		Mass:      parameter.PlayerInitialMass,
		MoveAccel: parameter.PlayerMoveAccel,
	}
	p.Recalc()
	return p
}

// Recalc recomputes derived attributes from Mass
// Growth is sub-linear and clamped so a huge mass cannot destabilize physics
func (p *PlayerComponent) Recalc() {
	if p.Mass < parameter.PlayerInitialMass || math.IsNaN(p.Mass) {
		p.Mass = parameter.PlayerInitialMass
	}
	root := math.Sqrt(p.Mass)
	p.Radius = vmath.Clamp(parameter.PlayerRadiusBase+root*parameter.PlayerRadiusPerSqrt,
		parameter.PlayerRadiusMin, parameter.PlayerRadiusMax)
	p.GravityStrength = vmath.Clamp(parameter.PlayerGravityBase+p.Mass*parameter.PlayerGravityPerMass,
		parameter.PlayerGravityMin, parameter.PlayerGravityMax)
	p.PullRadius = vmath.Clamp(parameter.PlayerPullBase+root*parameter.PlayerPullPerSqrt,
		parameter.PlayerPullMin, parameter.PlayerPullMax)
	p.MaxSpeed = vmath.Clamp(parameter.PlayerSpeedBase-root*parameter.PlayerSpeedPerSqrt,
		parameter.PlayerSpeedMin, parameter.PlayerSpeedMax)
}

// Grow adds mass and recomputes derived attributes immediately
func (p *PlayerComponent) Grow(mass float64) {
	p.Mass += mass
	p.Recalc()
}
