package system

import (
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/physics"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// FoodSystem pulls food toward the player, integrates it, and resolves captures
// Food outside the pull radius keeps its velocity undamped and drifts indefinitely
type FoodSystem struct {
	capture *CaptureSystem
	profile physics.GravityProfile
}

func NewFoodSystem(capture *CaptureSystem) *FoodSystem {
	return &FoodSystem{
		capture: capture,
		profile: physics.GravityProfile{
			Epsilon:  parameter.FoodGravityEpsilon,
			MaxAccel: parameter.FoodMaxAccel,
		},
	}
}

func (fs *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

// Update walks food in reverse so captured entries can be swap-removed in place
// Capture uses the distance measured before this tick's food integration
func (fs *FoodSystem) Update(s *engine.State, dt float64) {
	p := s.Player
	fs.profile.Strength = p.GravityStrength
	fs.profile.Mass = p.Mass

	for i := len(s.Foods) - 1; i >= 0; i-- {
		f := &s.Foods[i]
		d := vmath.Distance(f.Pos, p.Pos)

		physics.ApplyGravity(&f.Kinetic, p.Pos, d, parameter.GravityMinDistance, p.PullRadius, &fs.profile, dt)
		physics.ClampSpeed(&f.Kinetic, parameter.FoodMaxSpeed)
		physics.Integrate(&f.Kinetic, dt)
		physics.ReflectBounds(&f.Kinetic, f.Radius, s.Viewport, parameter.FoodWallRestitution)

		if d < p.Radius+f.Radius*parameter.FoodCaptureScale {
			fs.capture.Consume(s, i)
			// Player grew; later food in this pass sees the new pull
			fs.profile.Strength = p.GravityStrength
			fs.profile.Mass = p.Mass
		}
	}
}
