package system

import (
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/physics"
)

// HazardSystem moves hazards ballistically and culls those far outside the viewport
// Hazards ignore gravity and walls
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

func (hs *HazardSystem) Priority() int {
	return parameter.PriorityHazard
}

func (hs *HazardSystem) Update(s *engine.State, dt float64) {
	for i := len(s.Hazards) - 1; i >= 0; i-- {
		h := &s.Hazards[i]
		physics.Integrate(&h.Kinetic, dt)

		if !s.Viewport.Contains(h.Pos, parameter.HazardCullMargin) {
			s.RemoveHazard(i)
		}
	}
}
