package system

import (
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// LethalSystem flags the first hazard that is both touching and meaningfully larger than the player
// Smaller hazards pass through harmlessly; there is no absorption or score for them
type LethalSystem struct{}

func NewLethalSystem() *LethalSystem {
	return &LethalSystem{}
}

func (ls *LethalSystem) Priority() int {
	return parameter.PriorityLethal
}

func (ls *LethalSystem) Update(s *engine.State, dt float64) {
	if IsLethalHit(s) {
		s.PlayerHit = true
	}
}

// IsLethalHit reports whether any hazard kills the player at current positions
// Stops at the first qualifying hazard
func IsLethalHit(s *engine.State) bool {
	p := s.Player
	for i := range s.Hazards {
		h := &s.Hazards[i]
		if h.Radius <= p.Radius*parameter.HazardLethalRatio {
			continue
		}
		if vmath.Distance(h.Pos, p.Pos) < h.Radius+p.Radius*parameter.HazardContactPlayerScale {
			return true
		}
	}
	return false
}
