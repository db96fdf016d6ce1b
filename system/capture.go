package system

import (
	"math"

	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
)

// CaptureSystem applies the scoring, combo and growth consequences of eating food
type CaptureSystem struct{}

func NewCaptureSystem() *CaptureSystem {
	return &CaptureSystem{}
}

// Consume removes food i, advances the combo, scores it and grows the player
// Returns the points gained
func (c *CaptureSystem) Consume(s *engine.State, i int) int {
	if i < 0 || i >= len(s.Foods) {
		return 0
	}
	f := s.RemoveFood(i)

	if s.ComboTimer > 0 {
		s.Combo = min(s.Combo+1, parameter.ComboMax)
	} else {
		s.Combo = parameter.ComboMin
	}
	s.ComboTimer = parameter.ComboWindow

	gain := CaptureScore(f.Mass, s.Combo)
	s.Score += gain

	s.Player.Grow(f.Mass * parameter.MassTransferRatio)

	s.Events.Push(event.GameEvent{
		Type:  event.EventFoodCaptured,
		RunID: s.RunID,
		Score: s.Score,
		Gain:  gain,
		Combo: s.Combo,
		Mass:  f.Mass,
	})
	return gain
}

// CaptureScore returns floor(mass * 10 * (1 + (combo-1)*0.35))
func CaptureScore(mass float64, combo int) int {
	mult := 1 + float64(combo-parameter.ComboMin)*parameter.ComboScoreStep
	return int(math.Floor(mass * parameter.ScorePerMass * mult))
}
