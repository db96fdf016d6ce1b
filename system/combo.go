package system

import (
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
)

// ComboSystem counts down the combo window and drops the multiplier when it expires
type ComboSystem struct{}

func NewComboSystem() *ComboSystem {
	return &ComboSystem{}
}

func (c *ComboSystem) Priority() int {
	return parameter.PriorityCombo
}

func (c *ComboSystem) Update(s *engine.State, dt float64) {
	if s.ComboTimer > 0 {
		s.ComboTimer -= dt
	}
	if s.ComboTimer <= 0 {
		s.Combo = parameter.ComboMin
	}
}
