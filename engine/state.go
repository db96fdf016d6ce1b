package engine

import (
	"github.com/lixenwraith/gravity-eater/component"
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// State is the mutable simulation state owned by a single Game
// Systems mutate it in priority order once per tick; nothing else holds entity references
type State struct {
	Phase GamePhase
	RunID string

	// Elapsed play time in seconds, excluding pauses
	Time  float64
	Score int

	// Combo multiplier in [ComboMin, ComboMax] and its countdown in seconds
	Combo      int
	ComboTimer float64

	// Fractional spawn accumulators, decouple spawn rate from frame rate
	FoodAccumulator   float64
	HazardAccumulator float64

	Player  *component.PlayerComponent
	Foods   []component.FoodComponent   // Unordered
	Hazards []component.HazardComponent // Unordered

	Viewport core.Viewport
	Pointer  vmath.Vec2

	// PlayerHit is set by the lethality check and consumed by the game loop
	PlayerHit bool

	Events *event.EventQueue
}

// NewState creates a title-phase state for the viewport with a player at its center
func NewState(vp core.Viewport) *State {
	s := &State{
		Phase:    PhaseTitle,
		Combo:    parameter.ComboMin,
		Viewport: vp,
		Pointer:  vp.Center(),
		Events:   event.NewEventQueue(),
	}
	s.Player = component.NewPlayer(vp.Center())
	return s
}

// Reset clears everything a restart must clear and recreates the player
// Viewport, pointer and pending events survive
func (s *State) Reset(cfg *Config) {
	s.Time = 0
	s.Score = 0
	s.Combo = parameter.ComboMin
	s.ComboTimer = 0
	s.FoodAccumulator = 0
	s.HazardAccumulator = 0
	s.PlayerHit = false

	if cap(s.Foods) < cfg.MaxFoods {
		s.Foods = make([]component.FoodComponent, 0, cfg.MaxFoods)
	} else {
		s.Foods = s.Foods[:0]
	}
	if cap(s.Hazards) < cfg.MaxHazards {
		s.Hazards = make([]component.HazardComponent, 0, cfg.MaxHazards)
	} else {
		s.Hazards = s.Hazards[:0]
	}

	s.Player = component.NewPlayer(s.Viewport.Center())
}

// RemoveFood deletes food at index i by swapping in the last element
// Safe during reverse iteration: the swapped-in element was already visited
func (s *State) RemoveFood(i int) component.FoodComponent {
	f := s.Foods[i]
	last := len(s.Foods) - 1
	s.Foods[i] = s.Foods[last]
	s.Foods = s.Foods[:last]
	return f
}

// RemoveHazard deletes hazard at index i by swapping in the last element
func (s *State) RemoveHazard(i int) {
	last := len(s.Hazards) - 1
	s.Hazards[i] = s.Hazards[last]
	s.Hazards = s.Hazards[:last]
}
