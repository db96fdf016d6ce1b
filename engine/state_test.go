package engine

import (
	"testing"

	"github.com/lixenwraith/gravity-eater/component"
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

func TestNewStateInitialization(t *testing.T) {
	s := NewState(core.NewViewport(800, 600))

	if s.Phase != PhaseTitle {
		t.Errorf("Expected phase TITLE, got %s", s.Phase)
	}
	if s.Combo != parameter.ComboMin {
		t.Errorf("Expected combo %d, got %d", parameter.ComboMin, s.Combo)
	}
	if s.Player.Pos != (vmath.Vec2{X: 400, Y: 300}) {
		t.Errorf("Expected player at viewport center, got %+v", s.Player.Pos)
	}
	if s.Pointer != s.Player.Pos {
		t.Errorf("Expected pointer at viewport center, got %+v", s.Pointer)
	}
}

func TestStateReset(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(core.NewViewport(800, 600))
	s.Time = 12
	s.Score = 500
	s.Combo = 5
	s.ComboTimer = 0.3
	s.FoodAccumulator = 0.7
	s.HazardAccumulator = 0.2
	s.PlayerHit = true
	s.Player.Grow(100)
	s.Player.Pos = vmath.Vec2{X: 10, Y: 10}
	s.Foods = append(s.Foods, component.FoodComponent{Radius: 3})
	s.Hazards = append(s.Hazards, component.HazardComponent{Radius: 30})
	s.Events.Push(event.GameEvent{Type: event.EventPaused})

	s.Reset(&cfg)

	if s.Time != 0 || s.Score != 0 || s.ComboTimer != 0 {
		t.Errorf("Expected cleared timers/score, got time=%f score=%d comboTimer=%f", s.Time, s.Score, s.ComboTimer)
	}
	if s.Combo != parameter.ComboMin {
		t.Errorf("Expected combo reset to %d, got %d", parameter.ComboMin, s.Combo)
	}
	if s.FoodAccumulator != 0 || s.HazardAccumulator != 0 {
		t.Error("Expected spawn accumulators cleared")
	}
	if len(s.Foods) != 0 || len(s.Hazards) != 0 {
		t.Errorf("Expected empty populations, got %d food %d hazards", len(s.Foods), len(s.Hazards))
	}
	if s.Player.Mass != parameter.PlayerInitialMass {
		t.Errorf("Expected fresh player mass, got %f", s.Player.Mass)
	}
	if s.Player.Pos != s.Viewport.Center() {
		t.Errorf("Expected fresh player at center, got %+v", s.Player.Pos)
	}
	if s.PlayerHit {
		t.Error("Expected PlayerHit cleared")
	}
	if s.Events.Len() != 1 {
		t.Errorf("Expected pending events to survive reset, got %d", s.Events.Len())
	}
}

func TestRemoveFoodSwap(t *testing.T) {
	s := NewState(core.NewViewport(100, 100))
	for i := 0; i < 4; i++ {
		s.Foods = append(s.Foods, component.FoodComponent{Mass: float64(i)})
	}

	removed := s.RemoveFood(1)
	if removed.Mass != 1 {
		t.Errorf("Expected removed mass 1, got %f", removed.Mass)
	}
	if len(s.Foods) != 3 {
		t.Fatalf("Expected 3 food left, got %d", len(s.Foods))
	}
	if s.Foods[1].Mass != 3 {
		t.Errorf("Expected last element swapped into slot 1, got %f", s.Foods[1].Mass)
	}
}

func TestBuildSnapshotCopies(t *testing.T) {
	s := NewState(core.NewViewport(800, 600))
	s.Foods = append(s.Foods, component.FoodComponent{Kinetic: core.Kinetic{Pos: vmath.Vec2{X: 1, Y: 2}}, Radius: 3})
	s.Hazards = append(s.Hazards, component.HazardComponent{Kinetic: core.Kinetic{Pos: vmath.Vec2{X: 4, Y: 5}}, Radius: 25})
	s.Score = 90

	var snap Snapshot
	BuildSnapshot(&snap, s, 120, 2.5)

	if snap.Score != 90 || snap.HighScore != 120 || snap.Level != 2.5 {
		t.Errorf("Unexpected scalar fields: %+v", snap)
	}
	if len(snap.Foods) != 1 || snap.Foods[0].Radius != 3 {
		t.Fatalf("Unexpected food view: %+v", snap.Foods)
	}

	// Mutating state must not leak into an existing snapshot
	s.Foods[0].Pos.X = 999
	if snap.Foods[0].Pos.X != 1 {
		t.Error("Snapshot aliases state food slice")
	}
	if snap.NewRecord() {
		t.Error("Expected no record when score below high score")
	}
}

func TestSnapshotNewRecordOnValue(t *testing.T) {
	scored := func(score, high int) Snapshot {
		return Snapshot{Score: score, HighScore: high}
	}

	tests := []struct {
		score, high int
		want        bool
	}{
		{score: 50, high: 100, want: false},
		{score: 100, high: 100, want: true},
		{score: 150, high: 100, want: true},
		{score: 0, high: 0, want: true},
	}
	for _, tt := range tests {
		// Called directly on a returned value, as hosts do with Game.Snapshot()
		if got := scored(tt.score, tt.high).NewRecord(); got != tt.want {
			t.Errorf("Score %d vs best %d: expected %v, got %v", tt.score, tt.high, tt.want, got)
		}
	}
}

func TestGamePhaseString(t *testing.T) {
	if PhaseGameOver.String() != "GAME OVER" {
		t.Errorf("Expected GAME OVER, got %s", PhaseGameOver.String())
	}
	if GamePhase(42).String() != "UNKNOWN" {
		t.Error("Expected UNKNOWN for invalid phase")
	}
}
