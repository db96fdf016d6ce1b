package system

import (
	"testing"

	"github.com/lixenwraith/gravity-eater/component"
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

func TestCaptureScoreCombo1(t *testing.T) {
	s, _ := newTestState()
	s.Foods = append(s.Foods, component.FoodComponent{Mass: 4, Radius: 3})

	gain := NewCaptureSystem().Consume(s, 0)

	if gain != 40 {
		t.Errorf("Expected gain 40 at combo 1, got %d", gain)
	}
	if s.Score != 40 {
		t.Errorf("Expected score 40, got %d", s.Score)
	}
	if s.Combo != 1 {
		t.Errorf("Expected combo 1 with expired countdown, got %d", s.Combo)
	}
	if s.ComboTimer != parameter.ComboWindow {
		t.Errorf("Expected countdown reset to %f, got %f", parameter.ComboWindow, s.ComboTimer)
	}
	if len(s.Foods) != 0 {
		t.Errorf("Expected food removed, got %d left", len(s.Foods))
	}
}

func TestCaptureScoreCombo3(t *testing.T) {
	s, _ := newTestState()
	s.Combo = 2
	s.ComboTimer = 0.3
	s.Foods = append(s.Foods, component.FoodComponent{Mass: 4, Radius: 3})

	gain := NewCaptureSystem().Consume(s, 0)

	if s.Combo != 3 {
		t.Fatalf("Expected combo 3, got %d", s.Combo)
	}
	if gain != 68 {
		t.Errorf("Expected gain 68 at combo 3, got %d", gain)
	}
}

func TestCaptureGrowsPlayer(t *testing.T) {
	s, _ := newTestState()
	before := *s.Player
	s.Foods = append(s.Foods, component.FoodComponent{Mass: 10, Radius: 5})

	NewCaptureSystem().Consume(s, 0)

	wantMass := before.Mass + 10*parameter.MassTransferRatio
	if s.Player.Mass != wantMass {
		t.Errorf("Expected mass %f, got %f", wantMass, s.Player.Mass)
	}
	if s.Player.Radius <= before.Radius || s.Player.GravityStrength <= before.GravityStrength {
		t.Error("Expected derived attributes recomputed after growth")
	}
}

func TestCaptureEmitsEvent(t *testing.T) {
	s, _ := newTestState()
	s.RunID = "run-1"
	s.Foods = append(s.Foods, component.FoodComponent{Mass: 4, Radius: 3})

	NewCaptureSystem().Consume(s, 0)

	events := s.Events.Consume()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Type != event.EventFoodCaptured || ev.Gain != 40 || ev.Combo != 1 || ev.RunID != "run-1" {
		t.Errorf("Unexpected event: %+v", ev)
	}
}

func TestComboCeiling(t *testing.T) {
	s, _ := newTestState()
	cs := NewCaptureSystem()
	for i := 0; i < 20; i++ {
		s.Foods = append(s.Foods, component.FoodComponent{Mass: 3, Radius: 3})
		cs.Consume(s, 0)
		if s.Combo > parameter.ComboMax {
			t.Fatalf("Combo exceeded %d after %d captures: %d", parameter.ComboMax, i+1, s.Combo)
		}
	}
	if s.Combo != parameter.ComboMax {
		t.Errorf("Expected combo saturated at %d, got %d", parameter.ComboMax, s.Combo)
	}
}

func TestComboResetsAfterCountdown(t *testing.T) {
	s, _ := newTestState()
	s.Combo = 5
	s.ComboTimer = parameter.ComboWindow
	combo := NewComboSystem()

	// 0.6s window at 0.033s per tick: 18 ticks still positive, 19th expires
	for i := 0; i < 18; i++ {
		combo.Update(s, parameter.MaxFrameDelta)
	}
	if s.Combo != 5 {
		t.Fatalf("Expected combo kept while countdown positive, got %d (timer %f)", s.Combo, s.ComboTimer)
	}
	combo.Update(s, parameter.MaxFrameDelta)
	if s.Combo != 1 {
		t.Errorf("Expected combo reset to 1 after countdown, got %d", s.Combo)
	}

	// Next capture after expiry starts a fresh chain
	s.Foods = append(s.Foods, component.FoodComponent{Mass: 4, Radius: 3})
	NewCaptureSystem().Consume(s, 0)
	if s.Combo != 1 {
		t.Errorf("Expected combo 1 on capture after expiry, got %d", s.Combo)
	}
}

func TestFoodCapturedByProximity(t *testing.T) {
	s, _ := newTestState()
	fs := NewFoodSystem(NewCaptureSystem())
	p := s.Player

	// Just inside playerRadius + foodRadius*1.25
	reach := p.Radius + 4*parameter.FoodCaptureScale
	s.Foods = append(s.Foods,
		component.FoodComponent{Kinetic: core.Kinetic{Pos: vmath.Vec2{X: p.Pos.X + reach - 0.5, Y: p.Pos.Y}}, Radius: 4, Mass: 4},
		component.FoodComponent{Kinetic: core.Kinetic{Pos: vmath.Vec2{X: p.Pos.X, Y: p.Pos.Y + 200}}, Radius: 4, Mass: 4},
	)

	fs.Update(s, 0.001)

	if len(s.Foods) != 1 {
		t.Fatalf("Expected 1 food left after capture, got %d", len(s.Foods))
	}
	if s.Score != 40 {
		t.Errorf("Expected score 40, got %d", s.Score)
	}
}

func TestLethalRequiresSizeRatio(t *testing.T) {
	s, _ := newTestState()
	p := s.Player
	ls := NewLethalSystem()

	// Exactly at ratio, fully overlapping: harmless
	s.Hazards = append(s.Hazards, component.HazardComponent{
		Kinetic: core.Kinetic{Pos: p.Pos},
		Radius:  p.Radius * parameter.HazardLethalRatio,
	})
	ls.Update(s, 0.01)
	if s.PlayerHit {
		t.Fatal("Hazard at 1.1x player radius must not be lethal")
	}

	// Smaller, overlapping: harmless and not removed
	s.Hazards[0].Radius = p.Radius * 0.5
	ls.Update(s, 0.01)
	if s.PlayerHit {
		t.Fatal("Smaller hazard must not be lethal")
	}
	if len(s.Hazards) != 1 {
		t.Error("Harmless hazard must not be absorbed")
	}

	// Larger, overlapping: lethal
	s.Hazards[0].Radius = p.Radius*parameter.HazardLethalRatio + 0.01
	ls.Update(s, 0.01)
	if !s.PlayerHit {
		t.Error("Larger overlapping hazard must be lethal")
	}
}

func TestLethalContactDistance(t *testing.T) {
	s, _ := newTestState()
	p := s.Player
	radius := 30.0
	contact := radius + p.Radius*parameter.HazardContactPlayerScale

	s.Hazards = append(s.Hazards, component.HazardComponent{
		Kinetic: core.Kinetic{Pos: vmath.Vec2{X: p.Pos.X + contact + 0.01, Y: p.Pos.Y}},
		Radius:  radius,
	})
	if IsLethalHit(s) {
		t.Error("Hazard just outside contact distance must not be lethal")
	}

	s.Hazards[0].Pos.X = p.Pos.X + contact - 0.01
	if !IsLethalHit(s) {
		t.Error("Hazard just inside contact distance must be lethal")
	}
}
