package event

import (
	"testing"

	"github.com/lixenwraith/gravity-eater/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventGameStarted, RunID: "a"})
	eq.Push(GameEvent{Type: EventFoodCaptured, Gain: 40})
	eq.Push(GameEvent{Type: EventGameOver, Score: 40})

	if eq.Len() != 3 {
		t.Fatalf("Expected 3 pending events, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	want := []EventType{EventGameStarted, EventFoodCaptured, EventGameOver}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], ev.Type)
		}
	}

	if again := eq.Consume(); again != nil {
		t.Errorf("Expected empty queue after consume, got %d events", len(again))
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventFoodCaptured, Gain: i})
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Gain != 10 {
		t.Errorf("Expected oldest retained gain 10, got %d", events[0].Gain)
	}
	if events[len(events)-1].Gain != total-1 {
		t.Errorf("Expected newest gain %d, got %d", total-1, events[len(events)-1].Gain)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGameOver.String() != "game_over" {
		t.Errorf("Expected game_over, got %s", EventGameOver.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range type")
	}
}
