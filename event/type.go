package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted fires on every (re)start after the field is seeded
	// Trigger: primary action from Title or GameOver | Payload: RunID
	EventGameStarted EventType = iota

	// EventFoodCaptured fires once per consumed food particle
	// Trigger: capture system | Payload: Gain, Combo, Mass, Score
	EventFoodCaptured

	// EventGameOver fires when a lethal hazard touches the player
	// Trigger: lethality check | Payload: Score, NewRecord, RunID
	EventGameOver

	// EventPaused and EventResumed fire on pause toggles
	EventPaused
	EventResumed
)

var eventNames = [...]string{
	EventGameStarted:  "game_started",
	EventFoodCaptured: "food_captured",
	EventGameOver:     "game_over",
	EventPaused:       "paused",
	EventResumed:      "resumed",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is a flat record; fields irrelevant to Type are zero
type GameEvent struct {
	Type EventType

	RunID     string
	Score     int
	Gain      int
	Combo     int
	Mass      float64
	NewRecord bool
}
