package engine

// GamePhase is the top-level game state
type GamePhase uint8

const (
	PhaseTitle GamePhase = iota
	PhasePlay
	PhasePause
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseTitle:    "TITLE",
	PhasePlay:     "PLAY",
	PhasePause:    "PAUSE",
	PhaseGameOver: "GAME OVER",
}

func (p GamePhase) String() string {
	if int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}
