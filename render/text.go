package render

import (
	"fmt"

	"github.com/lixenwraith/gravity-eater/engine"
)

// HUDLines returns the status lines drawn in the top-left corner
func HUDLines(s *engine.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Mass: %.1f", s.Player.Mass),
		fmt.Sprintf("Combo: x%d", s.Combo),
		fmt.Sprintf("High Score: %d", s.HighScore),
		fmt.Sprintf("State: %s", s.Phase),
	}
}

// Banner returns the centered title and hint lines for the phase; false during play
func Banner(s *engine.Snapshot) (string, []string, bool) {
	switch s.Phase {
	case engine.PhaseTitle:
		return "GRAVITY EATER", []string{"Click / Enter / Space to start"}, true
	case engine.PhasePause:
		return "PAUSED", []string{"Esc or P to resume"}, true
	case engine.PhaseGameOver:
		record := fmt.Sprintf("High Score: %d", s.HighScore)
		if s.NewRecord() {
			record = "NEW HIGH SCORE!"
		}
		return "GAME OVER", []string{
			fmt.Sprintf("Score: %d  /  %s", s.Score, record),
			"Click or Enter to retry",
		}, true
	}
	return "", nil, false
}
