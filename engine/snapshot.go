package engine

import (
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// Circle is the render view of a round entity
type Circle struct {
	Pos    vmath.Vec2
	Radius float64
}

// PlayerView is the render view of the player
type PlayerView struct {
	Pos        vmath.Vec2
	Radius     float64
	Mass       float64
	PullRadius float64
}

// Snapshot is a read-only copy of everything a presentation layer draws
// Owns its slices; safe to keep across ticks
type Snapshot struct {
	Phase     GamePhase
	RunID     string
	Time      float64
	Level     float64
	Score     int
	Combo     int
	HighScore int

	Player  PlayerView
	Foods   []Circle
	Hazards []Circle

	Viewport core.Viewport
}

// NewRecord reports whether the finished run matches or beats the stored best
func (s Snapshot) NewRecord() bool {
	return s.Score >= s.HighScore
}

// BuildSnapshot copies state into dst, reusing dst's slice capacity
func BuildSnapshot(dst *Snapshot, s *State, highScore int, level float64) {
	dst.Phase = s.Phase
	dst.RunID = s.RunID
	dst.Time = s.Time
	dst.Level = level
	dst.Score = s.Score
	dst.Combo = s.Combo
	dst.HighScore = highScore
	dst.Viewport = s.Viewport
	dst.Player = PlayerView{
		Pos:        s.Player.Pos,
		Radius:     s.Player.Radius,
		Mass:       s.Player.Mass,
		PullRadius: s.Player.PullRadius,
	}

	dst.Foods = dst.Foods[:0]
	for i := range s.Foods {
		dst.Foods = append(dst.Foods, Circle{Pos: s.Foods[i].Pos, Radius: s.Foods[i].Radius})
	}
	dst.Hazards = dst.Hazards[:0]
	for i := range s.Hazards {
		dst.Hazards = append(dst.Hazards, Circle{Pos: s.Hazards[i].Pos, Radius: s.Hazards[i].Radius})
	}
}
