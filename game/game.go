package game

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/store"
	"github.com/lixenwraith/gravity-eater/system"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// Game owns the simulation and drives its state machine
// Not safe for concurrent use: the host calls Tick then Snapshot from one goroutine
type Game struct {
	cfg   engine.Config
	state *engine.State

	spawner *system.SpawnSystem
	systems []engine.System

	store     engine.HighScoreStore
	highScore int

	seed     uint64
	rng      *vmath.FastRand
	newRunID func() string

	log *zap.Logger
}

// New creates a game in the title phase for a viewport of width x height logical units
func New(width, height float64, opts ...Option) *Game {
	g := &Game{
		cfg:      engine.DefaultConfig(),
		store:    store.NewMemoryStore(0),
		seed:     uint64(time.Now().UnixNano()),
		newRunID: uuid.NewString,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.rng = vmath.NewFastRand(g.seed)
	g.state = engine.NewState(core.NewViewport(width, height))
	g.highScore = g.store.Load()

	capture := system.NewCaptureSystem()
	g.spawner = system.NewSpawnSystem(&g.cfg, g.rng)
	g.systems = []engine.System{
		system.NewComboSystem(),
		g.spawner,
		system.NewPlayerSystem(),
		system.NewFoodSystem(capture),
		system.NewHazardSystem(),
		system.NewLethalSystem(),
	}
	slices.SortStableFunc(g.systems, func(a, b engine.System) int {
		return a.Priority() - b.Priority()
	})

	g.log.Debug("game created",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Uint64("seed", g.seed),
		zap.Int("high", g.highScore),
	)
	return g
}

// ClampDelta bounds a frame delta to [0, limit]; NaN becomes 0
func ClampDelta(dt, limit float64) float64 {
	return vmath.Clamp(dt, 0, limit)
}

// Tick advances the simulation by dt seconds
// dt is clamped before any integration; outside PLAY this is a no-op
func (g *Game) Tick(dt float64) {
	dt = ClampDelta(dt, g.cfg.MaxFrameDelta)
	s := g.state
	if s.Phase != engine.PhasePlay {
		return
	}

	s.Time += dt
	for _, sys := range g.systems {
		sys.Update(s, dt)
	}

	if s.PlayerHit {
		g.gameOver()
	}
}

// PrimaryAction starts a run from TITLE or restarts from GAME OVER; ignored otherwise
func (g *Game) PrimaryAction() {
	switch g.state.Phase {
	case engine.PhaseTitle, engine.PhaseGameOver:
		g.start()
	}
}

// TogglePause switches between PLAY and PAUSE; ignored otherwise
func (g *Game) TogglePause() {
	s := g.state
	switch s.Phase {
	case engine.PhasePlay:
		s.Phase = engine.PhasePause
		s.Events.Push(event.GameEvent{Type: event.EventPaused, RunID: s.RunID, Score: s.Score})
	case engine.PhasePause:
		s.Phase = engine.PhasePlay
		s.Events.Push(event.GameEvent{Type: event.EventResumed, RunID: s.RunID, Score: s.Score})
	}
}

// SetPointer sets the steering target in logical viewport units
func (g *Game) SetPointer(x, y float64) {
	g.state.Pointer = vmath.Vec2{X: x, Y: y}
}

// Resize updates the viewport, re-centers the pointer and keeps the player in bounds
func (g *Game) Resize(width, height float64) {
	s := g.state
	s.Viewport = core.NewViewport(width, height)
	s.Pointer = s.Viewport.Center()
	s.Player.Pos = s.Viewport.ClampPoint(s.Player.Pos)
}

// Snapshot returns a read-only copy of the current frame
func (g *Game) Snapshot() engine.Snapshot {
	var snap engine.Snapshot
	g.SnapshotInto(&snap)
	return snap
}

// SnapshotInto fills dst reusing its slices, for hosts that snapshot every frame
func (g *Game) SnapshotInto(dst *engine.Snapshot) {
	s := g.state
	engine.BuildSnapshot(dst, s, g.highScore, system.DifficultyLevel(s.Time, s.Score))
}

// DrainEvents returns events emitted since the previous drain
func (g *Game) DrainEvents() []event.GameEvent {
	return g.state.Events.Consume()
}

// Phase returns the current game phase
func (g *Game) Phase() engine.GamePhase {
	return g.state.Phase
}

// HighScore returns the best score known to this game
func (g *Game) HighScore() int {
	return g.highScore
}

// start resets the run and seeds the opening field
func (g *Game) start() {
	s := g.state
	s.Reset(&g.cfg)
	s.RunID = g.newRunID()
	s.Phase = engine.PhasePlay
	g.spawner.Seed(s)

	s.Events.Push(event.GameEvent{Type: event.EventGameStarted, RunID: s.RunID})
	g.log.Info("run started",
		zap.String("run", s.RunID),
		zap.Int("food", len(s.Foods)),
		zap.Int("hazards", len(s.Hazards)),
	)
}

// gameOver ends the run and persists a strictly better score
func (g *Game) gameOver() {
	s := g.state
	s.Phase = engine.PhaseGameOver
	s.PlayerHit = false

	newRecord := s.Score > g.highScore
	if newRecord {
		g.highScore = s.Score
		if err := g.store.Save(g.highScore); err != nil {
			g.log.Warn("high score not persisted", zap.String("run", s.RunID), zap.Int("high", g.highScore), zap.Error(err))
		}
	}

	s.Events.Push(event.GameEvent{
		Type:      event.EventGameOver,
		RunID:     s.RunID,
		Score:     s.Score,
		NewRecord: newRecord,
	})
	g.log.Info("run over",
		zap.String("run", s.RunID),
		zap.Int("score", s.Score),
		zap.Float64("time", s.Time),
		zap.Float64("level", system.DifficultyLevel(s.Time, s.Score)),
		zap.Int("high", g.highScore),
		zap.Bool("record", newRecord),
	)
}
