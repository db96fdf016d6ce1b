package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gravity-eater/engine"
)

// Option configures a Game at construction
type Option func(*Game)

// WithLogger sets the structured logger; defaults to a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStore sets high score persistence; defaults to an in-memory store
func WithStore(st engine.HighScoreStore) Option {
	return func(g *Game) {
		if st != nil {
			g.store = st
		}
	}
}

// WithConfig overrides the simulation tuning
func WithConfig(cfg engine.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithSeed makes spawning reproducible
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithRunID replaces run id generation, used for reproducible logs in tests
func WithRunID(gen func() string) Option {
	return func(g *Game) {
		if gen != nil {
			g.newRunID = gen
		}
	}
}
