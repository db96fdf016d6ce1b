package system

import (
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/engine"
)

// newTestState returns a play-phase state on an 800x600 viewport with an empty field
func newTestState() (*engine.State, *engine.Config) {
	cfg := engine.DefaultConfig()
	s := engine.NewState(core.NewViewport(800, 600))
	s.Reset(&cfg)
	s.Phase = engine.PhasePlay
	return s, &cfg
}
