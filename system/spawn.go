package system

import (
	"github.com/lixenwraith/gravity-eater/component"
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// Spawn edges, chosen uniformly
const (
	edgeLeft = iota
	edgeRight
	edgeTop
	edgeBottom
	edgeCount
)

// SpawnSystem creates food and hazards from fractional per-second rates
// Rates come from the difficulty curve each tick; population caps are never exceeded
type SpawnSystem struct {
	cfg *engine.Config
	rng *vmath.FastRand
}

// NewSpawnSystem creates a spawner drawing from rng
func NewSpawnSystem(cfg *engine.Config, rng *vmath.FastRand) *SpawnSystem {
	return &SpawnSystem{cfg: cfg, rng: rng}
}

func (sp *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update accumulates rate*dt per kind and spawns one entity per whole unit
// A capped population still drains its accumulator so spawns do not burst when room frees up
func (sp *SpawnSystem) Update(s *engine.State, dt float64) {
	level := DifficultyLevel(s.Time, s.Score)

	s.FoodAccumulator += FoodSpawnRate(level) * dt
	s.HazardAccumulator += HazardSpawnRate(level) * dt

	for s.FoodAccumulator >= 1 {
		sp.SpawnFood(s, false)
		s.FoodAccumulator -= 1
	}
	for s.HazardAccumulator >= 1 {
		sp.SpawnHazard(s, false)
		s.HazardAccumulator -= 1
	}
}

// Seed fills the opening field for a fresh run
func (sp *SpawnSystem) Seed(s *engine.State) {
	for i := 0; i < sp.cfg.InitialFoodCount; i++ {
		sp.SpawnFood(s, true)
	}
	for i := 0; i < sp.cfg.InitialHazardCount; i++ {
		sp.SpawnHazard(s, true)
	}
}

// SpawnFood adds one food particle unless the population is capped, returns true on spawn
// Initial spawns keep a margin from the walls
func (sp *SpawnSystem) SpawnFood(s *engine.State, initial bool) bool {
	if len(s.Foods) >= sp.cfg.MaxFoods {
		return false
	}

	vp := s.Viewport
	margin := 0.0
	if initial {
		margin = parameter.FoodInitialMargin
	}

	radius := sp.rng.Range(parameter.FoodRadiusMin, parameter.FoodRadiusMax)
	mass := radius * sp.rng.Range(parameter.FoodMassFactorMin, parameter.FoodMassFactorMax)
	speedBase := FoodBaseSpeed(DifficultyLevel(s.Time, s.Score))

	pos := vmath.Vec2{
		X: sp.rng.Range(margin, vp.Width-margin),
		Y: sp.rng.Range(margin, vp.Height-margin),
	}
	// Independent per-axis damping so drift is not biased toward diagonals
	vel := vmath.Vec2{
		X: sp.rng.Range(-1, 1) * speedBase * sp.rng.Range(parameter.FoodAxisDampMin, parameter.FoodAxisDampMax),
		Y: sp.rng.Range(-1, 1) * speedBase * sp.rng.Range(parameter.FoodAxisDampMin, parameter.FoodAxisDampMax),
	}

	s.Foods = append(s.Foods, component.FoodComponent{
		Kinetic: core.Kinetic{Pos: pos, Vel: vel},
		Radius:  radius,
		Mass:    mass,
	})
	return true
}

// SpawnHazard adds one hazard just outside a random edge aimed at the viewport center, returns true on spawn
func (sp *SpawnSystem) SpawnHazard(s *engine.State, initial bool) bool {
	if len(s.Hazards) >= sp.cfg.MaxHazards {
		return false
	}

	vp := s.Viewport
	off := parameter.HazardSpawnOffset

	var pos vmath.Vec2
	switch sp.rng.Intn(edgeCount) {
	case edgeLeft:
		pos = vmath.Vec2{X: -off, Y: sp.rng.Range(0, vp.Height)}
	case edgeRight:
		pos = vmath.Vec2{X: vp.Width + off, Y: sp.rng.Range(0, vp.Height)}
	case edgeTop:
		pos = vmath.Vec2{X: sp.rng.Range(0, vp.Width), Y: -off}
	default:
		pos = vmath.Vec2{X: sp.rng.Range(0, vp.Width), Y: vp.Height + off}
	}

	toCenter := vmath.V2Sub(vp.Center(), pos)
	length := vmath.Magnitude(toCenter)
	if length == 0 {
		length = 1
	}
	dir := vmath.V2Scale(toCenter, 1/length)

	level := DifficultyLevel(s.Time, s.Score)
	speed := sp.rng.Range(parameter.HazardSpeedMin, parameter.HazardSpeedMax) + level*parameter.HazardSpeedPerLevel
	if !initial {
		speed += sp.rng.Range(0, parameter.HazardSpeedJitterMax)
	}

	noise := parameter.HazardAxisNoise
	vel := vmath.Vec2{
		X: dir.X*speed + sp.rng.Range(-noise, noise),
		Y: dir.Y*speed + sp.rng.Range(-noise, noise),
	}
	radius := sp.rng.Range(parameter.HazardRadiusMin, parameter.HazardRadiusMax) + level*parameter.HazardRadiusPerLevel

	s.Hazards = append(s.Hazards, component.HazardComponent{
		Kinetic: core.Kinetic{Pos: pos, Vel: vel},
		Radius:  radius,
	})
	return true
}
