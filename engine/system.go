package engine

// System is one stage of the per-tick simulation
// dt is already clamped by the caller
type System interface {
	// Priority returns the system's priority (lower runs first)
	Priority() int
	// Update advances the state by dt seconds
	Update(s *State, dt float64)
}
