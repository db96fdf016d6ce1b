package engine

// HighScoreStore persists the single best score across runs
type HighScoreStore interface {
	// Load returns the stored best, 0 when missing or malformed
	Load() int
	// Save stores n as the new best
	Save(n int) error
}
