// Package store persists the high score as a single named value
package store

import (
	"math"
	"strconv"
	"strings"
)

// maxScore bounds parsed values to integers exactly representable in float64
const maxScore = 1 << 53

// ParseHighScore decodes a stored decimal string
// Missing, non-numeric, non-finite or non-positive values yield 0; fractions floor
func ParseHighScore(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return int(math.Floor(math.Min(f, maxScore)))
}

// FormatHighScore encodes n as the stored decimal string
func FormatHighScore(n int) string {
	return strconv.Itoa(n)
}
