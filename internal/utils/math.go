package utils

import (
	"math/rand/v2"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomIntN returns a random integer in [0, n). Returns 0 when n <= 0.
func RandomIntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// ClampInt bounds value to [lo, hi]
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Ratio returns part/whole, or 0 when whole is zero
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
