package rng

//go:generate mockgen -destination=mock/mock_roller.go -package=mockrng -source=roller.go

// Roller provides the randomness consumed by status-effect ticks
// This allows us to inject different implementations for testing
type Roller interface {
	// Chance returns true with the given percent probability (0-100)
	Chance(percent int) bool

	// RollRange returns a uniform integer in [0, n)
	RollRange(n int) int
}
