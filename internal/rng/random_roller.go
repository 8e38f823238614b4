package rng

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller backed by a private rand source.
// Not safe for concurrent use; create one per battle.
type randomRoller struct {
	r *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed for reproducible battles
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{r: rand.New(rand.NewSource(seed))}
}

// Chance implements Roller.Chance
func (r *randomRoller) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.r.Intn(100) < percent
}

// RollRange implements Roller.RollRange
func (r *randomRoller) RollRange(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}
