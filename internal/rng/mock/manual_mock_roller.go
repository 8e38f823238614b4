package mockrng

import (
	"fmt"
	"sync"
)

// ManualRoller implements rng.Roller for testing with predetermined results.
// Chance and RollRange consume from the same queue: Chance(p) reads the next
// value as a percent roll in [0, 100) and reports roll < p.
type ManualRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualRoller creates a new mock roller
func NewManualRoller() *ManualRoller {
	return &ManualRoller{
		rolls: []int{},
	}
}

// SetNextRoll appends the next roll result
func (m *ManualRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// getNextRoll returns the next predetermined roll
func (m *ManualRoller) getNextRoll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		panic(fmt.Sprintf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls)))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll
}

// Chance implements rng.Roller.Chance
func (m *ManualRoller) Chance(percent int) bool {
	return m.getNextRoll() < percent
}

// RollRange implements rng.Roller.RollRange
func (m *ManualRoller) RollRange(n int) int {
	if n <= 0 {
		return 0
	}
	return m.getNextRoll() % n
}
