// uuid simple generator that allows mocking
package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleGenerator implements Generator using Google's UUID package
type GoogleGenerator struct{}

// New generates a new UUID string
func (g *GoogleGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleGenerator creates a new GoogleGenerator
func NewGoogleGenerator() *GoogleGenerator {
	return &GoogleGenerator{}
}

// SequenceGenerator yields "<prefix>-1", "<prefix>-2", ... for deterministic tests
type SequenceGenerator struct {
	Prefix string
	n      atomic.Int64
}

// New generates the next ID in the sequence
func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.Prefix, g.n.Add(1))
}
