package status

import (
	"time"

	"github.com/hartfell/beastbattle/internal/uuid"
)

// Factory constructs effect records. The ID generator is injectable so
// tests can pin effect IDs.
type Factory struct {
	ids uuid.Generator
}

// NewFactory creates a factory with the given ID generator
func NewFactory(ids uuid.Generator) *Factory {
	return &Factory{ids: ids}
}

var defaultFactory = NewFactory(uuid.NewGoogleGenerator())

// New builds an effect of the given kind with severity 1.
// duration is in turns, or DurationUntilRemoved.
func (f *Factory) New(kind Kind, duration int, source string) *Effect {
	return f.NewWithSeverity(kind, duration, 1, source)
}

// NewWithSeverity builds an effect with an explicit severity
func (f *Factory) NewWithSeverity(kind Kind, duration, severity int, source string) *Effect {
	if severity < 1 {
		severity = 1
	}
	return &Effect{
		ID:        f.ids.New(),
		Kind:      kind,
		Duration:  duration,
		Severity:  severity,
		Source:    source,
		Message:   applyMessage(kind, severity),
		AppliedAt: time.Now(),
	}
}

// NewStage builds a stage-modifier effect for a (stat, direction) pair.
// stages is clamped to [1, MaxStage]. ok is false when the stat is not
// stageable (stamina).
func (f *Factory) NewStage(stat Stat, dir Direction, stages, duration int, source string) (*Effect, bool) {
	kind, ok := StageKind(stat, dir)
	if !ok {
		return nil, false
	}
	if stages > MaxStage {
		stages = MaxStage
	}
	return f.NewWithSeverity(kind, duration, stages, source), true
}

// New builds an effect using the package default factory
func New(kind Kind, duration int, source string) *Effect {
	return defaultFactory.New(kind, duration, source)
}

// NewWithSeverity builds an effect with an explicit severity using the
// package default factory
func NewWithSeverity(kind Kind, duration, severity int, source string) *Effect {
	return defaultFactory.NewWithSeverity(kind, duration, severity, source)
}

// NewStage builds a stage-modifier effect using the package default factory
func NewStage(stat Stat, dir Direction, stages, duration int, source string) (*Effect, bool) {
	return defaultFactory.NewStage(stat, dir, stages, duration, source)
}
