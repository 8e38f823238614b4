package status

import (
	"log"

	"github.com/hartfell/beastbattle/internal/domain/events"
)

// Removal reasons recorded on StatusRemoved events
const (
	ReasonCured    = "cured"
	ReasonReplaced = "replaced"
	ReasonCleared  = "cleared"
)

// Registry enforces the apply/replace/removal rules over a combatant's
// status set. It holds no per-combatant state of its own; the set lives on
// the combatant. The event bus is optional.
type Registry struct {
	bus *events.EventBus
}

// NewRegistry creates a registry. bus may be nil when nothing observes
// status changes.
func NewRegistry(bus *events.EventBus) *Registry {
	return &Registry{bus: bus}
}

// Apply attaches the effect to the combatant. It returns false, changing
// nothing, when the effect is primary and another primary condition is
// already active. An existing effect of the same kind is replaced, never
// stacked.
func (r *Registry) Apply(c Combatant, effect *Effect) bool {
	if effect == nil {
		return false
	}

	set := c.StatusSet()
	if Categorize(effect.Kind) == CategoryPrimary {
		if existing := set.primary(); existing != nil {
			log.Printf("[STATUS] %s resisted %s: already %s", c.ID(), effect.Kind, existing.Kind)
			return false
		}
	}

	if i := set.index(effect.Kind); i >= 0 {
		replaced := set.effects[i]
		set.removeAt(i)
		r.finishRemoval(c, replaced, ReasonReplaced)
	}

	set.add(effect)
	if h, ok := onApply[effect.Kind]; ok {
		h(c, effect)
	}

	log.Printf("[STATUS] Applied %s to %s (duration: %d, severity: %d)",
		effect.Kind, c.ID(), effect.Duration, effect.Severity)
	r.emit(events.NewBattleEvent(events.StatusApplied, c.ID()).
		WithContext(events.ContextEffectID, effect.ID).
		WithContext(events.ContextKind, string(effect.Kind)).
		WithContext(events.ContextSource, effect.Source))

	return true
}

// Remove deletes the effect of the given kind, invoking its on-remove
// behavior first. Returns false when no such effect is active.
func (r *Registry) Remove(c Combatant, kind Kind) bool {
	set := c.StatusSet()
	i := set.index(kind)
	if i < 0 {
		return false
	}

	effect := set.effects[i]
	set.removeAt(i)
	r.finishRemoval(c, effect, ReasonCured)

	log.Printf("[STATUS] Removed %s from %s", kind, c.ID())
	return true
}

// ClearAll removes every effect, invoking each one's on-remove behavior in
// current order, then empties the collection. Used for switch-outs and
// end-of-battle cleanup.
func (r *Registry) ClearAll(c Combatant) {
	set := c.StatusSet()
	cleared := set.effects
	set.effects = nil

	for _, effect := range cleared {
		r.finishRemoval(c, effect, ReasonCleared)
	}

	if len(cleared) > 0 {
		log.Printf("[STATUS] Cleared %d effects from %s", len(cleared), c.ID())
	}
}

// finishRemoval runs the on-remove hook and emits the removal event for an
// effect that is already detached from the set.
func (r *Registry) finishRemoval(c Combatant, effect *Effect, reason string) {
	if h, ok := onRemove[effect.Kind]; ok {
		h(c, effect)
	}
	r.emit(events.NewBattleEvent(events.StatusRemoved, c.ID()).
		WithContext(events.ContextEffectID, effect.ID).
		WithContext(events.ContextKind, string(effect.Kind)).
		WithContext(events.ContextReason, reason))
}

func (r *Registry) emit(event *events.BattleEvent) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Emit(event); err != nil {
		log.Printf("[STATUS] Failed to emit event: %v", err)
	}
}

// Has reports whether an effect of the given kind is active
func Has(c Combatant, kind Kind) bool {
	return c.StatusSet().index(kind) >= 0
}

// Active returns all active effects in insertion order
func Active(c Combatant) []*Effect {
	return c.StatusSet().Effects()
}

// ActiveKind returns the active effect of the given kind, or nil
func ActiveKind(c Combatant, kind Kind) *Effect {
	set := c.StatusSet()
	if i := set.index(kind); i >= 0 {
		return set.effects[i]
	}
	return nil
}

// Primary returns the single active primary-category effect, or nil
func Primary(c Combatant) *Effect {
	return c.StatusSet().primary()
}
