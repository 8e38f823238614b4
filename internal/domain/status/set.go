package status

// Combatant is what the engine needs from a battle participant. The external
// battle loop owns movement, turn order and damage formulas; the engine only
// reads stats and mutates health and the combatant's own status set.
type Combatant interface {
	// ID identifies the combatant for events and logging
	ID() string

	// Health is the current hit points, always within [0, MaxHealth]
	Health() int

	// SetHealth replaces current hit points
	SetHealth(hp int)

	// MaxHealth never changes during a battle
	MaxHealth() int

	// Stat returns the base value of one of the six stats
	Stat(stat Stat) int

	// StatusSet is the combatant's owned, insertion-ordered effect collection
	StatusSet() *Set
}

// Set is the ordered collection of active effects a combatant owns.
// Insertion order is preserved; ticking iterates in reverse so in-place
// removal never skips entries. The zero value is ready to use.
type Set struct {
	effects []*Effect
}

// Len returns the number of active effects
func (s *Set) Len() int {
	return len(s.effects)
}

// Effects returns the active effects in insertion order
func (s *Set) Effects() []*Effect {
	out := make([]*Effect, len(s.effects))
	copy(out, s.effects)
	return out
}

// index returns the position of the effect with the given kind, or -1
func (s *Set) index(kind Kind) int {
	for i, e := range s.effects {
		if e.Kind == kind {
			return i
		}
	}
	return -1
}

// primary returns the active primary-category effect, or nil
func (s *Set) primary() *Effect {
	for _, e := range s.effects {
		if Categorize(e.Kind) == CategoryPrimary {
			return e
		}
	}
	return nil
}

func (s *Set) add(e *Effect) {
	s.effects = append(s.effects, e)
}

func (s *Set) removeAt(i int) {
	s.effects = append(s.effects[:i], s.effects[i+1:]...)
}
