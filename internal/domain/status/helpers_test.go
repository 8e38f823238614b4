package status_test

import (
	"github.com/hartfell/beastbattle/internal/domain/creature"
	"github.com/hartfell/beastbattle/internal/domain/events"
)

// newTestCreature builds a combatant with full health and fixed stats
func newTestCreature(id string, maxHP int) *creature.Creature {
	return &creature.Creature{
		CreatureID:   id,
		Name:         id,
		HP:           maxHP,
		MaxHP:        maxHP,
		Attack:       30,
		Defense:      25,
		Speed:        40,
		Intelligence: 20,
		Stamina:      35,
		Accuracy:     100,
		Evasion:      100,
	}
}

// countingListener tallies battle events by type
type countingListener struct {
	events []*events.BattleEvent
}

func (l *countingListener) HandleEvent(event *events.BattleEvent) error {
	l.events = append(l.events, event)
	return nil
}

func (l *countingListener) Priority() int { return 100 }

func (l *countingListener) kinds() []string {
	out := make([]string, 0, len(l.events))
	for _, e := range l.events {
		kind, _ := e.GetStringContext(events.ContextKind)
		out = append(out, kind)
	}
	return out
}
