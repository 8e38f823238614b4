package status

import (
	"log"

	"github.com/hartfell/beastbattle/internal/domain/events"
	"github.com/hartfell/beastbattle/internal/rng"
)

// tickResult is what one kind's tick behavior decided
type tickResult struct {
	damage  int
	canAct  bool
	remove  bool // the effect ends now (cure, wake), independent of countdown
	message string
}

// ProcessTurn runs every active effect's end-of-turn behavior once and
// returns one outcome per effect that was active at the start of the call.
// Iteration is in reverse insertion order so in-place removal is safe, and
// outcomes are reported in that same reverse order; callers needing forward
// order must re-reverse.
func (r *Registry) ProcessTurn(c Combatant, roller rng.Roller) []TickOutcome {
	set := c.StatusSet()
	outcomes := make([]TickOutcome, 0, set.Len())

	for i := set.Len() - 1; i >= 0; i-- {
		effect := set.effects[i]
		res := tick(effect, c, roller)

		if res.damage > 0 {
			applyDamage(c, res.damage)
		}

		switch {
		case res.remove:
			set.removeAt(i)
			r.expire(c, effect)
		case !effect.Permanent():
			effect.Duration--
			if effect.Duration <= 0 {
				set.removeAt(i)
				r.expire(c, effect)
			}
		}

		outcomes = append(outcomes, TickOutcome{
			Kind:    effect.Kind,
			Damage:  res.damage,
			CanAct:  res.canAct,
			Message: res.message,
		})
		r.emit(events.NewBattleEvent(events.StatusTicked, c.ID()).
			WithContext(events.ContextKind, string(effect.Kind)).
			WithContext(events.ContextDamage, res.damage).
			WithContext(events.ContextCanAct, res.canAct))
	}

	return outcomes
}

// tick dispatches one effect's per-turn behavior on its kind
func tick(e *Effect, c Combatant, roller rng.Roller) tickResult {
	switch e.Kind {
	case Burn:
		return tickResult{
			damage:  fractionOfMax(c, burnDamageDivisor),
			canAct:  true,
			message: "is hurt by its burn",
		}

	case Poison:
		return tickResult{
			damage:  fractionOfMax(c, poisonDamageDivisor),
			canAct:  true,
			message: "is hurt by poison",
		}

	case Freeze:
		if roller.Chance(freezeCureChance) {
			return tickResult{canAct: true, remove: true, message: "thawed out"}
		}
		return tickResult{canAct: false, message: "is frozen solid"}

	case Paralysis:
		if roller.Chance(paralysisStopChance) {
			return tickResult{canAct: false, message: "is paralyzed and can't move"}
		}
		return tickResult{canAct: true}

	case Sleep:
		if !e.Permanent() && e.Duration <= 1 {
			return tickResult{canAct: true, remove: true, message: "woke up"}
		}
		return tickResult{canAct: false, message: "is fast asleep"}

	case Confusion:
		if roller.Chance(confusionHitChance) {
			return tickResult{
				damage:  c.Stat(StatAttack) * confusionAttackNum / confusionAttackDen,
				canAct:  true,
				message: "hurt itself in its confusion",
			}
		}
		return tickResult{canAct: true}

	case Flinch, Infatuation, Taunt:
		return tickResult{canAct: true}

	default:
		if _, _, ok := e.Kind.Stage(); ok {
			return tickResult{canAct: true}
		}
		log.Printf("[STATUS] no tick behavior for kind %q on %s, skipping", e.Kind, c.ID())
		return tickResult{canAct: true}
	}
}

// fractionOfMax deals maxHealth/divisor passive damage, minimum 1
func fractionOfMax(c Combatant, divisor int) int {
	damage := c.MaxHealth() / divisor
	if damage < 1 {
		damage = 1
	}
	return damage
}

// applyDamage lowers health, clamped to [0, MaxHealth]
func applyDamage(c Combatant, damage int) {
	hp := c.Health() - damage
	if hp < 0 {
		hp = 0
	}
	c.SetHealth(hp)
}

// expire removes bookkeeping for an effect whose life ended during ticking
func (r *Registry) expire(c Combatant, effect *Effect) {
	if h, ok := onRemove[effect.Kind]; ok {
		h(c, effect)
	}
	log.Printf("[STATUS] %s expired on %s", effect.Kind, c.ID())
	r.emit(events.NewBattleEvent(events.StatusExpired, c.ID()).
		WithContext(events.ContextEffectID, effect.ID).
		WithContext(events.ContextKind, string(effect.Kind)))
}
