package status

import (
	"fmt"
	"log"
)

// Tick tuning. Damage fractions are of max health, chances are percent.
const (
	burnDamageDivisor   = 16
	poisonDamageDivisor = 8
	freezeCureChance    = 20
	paralysisStopChance = 25
	confusionHitChance  = 33
	// Confusion self-hits deal floor(attack * 0.4)
	confusionAttackNum = 2
	confusionAttackDen = 5
)

var primaryKinds = map[Kind]bool{
	Burn:      true,
	Freeze:    true,
	Paralysis: true,
	Poison:    true,
	Sleep:     true,
}

var secondaryKinds = map[Kind]bool{
	Confusion:   true,
	Flinch:      true,
	Infatuation: true,
	Taunt:       true,
}

// Known reports whether the kind belongs to the closed catalog
func Known(k Kind) bool {
	if primaryKinds[k] || secondaryKinds[k] {
		return true
	}
	_, ok := stageRefs[k]
	return ok
}

// Categorize returns the exclusivity category of a kind. An unrecognized
// kind (only reachable via malformed external input) is logged and treated
// as secondary so it can never evict a real primary condition.
func Categorize(k Kind) Category {
	if primaryKinds[k] {
		return CategoryPrimary
	}
	if !Known(k) {
		log.Printf("[STATUS] unknown kind %q, treating as secondary", k)
	}
	return CategorySecondary
}

var applyMessages = map[Kind]string{
	Burn:        "was seared by a burn",
	Freeze:      "was frozen solid",
	Paralysis:   "is paralyzed and may be unable to move",
	Poison:      "was poisoned",
	Sleep:       "fell fast asleep",
	Confusion:   "became confused",
	Flinch:      "flinched",
	Infatuation: "became infatuated",
	Taunt:       "fell for the taunt",
}

// applyMessage renders the display text attached to a fresh effect
func applyMessage(kind Kind, severity int) string {
	if msg, ok := applyMessages[kind]; ok {
		return msg
	}
	if stat, dir, ok := kind.Stage(); ok {
		verb := "rose"
		if dir == DirectionDown {
			verb = "fell"
		}
		if severity >= 2 {
			verb += " sharply"
		}
		return fmt.Sprintf("%s %s", stat, verb)
	}
	return ""
}

// hook is an immediate side effect run when an effect lands or leaves
type hook func(c Combatant, e *Effect)

// onApply holds per-kind apply side effects. No current kind needs one;
// kinds with on-hit damage or stat snapshots would register here.
var onApply = map[Kind]hook{}

// onRemove holds per-kind removal side effects
var onRemove = map[Kind]hook{}
