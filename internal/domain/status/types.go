package status

import "time"

// Kind identifies a status condition
type Kind string

// Primary conditions - mutually exclusive on a combatant
const (
	Burn      Kind = "burn"
	Freeze    Kind = "freeze"
	Paralysis Kind = "paralysis"
	Poison    Kind = "poison"
	Sleep     Kind = "sleep"
)

// Secondary conditions - coexist, deduplicated per kind
const (
	Confusion   Kind = "confusion"
	Flinch      Kind = "flinch"
	Infatuation Kind = "infatuation"
	Taunt       Kind = "taunt"
)

// Stage-modifier kinds, one per (stat, direction) pair
const (
	AttackUp         Kind = "attack_up"
	AttackDown       Kind = "attack_down"
	DefenseUp        Kind = "defense_up"
	DefenseDown      Kind = "defense_down"
	SpeedUp          Kind = "speed_up"
	SpeedDown        Kind = "speed_down"
	IntelligenceUp   Kind = "intelligence_up"
	IntelligenceDown Kind = "intelligence_down"
	AccuracyUp       Kind = "accuracy_up"
	AccuracyDown     Kind = "accuracy_down"
	EvasionUp        Kind = "evasion_up"
	EvasionDown      Kind = "evasion_down"
)

// Category partitions kinds by exclusivity rules
type Category string

const (
	CategoryPrimary   Category = "primary"
	CategorySecondary Category = "secondary"
)

// Stat names a combatant attribute
type Stat string

const (
	StatAttack       Stat = "attack"
	StatDefense      Stat = "defense"
	StatSpeed        Stat = "speed"
	StatIntelligence Stat = "intelligence"
	StatStamina      Stat = "stamina" // not stageable
	StatAccuracy     Stat = "accuracy"
	StatEvasion      Stat = "evasion"
)

// Direction is which way a stage modifier pushes a stat
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// DurationUntilRemoved marks an effect that lasts until the combatant
// leaves battle or it is removed explicitly.
const DurationUntilRemoved = -1

// stageKinds maps the (stat, direction) tagged pair to its kind.
// Kinds are never assembled from strings.
var stageKinds = map[Stat]map[Direction]Kind{
	StatAttack:       {DirectionUp: AttackUp, DirectionDown: AttackDown},
	StatDefense:      {DirectionUp: DefenseUp, DirectionDown: DefenseDown},
	StatSpeed:        {DirectionUp: SpeedUp, DirectionDown: SpeedDown},
	StatIntelligence: {DirectionUp: IntelligenceUp, DirectionDown: IntelligenceDown},
	StatAccuracy:     {DirectionUp: AccuracyUp, DirectionDown: AccuracyDown},
	StatEvasion:      {DirectionUp: EvasionUp, DirectionDown: EvasionDown},
}

type stageRef struct {
	stat      Stat
	direction Direction
}

var stageRefs = func() map[Kind]stageRef {
	refs := make(map[Kind]stageRef)
	for stat, dirs := range stageKinds {
		for dir, kind := range dirs {
			refs[kind] = stageRef{stat: stat, direction: dir}
		}
	}
	return refs
}()

// StageKind returns the kind for a (stat, direction) pair.
// ok is false for non-stageable stats such as stamina.
func StageKind(stat Stat, dir Direction) (Kind, bool) {
	kind, ok := stageKinds[stat][dir]
	return kind, ok
}

// Stage resolves a stage-modifier kind back to its (stat, direction) pair.
// ok is false for every non-stage kind.
func (k Kind) Stage() (Stat, Direction, bool) {
	ref, ok := stageRefs[k]
	return ref.stat, ref.direction, ok
}

// Effect is an active status condition attached to one combatant.
// Pure data: all behavior is dispatched on Kind, never stored here.
type Effect struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Duration  int       `json:"duration"` // turns remaining, or DurationUntilRemoved
	Severity  int       `json:"severity"` // stage delta for stage kinds, magnitude otherwise
	Source    string    `json:"source"`   // originating combatant or move
	Message   string    `json:"message"`  // display text produced at creation
	AppliedAt time.Time `json:"applied_at"`
}

// Permanent reports whether the effect only ends via explicit removal
func (e *Effect) Permanent() bool {
	return e.Duration == DurationUntilRemoved
}

// TickOutcome reports what one effect did during ProcessTurn
type TickOutcome struct {
	Kind    Kind   `json:"kind"`
	Damage  int    `json:"damage"`  // passive damage dealt this tick
	CanAct  bool   `json:"can_act"` // false means the effect blocks this turn's action
	Message string `json:"message"`
}
