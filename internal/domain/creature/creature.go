package creature

import (
	"github.com/hartfell/beastbattle/internal/domain/status"
)

// Creature is a battle participant. Fields are owned by the battle loop;
// the status engine reaches them through the status.Combatant interface.
type Creature struct {
	CreatureID string `json:"id"`
	Name       string `json:"name"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`

	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	Speed        int `json:"speed"`
	Intelligence int `json:"intelligence"`
	Stamina      int `json:"stamina"`
	Accuracy     int `json:"accuracy"`
	Evasion      int `json:"evasion"`

	// Statuses is the one ordered collection of active effects this
	// creature owns. Never shared between creatures.
	Statuses status.Set `json:"-"`
}

// ID implements status.Combatant
func (c *Creature) ID() string {
	return c.CreatureID
}

// Health implements status.Combatant
func (c *Creature) Health() int {
	return c.HP
}

// SetHealth implements status.Combatant, clamping into [0, MaxHP]
func (c *Creature) SetHealth(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > c.MaxHP {
		hp = c.MaxHP
	}
	c.HP = hp
}

// MaxHealth implements status.Combatant
func (c *Creature) MaxHealth() int {
	return c.MaxHP
}

// Stat implements status.Combatant
func (c *Creature) Stat(stat status.Stat) int {
	switch stat {
	case status.StatAttack:
		return c.Attack
	case status.StatDefense:
		return c.Defense
	case status.StatSpeed:
		return c.Speed
	case status.StatIntelligence:
		return c.Intelligence
	case status.StatStamina:
		return c.Stamina
	case status.StatAccuracy:
		return c.Accuracy
	case status.StatEvasion:
		return c.Evasion
	default:
		return 0
	}
}

// StatusSet implements status.Combatant
func (c *Creature) StatusSet() *status.Set {
	return &c.Statuses
}

// Fainted reports whether the creature is out of the fight
func (c *Creature) Fainted() bool {
	return c.HP <= 0
}
