package events

// EventType identifies what happened
type EventType string

const (
	StatusApplied EventType = "status.applied"
	StatusRemoved EventType = "status.removed"
	StatusExpired EventType = "status.expired"
	StatusTicked  EventType = "status.ticked"
)

// Context keys used by the status engine
const (
	ContextKind     = "kind"
	ContextEffectID = "effect_id"
	ContextSource   = "source"
	ContextReason   = "reason"
	ContextDamage   = "damage"
	ContextCanAct   = "can_act"
)

// BattleEvent represents something observable that happened during battle processing
type BattleEvent struct {
	Type      EventType
	Combatant string                 // ID of the combatant the event concerns
	Context   map[string]interface{} // Flexible context data
}

// NewBattleEvent creates a new battle event
func NewBattleEvent(eventType EventType, combatantID string) *BattleEvent {
	return &BattleEvent{
		Type:      eventType,
		Combatant: combatantID,
		Context:   make(map[string]interface{}),
	}
}

// WithContext adds context data to the event
func (e *BattleEvent) WithContext(key string, value interface{}) *BattleEvent {
	e.Context[key] = value
	return e
}

// GetContext retrieves a value from the context
func (e *BattleEvent) GetContext(key string) (interface{}, bool) {
	val, exists := e.Context[key]
	return val, exists
}

// GetIntContext retrieves an int value from the context
func (e *BattleEvent) GetIntContext(key string) (int, bool) {
	val, exists := e.Context[key]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// GetBoolContext retrieves a bool value from the context
func (e *BattleEvent) GetBoolContext(key string) (value, exists bool) {
	val, exists := e.Context[key]
	if !exists {
		return false, false
	}
	boolVal, ok := val.(bool)
	return boolVal, ok
}

// GetStringContext retrieves a string value from the context
func (e *BattleEvent) GetStringContext(key string) (string, bool) {
	val, exists := e.Context[key]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}
