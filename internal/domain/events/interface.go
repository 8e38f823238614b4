package events

// EventListener handles battle events
type EventListener interface {
	// HandleEvent processes the event. Errors propagate to the emitter's logger,
	// they never abort battle processing.
	HandleEvent(event *BattleEvent) error

	// Priority determines handler order (lower = earlier)
	Priority() int
}
