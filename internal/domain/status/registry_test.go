package status_test

import (
	"testing"

	"github.com/hartfell/beastbattle/internal/domain/events"
	"github.com/hartfell/beastbattle/internal/domain/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Apply(t *testing.T) {
	t.Run("apply burn", func(t *testing.T) {
		registry := status.NewRegistry(nil)
		c := newTestCreature("char-1", 160)

		ok := registry.Apply(c, status.New(status.Burn, 5, "move:ember"))
		require.True(t, ok)
		assert.True(t, status.Has(c, status.Burn))

		primary := status.Primary(c)
		require.NotNil(t, primary)
		assert.Equal(t, status.Burn, primary.Kind)
		assert.Equal(t, 5, primary.Duration)
		assert.Equal(t, "move:ember", primary.Source)
	})

	t.Run("second primary is rejected", func(t *testing.T) {
		registry := status.NewRegistry(nil)
		c := newTestCreature("char-2", 100)

		require.True(t, registry.Apply(c, status.New(status.Paralysis, 4, "move:thunder-wave")))

		ok := registry.Apply(c, status.New(status.Freeze, 3, "move:ice-beam"))
		assert.False(t, ok)

		// Paralysis is still the sole primary condition
		primary := status.Primary(c)
		require.NotNil(t, primary)
		assert.Equal(t, status.Paralysis, primary.Kind)
		assert.False(t, status.Has(c, status.Freeze))
		assert.Equal(t, 1, c.StatusSet().Len())
	})

	t.Run("reapplying the same primary is rejected", func(t *testing.T) {
		registry := status.NewRegistry(nil)
		c := newTestCreature("char-3", 100)

		require.True(t, registry.Apply(c, status.New(status.Burn, 5, "a")))
		assert.False(t, registry.Apply(c, status.New(status.Burn, 2, "b")))

		burn := status.ActiveKind(c, status.Burn)
		require.NotNil(t, burn)
		assert.Equal(t, 5, burn.Duration)
		assert.Equal(t, "a", burn.Source)
	})

	t.Run("secondary duplicate replaces, never stacks", func(t *testing.T) {
		registry := status.NewRegistry(nil)
		c := newTestCreature("char-4", 100)

		require.True(t, registry.Apply(c, status.NewWithSeverity(status.Confusion, 2, 1, "a")))
		require.True(t, registry.Apply(c, status.NewWithSeverity(status.Confusion, 4, 3, "b")))

		assert.Equal(t, 1, c.StatusSet().Len())
		confusion := status.ActiveKind(c, status.Confusion)
		require.NotNil(t, confusion)
		assert.Equal(t, 4, confusion.Duration)
		assert.Equal(t, 3, confusion.Severity)
		assert.Equal(t, "b", confusion.Source)
	})

	t.Run("secondary coexists with primary", func(t *testing.T) {
		registry := status.NewRegistry(nil)
		c := newTestCreature("char-5", 100)

		require.True(t, registry.Apply(c, status.New(status.Poison, 5, "a")))
		require.True(t, registry.Apply(c, status.New(status.Confusion, 3, "b")))
		require.True(t, registry.Apply(c, status.New(status.Taunt, 2, "c")))

		assert.Equal(t, 3, c.StatusSet().Len())

		// Insertion order is preserved
		active := status.Active(c)
		require.Len(t, active, 3)
		assert.Equal(t, status.Poison, active[0].Kind)
		assert.Equal(t, status.Confusion, active[1].Kind)
		assert.Equal(t, status.Taunt, active[2].Kind)
	})

	t.Run("nil effect", func(t *testing.T) {
		registry := status.NewRegistry(nil)
		c := newTestCreature("char-6", 100)

		assert.False(t, registry.Apply(c, nil))
		assert.Equal(t, 0, c.StatusSet().Len())
	})
}

func TestRegistry_ApplyEmitsEvents(t *testing.T) {
	bus := events.NewEventBus()
	applied := &countingListener{}
	removed := &countingListener{}
	bus.Subscribe(events.StatusApplied, applied)
	bus.Subscribe(events.StatusRemoved, removed)

	registry := status.NewRegistry(bus)
	c := newTestCreature("char-7", 100)

	require.True(t, registry.Apply(c, status.New(status.Confusion, 2, "a")))
	require.True(t, registry.Apply(c, status.New(status.Confusion, 3, "b")))

	assert.Equal(t, []string{"confusion", "confusion"}, applied.kinds())

	// The replaced instance reports its removal reason
	require.Len(t, removed.events, 1)
	reason, _ := removed.events[0].GetStringContext(events.ContextReason)
	assert.Equal(t, status.ReasonReplaced, reason)
}

func TestRegistry_Remove(t *testing.T) {
	registry := status.NewRegistry(nil)
	c := newTestCreature("char-8", 100)

	require.True(t, registry.Apply(c, status.New(status.Sleep, 3, "a")))

	assert.True(t, registry.Remove(c, status.Sleep))
	assert.False(t, status.Has(c, status.Sleep))
	assert.Nil(t, status.Primary(c))

	// Removing again reports nothing matched
	assert.False(t, registry.Remove(c, status.Sleep))
}

func TestRegistry_ClearAll(t *testing.T) {
	bus := events.NewEventBus()
	removed := &countingListener{}
	bus.Subscribe(events.StatusRemoved, removed)

	registry := status.NewRegistry(bus)
	c := newTestCreature("char-9", 100)

	speedUp, ok := status.NewStage(status.StatSpeed, status.DirectionUp, 2, status.DurationUntilRemoved, "a")
	require.True(t, ok)
	require.True(t, registry.Apply(c, status.New(status.Burn, 5, "a")))
	require.True(t, registry.Apply(c, status.New(status.Confusion, 3, "a")))
	require.True(t, registry.Apply(c, speedUp))

	registry.ClearAll(c)

	assert.Equal(t, 0, c.StatusSet().Len())

	// Each effect's on-remove behavior ran exactly once, in current order
	assert.Equal(t, []string{"burn", "confusion", "speed_up"}, removed.kinds())

	// ClearAll on an empty set is a no-op
	registry.ClearAll(c)
	assert.Len(t, removed.events, 3)
}

func TestQueries(t *testing.T) {
	registry := status.NewRegistry(nil)
	c := newTestCreature("char-10", 100)

	assert.False(t, status.Has(c, status.Burn))
	assert.Nil(t, status.ActiveKind(c, status.Burn))
	assert.Nil(t, status.Primary(c))
	assert.Empty(t, status.Active(c))

	require.True(t, registry.Apply(c, status.New(status.Flinch, 1, "a")))

	assert.True(t, status.Has(c, status.Flinch))
	assert.NotNil(t, status.ActiveKind(c, status.Flinch))
	assert.Nil(t, status.Primary(c)) // flinch is secondary
}
