package ecs_test

import (
	"testing"

	"github.com/plus3/frameloop/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	t.Run("operations wait for flush", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{})
		commands := storage.Commands()

		ecs.DeferSpawn(commands, Position{X: 5})
		ecs.DeferInsert(commands, id, Velocity{DX: 1})
		assert.Equal(t, 2, commands.Len())
		assert.Equal(t, 1, storage.Len())
		assert.False(t, ecs.Has[Velocity](storage, id))

		storage.Flush()

		assert.Equal(t, 0, commands.Len())
		assert.Equal(t, 2, storage.Len())
		assert.True(t, ecs.Has[Velocity](storage, id))
	})

	t.Run("despawn while iterating", func(t *testing.T) {
		storage := ecs.NewStorage()
		for i := range 5 {
			ecs.Spawn(storage, Health{Current: i % 2, Max: 1})
		}

		for id, health := range ecs.QueryRef[Health](storage) {
			if health.Current == 0 {
				storage.Commands().Despawn(id)
			}
		}
		assert.Equal(t, 5, storage.Len())

		storage.Flush()
		assert.Equal(t, 2, storage.Len())
	})

	t.Run("inserts and removes on despawned entities are skipped", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{})
		commands := storage.Commands()

		ecs.DeferInsert(commands, id, Velocity{})
		ecs.DeferRemove[Position](commands, id)
		commands.Despawn(id)
		storage.Flush()

		assert.False(t, storage.Alive(id))
		assert.Equal(t, 0, ecs.Count[Velocity](storage))
	})

	t.Run("remove", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{})
		ecs.Insert(storage, id, Name{Value: "x"})

		ecs.DeferRemove[Name](storage.Commands(), id)
		storage.Flush()

		assert.False(t, ecs.Has[Name](storage, id))
		assert.True(t, ecs.Has[Position](storage, id))
	})

	t.Run("defers run last and may queue more work", func(t *testing.T) {
		storage := ecs.NewStorage()
		commands := storage.Commands()
		var order []string

		ecs.DeferSpawn(commands, Position{})
		commands.Defer(func() {
			order = append(order, "defer")
			require.Equal(t, 1, storage.Len(), "spawns apply before defers")
			ecs.DeferSpawn(commands, Position{})
		})

		storage.Flush()
		assert.Equal(t, []string{"defer"}, order)
		assert.Equal(t, 1, storage.Len())
		assert.Equal(t, 1, commands.Len(), "work queued while flushing waits for the next flush")

		storage.Flush()
		assert.Equal(t, 2, storage.Len())
	})
}
