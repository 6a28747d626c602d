package ecs_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/plus3/frameloop/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("spawn and get", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{X: 1, Y: 2})

		assert.False(t, id.IsZero())
		assert.True(t, storage.Alive(id))
		assert.Equal(t, 1, storage.Len())

		pos, ok := ecs.Get[Position](storage, id)
		require.True(t, ok)
		assert.Equal(t, Position{X: 1, Y: 2}, *pos)

		_, ok = ecs.Get[Velocity](storage, id)
		assert.False(t, ok, "unregistered component type must read as absent")
	})

	t.Run("get returns a stable pointer", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{X: 1})

		pos, _ := ecs.Get[Position](storage, id)
		pos.X = 42

		for range 200 {
			ecs.Spawn(storage, Position{})
		}

		again, _ := ecs.Get[Position](storage, id)
		assert.Same(t, pos, again)
		assert.Equal(t, float32(42), again.X)
	})

	t.Run("insert adds and replaces", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := storage.SpawnEmpty()

		assert.True(t, ecs.Insert(storage, id, Health{Current: 10, Max: 10}))
		assert.True(t, ecs.Insert(storage, id, Health{Current: 5, Max: 10}))

		health, ok := ecs.Get[Health](storage, id)
		require.True(t, ok)
		assert.Equal(t, 5, health.Current)
		assert.Equal(t, 1, ecs.Count[Health](storage))
	})

	t.Run("insert on a dead entity fails", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{})
		require.True(t, storage.Despawn(id))

		assert.False(t, ecs.Insert(storage, id, Velocity{DX: 1}))
		assert.Equal(t, 0, ecs.Count[Velocity](storage))
	})

	t.Run("remove returns the component", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Name{Value: "crate"})

		name, ok := ecs.Remove[Name](storage, id)
		require.True(t, ok)
		assert.Equal(t, "crate", name.Value)
		assert.False(t, ecs.Has[Name](storage, id))
		assert.True(t, storage.Alive(id), "removing a component keeps the entity")

		_, ok = ecs.Remove[Name](storage, id)
		assert.False(t, ok)
		_, ok = ecs.Remove[Velocity](storage, id)
		assert.False(t, ok)
	})

	t.Run("despawn invalidates the id", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{X: 1})
		ecs.Insert(storage, id, Velocity{DX: 1})

		assert.True(t, storage.Despawn(id))
		assert.False(t, storage.Despawn(id))
		assert.False(t, storage.Alive(id))
		assert.Equal(t, 0, storage.Len())
		assert.Equal(t, 0, ecs.Count[Position](storage))
		assert.Equal(t, 0, ecs.Count[Velocity](storage))

		reused := ecs.Spawn(storage, Position{X: 2})
		assert.Equal(t, id.Index(), reused.Index())
		assert.NotEqual(t, id.Generation(), reused.Generation())

		_, ok := ecs.Get[Position](storage, id)
		assert.False(t, ok, "stale id must not reach the new entity")
		pos, ok := ecs.Get[Position](storage, reused)
		require.True(t, ok)
		assert.Equal(t, float32(2), pos.X)
	})

	t.Run("entities skips despawned slots", func(t *testing.T) {
		storage := ecs.NewStorage()
		a := storage.SpawnEmpty()
		b := storage.SpawnEmpty()
		c := storage.SpawnEmpty()
		storage.Despawn(b)

		assert.Equal(t, []ecs.EntityId{a, c}, slices.Collect(storage.Entities()))
	})

	t.Run("reflection helpers", func(t *testing.T) {
		storage := ecs.NewStorage()
		id := ecs.Spawn(storage, Position{X: 3})
		ecs.Insert(storage, id, Score(7))

		posType := reflect.TypeFor[Position]()
		assert.True(t, storage.HasComponent(id, posType))
		assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))

		value := storage.GetComponent(id, posType)
		require.IsType(t, &Position{}, value)
		assert.Equal(t, float32(3), value.(*Position).X)

		assert.Equal(t, []reflect.Type{posType, reflect.TypeFor[Score]()}, storage.ComponentTypes(id))
	})

	t.Run("compact keeps components reachable", func(t *testing.T) {
		storage := ecs.NewStorage()
		var ids []ecs.EntityId
		for i := range 100 {
			ids = append(ids, ecs.Spawn(storage, Score(i)))
		}
		for i := 0; i < len(ids); i += 2 {
			storage.Despawn(ids[i])
		}

		storage.Compact()

		assert.Equal(t, 50, ecs.Count[Score](storage))
		for i := 1; i < len(ids); i += 2 {
			score, ok := ecs.Get[Score](storage, ids[i])
			require.True(t, ok)
			assert.Equal(t, Score(i), *score)
		}
	})
}

func TestEntityId(t *testing.T) {
	id := ecs.NewEntityId(3, 17)
	assert.Equal(t, uint32(3), id.Generation())
	assert.Equal(t, uint32(17), id.Index())
	assert.False(t, id.IsZero())

	var zero ecs.EntityId
	assert.True(t, zero.IsZero())
}

// components shared by the ecs tests, examples and benchmarks
type (
	Position struct{ X, Y float32 }
	Velocity struct{ DX, DY float32 }
	Name     struct{ Value string }
	Health   struct{ Current, Max int }
	Score    int32
)
