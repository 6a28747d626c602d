package ecs_test

import (
	"testing"

	"github.com/plus3/frameloop/ecs"
)

func spawnMoving(storage *ecs.Storage) ecs.EntityId {
	id := ecs.Spawn(storage, Position{X: 1.0, Y: 2.0})
	ecs.Insert(storage, id, Velocity{DX: 0.5, DY: 0.5})
	return id
}

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage()

	for b.Loop() {
		spawnMoving(storage)
	}
}

func BenchmarkSpawnWithMultipleComponents(b *testing.B) {
	storage := ecs.NewStorage()

	for b.Loop() {
		id := spawnMoving(storage)
		ecs.Insert(storage, id, Health{Current: 100, Max: 100})
		ecs.Insert(storage, id, Name{Value: "Entity"})
	}
}

func BenchmarkDespawn(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := range b.N {
		ids[i] = spawnMoving(storage)
	}

	b.ResetTimer()
	for i := range b.N {
		storage.Despawn(ids[i])
	}
}

func BenchmarkGet(b *testing.B) {
	storage := ecs.NewStorage()
	id := spawnMoving(storage)

	for b.Loop() {
		_, _ = ecs.Get[Position](storage, id)
	}
}

func BenchmarkInsert(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := range b.N {
		ids[i] = ecs.Spawn(storage, Position{X: 1.0, Y: 2.0})
	}

	b.ResetTimer()
	for i := range b.N {
		ecs.Insert(storage, ids[i], Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkRemove(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := range b.N {
		ids[i] = spawnMoving(storage)
	}

	b.ResetTimer()
	for i := range b.N {
		ecs.Remove[Velocity](storage, ids[i])
	}
}

func BenchmarkQueryMut(b *testing.B) {
	for _, size := range []struct {
		name string
		n    int
	}{{"1k", 1000}, {"100k", 100000}} {
		b.Run(size.name, func(b *testing.B) {
			storage := ecs.NewStorage()
			for range size.n {
				spawnMoving(storage)
			}

			for b.Loop() {
				for _, pos := range ecs.QueryMut[Position](storage) {
					pos.X += 1
				}
			}
		})
	}
}

func BenchmarkJoin(b *testing.B) {
	storage := ecs.NewStorage()
	for i := range 10000 {
		id := ecs.Spawn(storage, Position{X: float32(i)})
		if i%2 == 0 {
			ecs.Insert(storage, id, Velocity{DX: 1, DY: 1})
		}
	}

	for b.Loop() {
		for _, pair := range ecs.Join[Position, Velocity](storage) {
			pair.First.X += pair.Second.DX
			pair.First.Y += pair.Second.DY
		}
	}
}

func BenchmarkCompact(b *testing.B) {
	storage := ecs.NewStorage()

	for b.Loop() {
		b.StopTimer()
		ids := make([]ecs.EntityId, 0, 1000)
		for range 1000 {
			ids = append(ids, spawnMoving(storage))
		}
		for i := 0; i < len(ids); i += 2 {
			storage.Despawn(ids[i])
		}
		b.StartTimer()

		storage.Compact()
	}
}

func BenchmarkMixedOperations(b *testing.B) {
	storage := ecs.NewStorage()

	for b.Loop() {
		id := spawnMoving(storage)
		if pos, ok := ecs.Get[Position](storage, id); ok {
			pos.X += 1
		}
		ecs.Insert(storage, id, Health{Current: 100, Max: 100})
		ecs.Remove[Velocity](storage, id)
		storage.Despawn(id)
	}
}

func BenchmarkCommandsFlush(b *testing.B) {
	storage := ecs.NewStorage()
	commands := storage.Commands()

	for b.Loop() {
		for range 100 {
			ecs.DeferSpawn(commands, Position{X: 1})
		}
		storage.Flush()
	}
}
