package ecs_test

import (
	"testing"

	"github.com/plus3/frameloop/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage()
	a := ecs.Spawn(storage, Position{X: 1})
	b := ecs.Spawn(storage, Position{X: 2})
	c := ecs.Spawn(storage, Position{X: 3})
	ecs.Insert(storage, a, Velocity{DX: 10})
	ecs.Insert(storage, c, Velocity{DX: 30})
	ecs.Spawn(storage, Velocity{DX: 99})

	t.Run("query ref yields copies", func(t *testing.T) {
		var xs []float32
		for _, pos := range ecs.QueryRef[Position](storage) {
			xs = append(xs, pos.X)
			pos.X = -1
		}
		assert.Equal(t, []float32{1, 2, 3}, xs)

		pos, _ := ecs.Get[Position](storage, a)
		assert.Equal(t, float32(1), pos.X)
	})

	t.Run("query mut writes through", func(t *testing.T) {
		for _, pos := range ecs.QueryMut[Position](storage) {
			pos.Y = pos.X * 2
		}
		pos, _ := ecs.Get[Position](storage, b)
		assert.Equal(t, float32(4), pos.Y)
	})

	t.Run("join matches entities holding both", func(t *testing.T) {
		seen := map[ecs.EntityId]float32{}
		for id, pair := range ecs.Join[Position, Velocity](storage) {
			seen[id] = pair.First.X + pair.Second.DX
		}
		assert.Equal(t, map[ecs.EntityId]float32{a: 11, c: 33}, seen)
	})

	t.Run("unknown component yields nothing", func(t *testing.T) {
		count := 0
		for range ecs.QueryRef[Health](storage) {
			count++
		}
		for range ecs.Join[Position, Health](storage) {
			count++
		}
		assert.Zero(t, count)
		assert.Zero(t, ecs.Count[Health](storage))
	})

	t.Run("break stops iteration and the query can be re-run", func(t *testing.T) {
		count := 0
		for range ecs.QueryRef[Position](storage) {
			count++
			break
		}
		assert.Equal(t, 1, count)
		assert.Equal(t, 3, ecs.Count[Position](storage))
	})
}
