package engine_test

import (
	"slices"
	"testing"

	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	t.Run("one update of lag", func(t *testing.T) {
		var events engine.Events[int]
		events.Send(1)
		events.Send(2)

		assert.Empty(t, slices.Collect(events.Drain()))
		assert.True(t, events.IsEmpty())

		events.Update()
		assert.Equal(t, 2, events.Len())
		assert.Equal(t, []int{1, 2}, slices.Collect(events.Drain()))
		assert.Empty(t, slices.Collect(events.Drain()))
	})

	t.Run("undrained events expire after two updates", func(t *testing.T) {
		var events engine.Events[string]
		events.Extend("a", "b")
		events.Update()
		events.Send("c")
		assert.Equal(t, []string{"a", "b"}, slices.Collect(events.Iter()))

		events.Update()
		assert.Equal(t, []string{"c"}, slices.Collect(events.Iter()))

		events.Update()
		assert.True(t, events.IsEmpty())
	})

	t.Run("iter does not consume", func(t *testing.T) {
		var events engine.Events[int]
		events.Send(7)
		events.Update()

		assert.Equal(t, []int{7}, slices.Collect(events.Iter()))
		assert.Equal(t, []int{7}, slices.Collect(events.Iter()))
		assert.Equal(t, 1, events.Len())
	})

	t.Run("breaking out of drain discards the rest", func(t *testing.T) {
		var events engine.Events[int]
		events.Extend(1, 2, 3)
		events.Update()

		for range events.Drain() {
			break
		}
		assert.True(t, events.IsEmpty())
	})

	t.Run("sending while draining targets the write buffer", func(t *testing.T) {
		var events engine.Events[int]
		events.Extend(1, 2)
		events.Update()

		for event := range events.Drain() {
			events.Send(event * 10)
		}
		assert.True(t, events.IsEmpty())

		events.Update()
		assert.Equal(t, []int{10, 20}, slices.Collect(events.Drain()))
	})

	t.Run("clear drops pending and readable", func(t *testing.T) {
		var events engine.Events[int]
		events.Send(1)
		events.Update()
		events.Send(2)

		events.Clear()
		assert.True(t, events.IsEmpty())
		events.Update()
		assert.True(t, events.IsEmpty())
	})
}

type collision struct {
	A, B int
}

func TestAddEvent(t *testing.T) {
	app := newTestApp(t)
	engine.AddEvent[collision](app, engine.LateUpdate, engine.Lowest)
	engine.AddEvent[collision](app, engine.LateUpdate, engine.Lowest)
	assert.Equal(t, 1, app.Scheduler().Len(engine.LateUpdate), "second registration must not add a flush")

	var received []collision
	app.AddSystem(engine.Update, engine.Normal, func(res *engine.Resources, _ *ecs.Storage) {
		events, ok := engine.GetMut[engine.Events[collision]](res)
		require.True(t, ok)
		received = append(received, slices.Collect(events.Drain())...)
	})

	require.True(t, engine.Send(app.Resources(), collision{A: 1, B: 2}))
	assert.False(t, engine.Send(app.Resources(), "unregistered"))

	app.UpdateLogic()
	assert.Empty(t, received)

	app.LateUpdate()
	app.UpdateLogic()
	assert.Equal(t, []collision{{A: 1, B: 2}}, received)
}
