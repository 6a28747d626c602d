package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(trace *[]string, label string) engine.System {
	return func(*engine.Resources, *ecs.Storage) {
		*trace = append(*trace, label)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("buckets run in priority order", func(t *testing.T) {
		scheduler := engine.NewScheduler(log.New(&bytes.Buffer{}))
		var trace []string

		scheduler.AddSystem(engine.Update, engine.Low, recorder(&trace, "C"))
		scheduler.AddSystem(engine.Update, engine.High, recorder(&trace, "A"))
		scheduler.AddSystem(engine.Update, engine.Normal, recorder(&trace, "B"))
		scheduler.AddSystem(engine.Update, engine.High, recorder(&trace, "A2"))

		scheduler.RunStage(engine.Update, engine.NewResources(), ecs.NewStorage())
		assert.Equal(t, []string{"A", "A2", "B", "C"}, trace)
	})

	t.Run("empty stage is a no-op", func(t *testing.T) {
		scheduler := engine.NewScheduler(log.New(&bytes.Buffer{}))
		assert.NotPanics(t, func() {
			scheduler.RunStage(engine.Render, engine.NewResources(), ecs.NewStorage())
		})
		assert.Zero(t, scheduler.Len(engine.Render))
	})

	t.Run("re-running a stage re-executes every system", func(t *testing.T) {
		scheduler := engine.NewScheduler(log.New(&bytes.Buffer{}))
		var trace []string
		scheduler.AddSystem(engine.FixedUpdate, engine.Normal, recorder(&trace, "a"))
		scheduler.AddSystem(engine.FixedUpdate, engine.Normal, recorder(&trace, "b"))

		res, world := engine.NewResources(), ecs.NewStorage()
		scheduler.RunStage(engine.FixedUpdate, res, world)
		scheduler.RunStage(engine.FixedUpdate, res, world)
		assert.Equal(t, []string{"a", "b", "a", "b"}, trace)
	})

	t.Run("out of range priorities are clamped with a warning", func(t *testing.T) {
		var out bytes.Buffer
		scheduler := engine.NewScheduler(log.New(&out))
		var trace []string

		scheduler.AddSystem(engine.Update, engine.MaxPriority+100, recorder(&trace, "far"))
		scheduler.AddSystem(engine.Update, engine.MaxPriority, recorder(&trace, "max"))
		scheduler.AddSystem(engine.Update, engine.Low, recorder(&trace, "low"))
		scheduler.AddSystem(engine.Update, -5, recorder(&trace, "negative"))

		scheduler.RunStage(engine.Update, engine.NewResources(), ecs.NewStorage())
		assert.Equal(t, []string{"negative", "low", "far", "max"}, trace)
		assert.Equal(t, 2, strings.Count(out.String(), "clamping"))
	})

	t.Run("invalid registrations are ignored", func(t *testing.T) {
		var out bytes.Buffer
		scheduler := engine.NewScheduler(log.New(&out))

		scheduler.AddSystem(engine.Stage(99), engine.Normal, func(*engine.Resources, *ecs.Storage) {})
		scheduler.AddSystem(engine.Update, engine.Normal, nil)

		assert.Zero(t, scheduler.Len(engine.Update))
		assert.Contains(t, out.String(), "unknown stage")
		assert.Contains(t, out.String(), "nil system")
	})

	t.Run("systems may insert new resources mid-stage", func(t *testing.T) {
		scheduler := engine.NewScheduler(log.New(&bytes.Buffer{}))
		res := engine.NewResources()

		scheduler.AddSystem(engine.Update, engine.High, func(res *engine.Resources, _ *ecs.Storage) {
			engine.Insert(res, score{Points: 1})
		})
		scheduler.AddSystem(engine.Update, engine.Low, func(res *engine.Resources, _ *ecs.Storage) {
			s, ok := engine.GetMut[score](res)
			require.True(t, ok)
			s.Points++
		})

		scheduler.RunStage(engine.Update, res, ecs.NewStorage())
		value, _ := engine.Get[score](res)
		assert.Equal(t, 2, value.Points)
	})

	t.Run("deferred commands flush after the stage", func(t *testing.T) {
		scheduler := engine.NewScheduler(log.New(&bytes.Buffer{}))
		world := ecs.NewStorage()
		var seenDuringStage int

		scheduler.AddSystem(engine.Update, engine.High, func(_ *engine.Resources, world *ecs.Storage) {
			ecs.DeferSpawn(world.Commands(), gravity{})
		})
		scheduler.AddSystem(engine.Update, engine.Low, func(_ *engine.Resources, world *ecs.Storage) {
			seenDuringStage = world.Len()
		})

		scheduler.RunStage(engine.Update, engine.NewResources(), world)
		assert.Zero(t, seenDuringStage)
		assert.Equal(t, 1, world.Len())
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := engine.NewScheduler(log.New(&bytes.Buffer{}))
		scheduler.AddNamedSystem(engine.Update, engine.Normal, "physics", func(*engine.Resources, *ecs.Storage) {})
		scheduler.AddSystem(engine.Render, engine.High, recorder(new([]string), "x"))

		stats := scheduler.Stats()
		require.Equal(t, 2, stats.SystemCount)
		assert.Zero(t, stats.TotalExecutions)
		assert.Zero(t, stats.Systems[0].MinDuration)

		res, world := engine.NewResources(), ecs.NewStorage()
		for range 3 {
			scheduler.RunStage(engine.Update, res, world)
		}
		scheduler.RunStage(engine.Render, res, world)

		stats = scheduler.Stats()
		assert.Equal(t, int64(4), stats.TotalExecutions)

		physics := stats.Systems[0]
		assert.Equal(t, "physics", physics.Name)
		assert.Equal(t, engine.Update, physics.Stage)
		assert.Equal(t, engine.Normal, physics.Priority)
		assert.Equal(t, int64(3), physics.ExecutionCount)
		assert.LessOrEqual(t, physics.MinDuration, physics.MaxDuration)
		assert.Equal(t, physics.TotalDuration/3, physics.AvgDuration)

		assert.Equal(t, engine.Render, stats.Systems[1].Stage)
		assert.Contains(t, stats.Systems[1].Name, "engine_test.")
	})
}

func TestStageString(t *testing.T) {
	var names []string
	for _, stage := range engine.Stages() {
		names = append(names, stage.String())
	}
	assert.Equal(t, []string{
		"Startup", "ProcessInput", "Update", "FixedUpdate", "PreRender", "Render", "LateUpdate",
	}, names)
	assert.Equal(t, "Unknown", engine.Stage(42).String())
	assert.False(t, engine.Stage(-1).Valid())
}
