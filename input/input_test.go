package input_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSnapshot(t *testing.T) {
	t.Run("press is reported once while held", func(t *testing.T) {
		in := input.New()
		in.PressKey(input.KeyW)
		assert.True(t, in.KeyPressed(input.KeyW))
		assert.True(t, in.KeyDown(input.KeyW))

		in.ClearFrame()
		in.PressKey(input.KeyW)
		assert.False(t, in.KeyPressed(input.KeyW), "repeat while held is not a new press")
		assert.True(t, in.KeyDown(input.KeyW))

		in.ReleaseKey(input.KeyW)
		assert.False(t, in.KeyDown(input.KeyW))
		assert.False(t, in.AnyKeyDown())
	})

	t.Run("mouse buttons", func(t *testing.T) {
		in := input.New()
		in.Apply(input.MouseInput{Button: input.MouseLeft, State: input.Pressed})
		in.Apply(input.CursorMoved{X: 12, Y: 34})

		assert.True(t, in.MousePressed(input.MouseLeft))
		assert.False(t, in.MouseDown(input.MouseRight))
		x, y := in.MousePosition()
		assert.Equal(t, float32(12), x)
		assert.Equal(t, float32(34), y)

		in.Apply(input.MouseInput{Button: input.MouseLeft, State: input.Released})
		assert.False(t, in.MouseDown(input.MouseLeft))
		assert.True(t, in.MousePressed(input.MouseLeft), "press stays visible until the frame is cleared")
	})

	t.Run("losing focus releases everything", func(t *testing.T) {
		in := input.New()
		in.PressKey(input.KeySpace)
		in.PressMouse(input.MouseMiddle)

		in.Apply(input.FocusChanged{Focused: false})
		assert.False(t, in.Focused())
		assert.False(t, in.KeyDown(input.KeySpace))
		assert.False(t, in.KeyPressed(input.KeySpace))
		assert.False(t, in.MouseDown(input.MouseMiddle))

		in.Apply(input.FocusChanged{Focused: true})
		assert.True(t, in.Focused())
	})
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "A", input.KeyA.String())
	assert.Equal(t, "ArrowLeft", input.KeyArrowLeft.String())
	assert.Equal(t, "Raw(300)", input.RawKey(300).String())
	assert.Equal(t, "Other(2)", input.OtherMouseButton(2).String())
	assert.Equal(t, "Right", input.MouseRight.String())

	code, ok := input.RawKey(7).Raw()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), code)
	_, ok = input.KeyA.Raw()
	assert.False(t, ok)
}

func TestPlugin(t *testing.T) {
	app := engine.New(engine.WithLogger(log.New(&bytes.Buffer{})))
	app.AddPlugin(input.Plugin{})

	var heldDuringUpdate []bool
	app.AddSystem(engine.Update, engine.Normal, func(res *engine.Resources, _ *ecs.Storage) {
		in, ok := input.Snapshot(res)
		require.True(t, ok)
		heldDuringUpdate = append(heldDuringUpdate, in.KeyPressed(input.KeyEscape))
	})

	res := app.Resources()
	require.True(t, engine.Send(res, input.KeyboardInput{Key: input.KeyEscape, State: input.Pressed}))
	require.True(t, engine.Send(res, input.CursorMoved{X: 1, Y: 2}))

	app.Frame() // events become readable at the end of this frame
	app.Frame() // snapshot sees the press
	app.Frame() // press cleared, key still held

	assert.Equal(t, []bool{false, true, false}, heldDuringUpdate)

	in, _ := input.Snapshot(res)
	assert.True(t, in.KeyDown(input.KeyEscape))
	x, y := in.MousePosition()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
}

func TestPluginFocusLossReleasesKeys(t *testing.T) {
	app := engine.New(engine.WithLogger(log.New(&bytes.Buffer{})))
	app.AddPlugin(input.Plugin{})
	res := app.Resources()

	require.True(t, engine.Send(res, input.KeyboardInput{Key: input.KeyW, State: input.Pressed}))
	require.True(t, engine.Send(res, input.FocusChanged{Focused: false}))
	app.LateUpdate()
	app.ProcessInput()

	in, ok := input.Snapshot(res)
	require.True(t, ok)
	assert.False(t, in.Focused())
	assert.False(t, in.KeyDown(input.KeyW))

	require.True(t, engine.Send(res, input.FocusChanged{Focused: true}))
	require.True(t, engine.Send(res, input.KeyboardInput{Key: input.KeyW, State: input.Pressed}))
	app.LateUpdate()
	app.ProcessInput()

	assert.True(t, in.Focused())
	assert.True(t, in.KeyPressed(input.KeyW), "the key is not stuck after regaining focus")
	assert.True(t, in.KeyDown(input.KeyW))
}
