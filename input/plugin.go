package input

import (
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// Plugin installs the Input resource, the raw event channels and the system
// that folds them into the snapshot at the start of ProcessInput.
// Channels flush at the end of LateUpdate, so events sent by the backend
// between frames are visible in the following frame.
type Plugin struct{}

func (Plugin) Build(app *engine.App) {
	engine.Insert(app.Resources(), *New())

	engine.AddEvent[KeyboardInput](app, engine.LateUpdate, engine.Lowest)
	engine.AddEvent[MouseInput](app, engine.LateUpdate, engine.Lowest)
	engine.AddEvent[CursorMoved](app, engine.LateUpdate, engine.Lowest)
	engine.AddEvent[FocusChanged](app, engine.LateUpdate, engine.Lowest)

	app.AddNamedSystem(engine.ProcessInput, engine.Highest, "input.process", process)
}

// Snapshot returns the Input resource, if the plugin is installed.
func Snapshot(res *engine.Resources) (*Input, bool) {
	return engine.GetMut[Input](res)
}

func process(res *engine.Resources, _ *ecs.Storage) {
	in, ok := Snapshot(res)
	if !ok {
		return
	}
	in.ClearFrame()

	drain[KeyboardInput](res, in)
	drain[MouseInput](res, in)
	drain[CursorMoved](res, in)
	// focus last: a loss must release keys pressed earlier in the same frame
	drain[FocusChanged](res, in)
}

func drain[T any](res *engine.Resources, in *Input) {
	events, ok := engine.GetMut[engine.Events[T]](res)
	if !ok {
		return
	}
	for event := range events.Drain() {
		in.Apply(event)
	}
}
