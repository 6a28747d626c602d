// Package debugui provides a Dear ImGui debug overlay for the frame loop.
// Panels are entities holding an ImguiItem; the overlay system runs their
// render functions once per frame, after the Render stage.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Plugin installs the overlay system. With Panels set it also spawns the
// built-in performance, scheduler, entity and resource panels at Startup.
type Plugin struct {
	Panels bool
}

func (p Plugin) Build(app *engine.App) {
	engine.Insert(app.Resources(), ImguiInputState{})
	app.AddNamedSystem(engine.Render, engine.Lowest, "debugui.queueItems", queueItems)

	if p.Panels {
		app.AddNamedSystem(engine.Startup, engine.Normal, "debugui.spawnPanels", func(_ *engine.Resources, world *ecs.Storage) {
			SpawnPanels(app, world)
		})
	}
}

// queueItems updates the input state and defers every ImguiItem render
// function; they run when the Render stage flushes its commands.
func queueItems(res *engine.Resources, world *ecs.Storage) {
	if state, ok := engine.GetMut[ImguiInputState](res); ok {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range ecs.QueryRef[ImguiItem](world) {
		if item.Render != nil {
			world.Commands().Defer(item.Render)
		}
	}
}
