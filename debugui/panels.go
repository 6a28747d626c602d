package debugui

import (
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// Panels groups the built-in debug windows.
type Panels struct {
	Browser     *EntityBrowser
	Inspector   *ComponentInspector
	Resources   *ResourceInspector
	Performance *PerformanceStats
	Systems     *SchedulerPanel
}

// NewPanels builds the built-in panels for app.
func NewPanels(app *engine.App) *Panels {
	browser := NewEntityBrowser(100)
	return &Panels{
		Browser:     browser,
		Inspector:   NewComponentInspector(browser),
		Resources:   NewResourceInspector(app.Resources()),
		Performance: NewPerformanceStats(120),
		Systems:     NewSchedulerPanel(app.Scheduler()),
	}
}

// SpawnPanels spawns one ImguiItem entity per built-in panel and returns the
// panel set.
func SpawnPanels(app *engine.App, world *ecs.Storage) *Panels {
	p := NewPanels(app)
	res := app.Resources()

	ecs.Spawn(world, ImguiItem{Render: func() {
		p.Performance.Record(res)
		p.Performance.Render(res, world)
	}})
	ecs.Spawn(world, ImguiItem{Render: func() { p.Browser.Render(world) }})
	ecs.Spawn(world, ImguiItem{Render: func() { p.Inspector.Render(world) }})
	ecs.Spawn(world, ImguiItem{Render: p.Resources.Render})
	ecs.Spawn(world, ImguiItem{Render: p.Systems.Render})
	return p
}
