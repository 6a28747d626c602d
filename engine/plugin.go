package engine

// Plugin bundles the resources, events and systems of one feature.
// Build runs once, synchronously, before Startup.
type Plugin interface {
	Build(app *App)
}

// PluginFunc adapts a plain function to Plugin.
type PluginFunc func(app *App)

// Build calls f(app).
func (f PluginFunc) Build(app *App) {
	f(app)
}
