package asset

import (
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// TextureChanged is sent after a cached texture was reloaded from disk.
type TextureChanged struct {
	Handle Handle
	Path   string
}

// Plugin installs a TextureManager for Dir. With Watch set it also starts a
// Watcher and reloads changed textures during Update.
type Plugin struct {
	Dir   string
	Watch bool
}

func (p Plugin) Build(app *engine.App) {
	logger := app.Logger()
	engine.Insert(app.Resources(), *NewTextureManager(p.Dir, logger))
	engine.AddEvent[TextureChanged](app, engine.LateUpdate, engine.Lowest)

	if !p.Watch {
		return
	}

	watcher, err := NewWatcher(p.Dir, logger)
	if err != nil {
		logger.Warn("texture hot reload disabled", "dir", p.Dir, "err", err)
		return
	}
	engine.Insert(app.Resources(), watcher)
	app.OnShutdown(func() {
		if err := watcher.Close(); err != nil {
			logger.Warn("closing texture watcher", "err", err)
		}
	})
	app.AddNamedSystem(engine.Update, engine.High, "asset.reloadChanged", reloadChanged)
}

func reloadChanged(res *engine.Resources, _ *ecs.Storage) {
	watcher, ok := engine.Get[*Watcher](res)
	if !ok || watcher == nil {
		return
	}
	textures, ok := engine.GetMut[TextureManager](res)
	if !ok {
		return
	}

	for _, path := range watcher.Poll() {
		h, cached, err := textures.Reload(path)
		if !cached {
			continue
		}
		if err != nil {
			textures.log.Warn("texture reload failed", "path", path, "err", err)
			continue
		}
		engine.Send(res, TextureChanged{Handle: h, Path: path})
	}
}
