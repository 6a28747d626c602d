// Package raylib runs an App inside a raylib window. Each loop iteration
// pumps raylib input into the input event channels, runs one App frame and
// draws the frame the renderer last completed.
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/frameloop/config"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/input"
	"github.com/plus3/frameloop/platform"
	"github.com/plus3/frameloop/render2d"
)

// Runner owns the raylib window.
type Runner struct {
	app      *engine.App
	renderer *Renderer
	window   config.WindowConfig

	// TargetFPS caps the loop rate; zero leaves it uncapped.
	TargetFPS int

	held    map[int32]struct{}
	cursor  rl.Vector2
	focused bool
}

// New installs a raylib Renderer as the app's RenderTarget.
func New(app *engine.App, window config.WindowConfig) *Runner {
	r := &Runner{
		app:       app,
		renderer:  NewRenderer(app.Resources()),
		window:    window,
		TargetFPS: 60,
		held:      make(map[int32]struct{}),
		cursor:    rl.NewVector2(-1, -1),
		focused:   true,
	}
	engine.Insert(app.Resources(), render2d.RenderTarget{Renderer: r.renderer})
	return r
}

func (r *Runner) Renderer() *Renderer {
	return r.renderer
}

// PollOnce pumps input, runs one App frame and draws.
func (r *Runner) PollOnce() platform.PollResult {
	r.pumpInput()
	r.app.Frame()
	r.renderer.Draw()
	return platform.ExitResult(r.app)
}

// Run opens the window and loops until the app exits or the window closes.
// The app is shut down and the window closed before Run returns.
func (r *Runner) Run() error {
	rl.InitWindow(int32(r.window.Width), int32(r.window.Height), r.window.Title)
	defer rl.CloseWindow()
	defer r.renderer.Close()
	defer r.app.Shutdown()

	if r.TargetFPS > 0 {
		rl.SetTargetFPS(int32(r.TargetFPS))
	}
	rl.SetExitKey(0)

	log := r.app.Logger()
	log.Info("raylib window opened", "title", r.window.Title, "width", r.window.Width, "height", r.window.Height)

	for !rl.WindowShouldClose() {
		if r.PollOnce() == platform.Exit {
			exit, _ := r.app.ExitRequested()
			log.Info("app requested exit", "reason", exit.Reason)
			break
		}
	}
	return nil
}

func (r *Runner) pumpInput() {
	res := r.app.Resources()

	if focused := rl.IsWindowFocused(); focused != r.focused {
		r.focused = focused
		engine.Send(res, input.FocusChanged{Focused: focused})
	}

	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if _, down := r.held[k]; down {
			continue
		}
		r.held[k] = struct{}{}
		engine.Send(res, input.KeyboardInput{Key: TranslateKey(k), State: input.Pressed})
	}
	for k := range r.held {
		if rl.IsKeyReleased(k) || !rl.IsKeyDown(k) {
			delete(r.held, k)
			engine.Send(res, input.KeyboardInput{Key: TranslateKey(k), State: input.Released})
		}
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			engine.Send(res, input.MouseInput{Button: TranslateMouseButton(b), State: input.Pressed})
		}
		if rl.IsMouseButtonReleased(b) {
			engine.Send(res, input.MouseInput{Button: TranslateMouseButton(b), State: input.Released})
		}
	}

	if cursor := rl.GetMousePosition(); cursor != r.cursor {
		r.cursor = cursor
		engine.Send(res, input.CursorMoved{X: cursor.X, Y: cursor.Y})
	}
}
