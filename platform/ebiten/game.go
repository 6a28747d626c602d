// Package ebiten runs an App inside an ebiten window. Ebiten calls Update at
// its tick rate; each Update pumps input into the input event channels and
// runs one App frame.
package ebiten

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/frameloop/config"
	debugebiten "github.com/plus3/frameloop/debugui/ebiten"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/input"
	"github.com/plus3/frameloop/platform"
	"github.com/plus3/frameloop/render2d"
)

// Game implements ebiten.Game around an App.
type Game struct {
	app      *engine.App
	renderer *Renderer
	imgui    *debugebiten.ImguiBackend
	window   config.WindowConfig

	keys    []ebiten.Key
	cursor  image.Point
	focused bool
}

type GameOption func(*Game)

// WithImgui draws the Dear ImGui overlay with backend. ImGui frames wrap every App frame.
func WithImgui(backend *debugebiten.ImguiBackend) GameOption {
	return func(g *Game) { g.imgui = backend }
}

// NewGame installs an ebiten Renderer as the app's RenderTarget.
func NewGame(app *engine.App, window config.WindowConfig, opts ...GameOption) *Game {
	g := &Game{
		app:      app,
		renderer: NewRenderer(app.Resources()),
		window:   window,
		cursor:   image.Pt(-1, -1),
		focused:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	engine.Insert(app.Resources(), render2d.RenderTarget{Renderer: g.renderer})
	return g
}

func (g *Game) Renderer() *Renderer {
	return g.renderer
}

func (g *Game) Update() error {
	g.pumpInput()

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}
	result := g.PollOnce()
	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	if result == platform.Exit || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

// PollOnce runs one App frame.
func (g *Game) PollOnce() platform.PollResult {
	g.app.Frame()
	return platform.ExitResult(g.app)
}

func (g *Game) pumpInput() {
	res := g.app.Resources()

	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		engine.Send(res, input.FocusChanged{Focused: focused})
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		engine.Send(res, input.KeyboardInput{Key: TranslateKey(k), State: input.Pressed})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		engine.Send(res, input.KeyboardInput{Key: TranslateKey(k), State: input.Released})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			engine.Send(res, input.MouseInput{Button: TranslateMouseButton(b), State: input.Pressed})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			engine.Send(res, input.MouseInput{Button: TranslateMouseButton(b), State: input.Released})
		}
	}

	x, y := ebiten.CursorPosition()
	if cursor := image.Pt(x, y); cursor != g.cursor {
		g.cursor = cursor
		engine.Send(res, input.CursorMoved{X: float32(x), Y: float32(y)})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the app exits or the window closes.
// The app is shut down before Run returns.
func (g *Game) Run() error {
	defer g.app.Shutdown()

	if g.imgui == nil {
		ebiten.SetWindowSize(g.window.Width, g.window.Height)
		ebiten.SetWindowTitle(g.window.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	g.app.Logger().Info("window opened", "title", g.window.Title, "width", g.window.Width, "height", g.window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
