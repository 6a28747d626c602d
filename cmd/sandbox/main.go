// Command sandbox opens a window with a field of bouncing sprites, a
// keyboard-driven player and, when enabled, the debug overlay.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"os"

	"github.com/plus3/frameloop/asset"
	"github.com/plus3/frameloop/config"
	"github.com/plus3/frameloop/debugui"
	debugui_ebiten "github.com/plus3/frameloop/debugui/ebiten"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/input"
	"github.com/plus3/frameloop/logging"
	platform_ebiten "github.com/plus3/frameloop/platform/ebiten"
	platform_raylib "github.com/plus3/frameloop/platform/raylib"
	"github.com/plus3/frameloop/render2d"
)

const (
	bouncerCount = 200
	playerSpeed  = 240.0
)

// Bouncer drifts around the window and reflects off its edges.
type Bouncer struct {
	Velocity render2d.Vec2
}

// Player is steered with the arrow keys or WASD.
type Player struct{}

// Textures holds the handles the sandbox draws with.
type Textures struct {
	Player  asset.Handle
	Bouncer asset.Handle
}

func main() {
	configPath := flag.String("config", "", "Optional TOML or YAML config file.")
	backend := flag.String("backend", "ebiten", "Window backend: ebiten or raylib.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger := logging.New(cfg.Logging, os.Stderr)

	app := engine.New(engine.WithConfig(cfg), engine.WithLogger(logger))
	app.AddPlugins(
		input.Plugin{},
		asset.Plugin{Dir: cfg.Paths.TextureDir, Watch: cfg.Debug.WatchAssets},
		render2d.Plugin{},
		engine.PluginFunc(sandbox),
	)
	engine.Insert(app.Resources(), render2d.NewCamera2D(float64(cfg.Window.Width), float64(cfg.Window.Height)))

	var err error
	switch *backend {
	case "raylib":
		if cfg.Debug.UI {
			logger.Warn("debug overlay needs the ebiten backend")
		}
		err = platform_raylib.New(app, cfg.Window).Run()
	case "ebiten":
		var opts []platform_ebiten.GameOption
		if cfg.Debug.UI {
			app.AddPlugin(debugui.Plugin{Panels: true})
			opts = append(opts, platform_ebiten.WithImgui(debugui_ebiten.New(cfg.Window)))
		}
		err = platform_ebiten.NewGame(app, cfg.Window, opts...).Run()
	default:
		logger.Fatal("unknown backend", "backend", *backend)
	}
	if err != nil {
		logger.Fatal("sandbox stopped", "err", err)
	}
}

func sandbox(app *engine.App) {
	logger := app.Logger()

	app.AddNamedSystem(engine.Startup, engine.Normal, "sandbox.setup", setup)
	app.AddNamedSystem(engine.Update, engine.Normal, "sandbox.controls", controls)
	app.AddNamedSystem(engine.Update, engine.Low, "sandbox.textureChanges", func(res *engine.Resources, _ *ecs.Storage) {
		events, ok := engine.GetMut[engine.Events[asset.TextureChanged]](res)
		if !ok {
			return
		}
		for changed := range events.Iter() {
			logger.Info("texture changed", "path", changed.Path, "handle", changed.Handle)
		}
	})
	app.AddNamedSystem(engine.FixedUpdate, engine.Normal, "sandbox.movePlayer", movePlayer)
	app.AddNamedSystem(engine.FixedUpdate, engine.Normal, "sandbox.bounce", bounce)
	app.AddNamedSystem(engine.PreRender, engine.High, "sandbox.followPlayer", followPlayer)
}

func setup(res *engine.Resources, world *ecs.Storage) {
	textures, ok := engine.GetMut[asset.TextureManager](res)
	if !ok {
		return
	}
	handles := Textures{
		Player:  loadOrGenerate(textures, "player.png", color.RGBA{R: 0xff, G: 0xb3, B: 0xba, A: 0xff}),
		Bouncer: loadOrGenerate(textures, "bouncer.png", color.RGBA{R: 0xb3, G: 0xe5, B: 0xfc, A: 0xff}),
	}
	engine.Insert(res, handles)

	camera, ok := engine.GetMut[render2d.Camera2D](res)
	if !ok {
		return
	}
	camera.Transform.Position = camera.Viewport.Scale(0.5)
	for range bouncerCount {
		spawnBouncer(world, handles.Bouncer, render2d.Vec2{
			X: rand.Float64() * camera.Viewport.X,
			Y: rand.Float64() * camera.Viewport.Y,
		})
	}

	player := ecs.Spawn(world, Player{})
	ecs.Insert(world, player, render2d.At(camera.Viewport.X/2, camera.Viewport.Y/2))
	ecs.Insert(world, player, render2d.PrevTransform2D{})
	sprite := render2d.NewSprite(handles.Player)
	sprite.Layer = 1
	ecs.Insert(world, player, sprite)
}

// loadOrGenerate loads name from the texture directory, falling back to a
// generated 16x16 square of fill.
func loadOrGenerate(textures *asset.TextureManager, name string, fill color.RGBA) asset.Handle {
	if h, err := textures.Load(name); err == nil {
		return h
	}
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			img.SetRGBA(x, y, fill)
		}
	}
	return textures.Add(img)
}

func spawnBouncer(world *ecs.Storage, texture asset.Handle, at render2d.Vec2) {
	id := ecs.Spawn(world, render2d.At(at.X, at.Y))
	ecs.Insert(world, id, render2d.PrevTransform2D{Transform2D: render2d.At(at.X, at.Y)})
	ecs.Insert(world, id, render2d.NewSprite(texture))
	ecs.Insert(world, id, Bouncer{Velocity: render2d.Vec2{
		X: rand.Float64()*160 - 80,
		Y: rand.Float64()*160 - 80,
	}})
}

func controls(res *engine.Resources, world *ecs.Storage) {
	in, ok := input.Snapshot(res)
	if !ok {
		return
	}
	if in.KeyPressed(input.KeyEscape) {
		engine.Insert(res, engine.AppExit{Reason: "escape pressed"})
		return
	}

	if in.MousePressed(input.MouseLeft) {
		camera, _ := engine.Get[render2d.Camera2D](res)
		textures, _ := engine.Get[Textures](res)
		x, y := in.MousePosition()
		at := camera.ScreenToWorld(render2d.Vec2{X: float64(x), Y: float64(y)})
		world.Commands().Defer(func() {
			spawnBouncer(world, textures.Bouncer, at)
		})
	}
}

func movePlayer(res *engine.Resources, world *ecs.Storage) {
	in, ok := input.Snapshot(res)
	if !ok {
		return
	}
	fixed, _ := engine.Get[engine.TimeFixed](res)
	step := fixed.Interval().Seconds() * playerSpeed

	var dir render2d.Vec2
	if in.KeyDown(input.KeyArrowLeft) || in.KeyDown(input.KeyA) {
		dir.X--
	}
	if in.KeyDown(input.KeyArrowRight) || in.KeyDown(input.KeyD) {
		dir.X++
	}
	if in.KeyDown(input.KeyArrowUp) || in.KeyDown(input.KeyW) {
		dir.Y--
	}
	if in.KeyDown(input.KeyArrowDown) || in.KeyDown(input.KeyS) {
		dir.Y++
	}

	for _, pair := range ecs.Join[Player, render2d.Transform2D](world) {
		pair.Second.Position = pair.Second.Position.Add(dir.Scale(step))
	}
}

func bounce(res *engine.Resources, world *ecs.Storage) {
	fixed, _ := engine.Get[engine.TimeFixed](res)
	step := fixed.Interval().Seconds()
	camera, _ := engine.Get[render2d.Camera2D](res)

	for _, pair := range ecs.Join[Bouncer, render2d.Transform2D](world) {
		b, t := pair.First, pair.Second
		t.Position = t.Position.Add(b.Velocity.Scale(step))
		t.Rotation += step

		if t.Position.X < 0 || t.Position.X > camera.Viewport.X {
			b.Velocity.X = -b.Velocity.X
		}
		if t.Position.Y < 0 || t.Position.Y > camera.Viewport.Y {
			b.Velocity.Y = -b.Velocity.Y
		}
	}
}

// followPlayer eases the camera towards the player's interpolated position.
func followPlayer(res *engine.Resources, world *ecs.Storage) {
	camera, ok := engine.GetMut[render2d.Camera2D](res)
	if !ok {
		return
	}
	for _, pair := range ecs.Join[Player, render2d.Transform2D](world) {
		camera.Transform.Position = camera.Transform.Position.Lerp(pair.Second.Position, 0.1)
	}
}
