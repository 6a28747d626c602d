package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/frameloop/config"
	"github.com/plus3/frameloop/debugui"
	debugui_ebiten "github.com/plus3/frameloop/debugui/ebiten"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
	platform_ebiten "github.com/plus3/frameloop/platform/ebiten"
)

func Example() {
	cfg := config.Default()

	// Create the ImGui backend; it also opens the ebiten window
	backend := debugui_ebiten.New(cfg.Window)

	app := engine.New(engine.WithConfig(cfg))
	app.AddPlugin(debugui.Plugin{})

	// Any entity holding an ImguiItem is drawn every frame
	ecs.Spawn(app.World(), debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the frame loop!")
			imgui.End()
		},
	})

	game := platform_ebiten.NewGame(app, cfg.Window, platform_ebiten.WithImgui(backend))
	if err := game.Run(); err != nil {
		panic(err)
	}
}
