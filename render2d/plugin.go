package render2d

import (
	"cmp"
	"math"
	"slices"

	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// Plugin wires the 2D render pipeline:
//
//	FixedUpdate/Highest  snapshot Transform2D into PrevTransform2D
//	LateUpdate/Low       collect visible sprites into the RenderQueue
//	PreRender/Normal     flush the RenderQueue
//	Render/Normal        drain the RenderQueue into the RenderTarget
//
// Sprites collected at the end of one frame are drawn in the next.
type Plugin struct {
	// Renderer, if set, is installed as the RenderTarget.
	Renderer Renderer
}

func (p Plugin) Build(app *engine.App) {
	if p.Renderer != nil {
		engine.Insert(app.Resources(), RenderTarget{Renderer: p.Renderer})
	}

	engine.AddEvent[RenderCommand](app, engine.PreRender, engine.Normal)
	app.AddNamedSystem(engine.FixedUpdate, engine.Highest, "render2d.snapshotTransforms", snapshotTransforms)
	app.AddNamedSystem(engine.LateUpdate, engine.Low, "render2d.collectSprites", collectSprites)
	app.AddNamedSystem(engine.Render, engine.Normal, "render2d.render", render)
}

func snapshotTransforms(_ *engine.Resources, world *ecs.Storage) {
	for _, pair := range ecs.Join[PrevTransform2D, Transform2D](world) {
		pair.First.Transform2D = *pair.Second
	}
}

func collectSprites(res *engine.Resources, world *ecs.Storage) {
	queue, ok := engine.GetMut[RenderQueue](res)
	if !ok {
		return
	}
	interp, _ := engine.Get[engine.Interpolation](res)

	if camera, ok := engine.Get[Camera2D](res); ok {
		queue.Send(SetCamera{Camera: camera})
	}

	for id, pair := range ecs.Join[Transform2D, Sprite](world) {
		if !pair.Second.Visible {
			continue
		}
		transform := *pair.First
		if prev, ok := ecs.Get[PrevTransform2D](world, id); ok {
			transform = prev.Lerp(transform, interp.Alpha)
		}
		queue.Send(DrawSprite{
			Entity:    id,
			Sprite:    *pair.Second,
			Transform: transform,
		})
	}
}

func render(res *engine.Resources, _ *ecs.Storage) {
	queue, ok := engine.GetMut[RenderQueue](res)
	if !ok {
		return
	}
	target, ok := engine.Get[RenderTarget](res)
	if !ok || target.Renderer == nil {
		for range queue.Drain() {
		}
		return
	}

	commands := slices.Collect(queue.Drain())
	// SetCamera sorts before sprites; sprites sort by layer, stable within a layer.
	slices.SortStableFunc(commands, func(a, b RenderCommand) int {
		return cmp.Compare(commandLayer(a), commandLayer(b))
	})

	target.Renderer.BeginFrame()
	for _, cmd := range commands {
		target.Renderer.Submit(cmd)
	}
	target.Renderer.EndFrame()
}

func commandLayer(cmd RenderCommand) int {
	switch c := cmd.(type) {
	case DrawSprite:
		return c.Sprite.Layer
	default:
		return minLayer
	}
}

const minLayer = math.MinInt
