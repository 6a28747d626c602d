package render2d

import (
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// RenderCommand is one unit of draw work handed to a Renderer.
type RenderCommand interface {
	renderCommand()
}

// DrawSprite draws sprite with the given world transform.
type DrawSprite struct {
	Entity    ecs.EntityId
	Sprite    Sprite
	Transform Transform2D
}

func (DrawSprite) renderCommand() {}

// SetCamera replaces the view used for the commands that follow it.
type SetCamera struct {
	Camera Camera2D
}

func (SetCamera) renderCommand() {}

// RenderQueue is the event channel the collector fills and the render system drains.
type RenderQueue = engine.Events[RenderCommand]
