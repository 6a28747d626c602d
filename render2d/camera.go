package render2d

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera2D maps world space to a viewport. The camera position lands on the
// viewport center; both spaces have y pointing down.
type Camera2D struct {
	Transform Transform2D
	Zoom      float64
	Viewport  Vec2
}

func NewCamera2D(width, height float64) Camera2D {
	return Camera2D{
		Transform: Identity(),
		Zoom:      1,
		Viewport:  Vec2{width, height},
	}
}

func (c Camera2D) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// ViewMatrix moves world space into camera space.
func (c Camera2D) ViewMatrix() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.Transform.Position.X, -c.Transform.Position.Y)
	m.Rotate(-c.Transform.Rotation)
	m.Scale(1/c.zoom(), 1/c.zoom())
	return m
}

// ProjectionMatrix maps camera space to clip space [-1, 1].
func (c Camera2D) ProjectionMatrix() ebiten.GeoM {
	var m ebiten.GeoM
	if c.Viewport.X == 0 || c.Viewport.Y == 0 {
		return m
	}
	m.Scale(2/c.Viewport.X, -2/c.Viewport.Y)
	return m
}

// ScreenMatrix maps world space to viewport pixels.
func (c Camera2D) ScreenMatrix() ebiten.GeoM {
	m := c.ViewMatrix()
	m.Concat(c.ProjectionMatrix())
	// clip -> pixels
	m.Translate(1, -1)
	m.Scale(c.Viewport.X/2, -c.Viewport.Y/2)
	return m
}

func (c Camera2D) WorldToScreen(world Vec2) Vec2 {
	m := c.ScreenMatrix()
	x, y := m.Apply(world.X, world.Y)
	return Vec2{x, y}
}

// ScreenToWorld inverts WorldToScreen. A degenerate camera returns world unchanged.
func (c Camera2D) ScreenToWorld(screen Vec2) Vec2 {
	m := c.ScreenMatrix()
	if !m.IsInvertible() {
		return screen
	}
	m.Invert()
	x, y := m.Apply(screen.X, screen.Y)
	return Vec2{x, y}
}
