// Package render2d collects sprites from the world into a render queue and
// hands the queue to a Renderer once per frame.
package render2d

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return v.Add(to.Sub(v).Scale(t))
}

// Transform2D positions an entity in world space. Rotation is in radians.
type Transform2D struct {
	Position Vec2
	Rotation float64
	Scale    Vec2
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform2D {
	return Transform2D{Scale: Vec2{1, 1}}
}

// At returns an identity transform moved to (x, y).
func At(x, y float64) Transform2D {
	t := Identity()
	t.Position = Vec2{x, y}
	return t
}

// Matrix returns translation * rotation * scale: scale is applied first.
func (t Transform2D) Matrix() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.Scale.X, t.Scale.Y)
	m.Rotate(t.Rotation)
	m.Translate(t.Position.X, t.Position.Y)
	return m
}

// Lerp interpolates between t and to. Rotation takes the shorter way round.
func (t Transform2D) Lerp(to Transform2D, alpha float64) Transform2D {
	delta := math.Remainder(to.Rotation-t.Rotation, 2*math.Pi)
	return Transform2D{
		Position: t.Position.Lerp(to.Position, alpha),
		Rotation: t.Rotation + delta*alpha,
		Scale:    t.Scale.Lerp(to.Scale, alpha),
	}
}

// PrevTransform2D holds the Transform2D as of the previous fixed step.
// Entities carrying it are drawn interpolated between the two.
type PrevTransform2D struct {
	Transform2D
}
