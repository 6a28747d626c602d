package render2d

import (
	"image/color"

	"github.com/plus3/frameloop/asset"
)

// Sprite draws a texture at the entity's Transform2D. Pivot is the anchor in
// texture-relative units, (0.5, 0.5) being the center. Lower layers draw first.
type Sprite struct {
	Texture asset.Handle
	Tint    color.RGBA
	Pivot   Vec2
	Visible bool
	Layer   int
}

// NewSprite returns a visible, untinted sprite anchored at its center.
func NewSprite(texture asset.Handle) Sprite {
	return Sprite{
		Texture: texture,
		Tint:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Pivot:   Vec2{0.5, 0.5},
		Visible: true,
	}
}
