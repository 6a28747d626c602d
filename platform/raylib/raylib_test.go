package raylib_test

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/input"
	platformraylib "github.com/plus3/frameloop/platform/raylib"
	"github.com/plus3/frameloop/render2d"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	cases := map[int32]input.Key{
		rl.KeyA:         input.KeyA,
		rl.KeySeven:     input.Key7,
		rl.KeyF12:       input.KeyF12,
		rl.KeyEscape:    input.KeyEscape,
		rl.KeyLeft:      input.KeyArrowLeft,
		rl.KeyLeftShift: input.KeyShiftLeft,
	}
	for from, want := range cases {
		assert.Equal(t, want, platformraylib.TranslateKey(from), want.String())
	}

	raw := platformraylib.TranslateKey(rl.KeyKpEnter)
	code, ok := raw.Raw()
	assert.True(t, ok)
	assert.Equal(t, uint32(rl.KeyKpEnter), code)
}

func TestTranslateMouseButton(t *testing.T) {
	assert.Equal(t, input.MouseLeft, platformraylib.TranslateMouseButton(rl.MouseButtonLeft))
	assert.Equal(t, input.MouseRight, platformraylib.TranslateMouseButton(rl.MouseButtonRight))
	assert.Equal(t, input.MouseMiddle, platformraylib.TranslateMouseButton(rl.MouseButtonMiddle))
	assert.Equal(t, input.OtherMouseButton(uint16(rl.MouseButtonSide)), platformraylib.TranslateMouseButton(rl.MouseButtonSide))
}

func TestDecompose(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		p := platformraylib.Decompose(ebiten.GeoM{})
		assert.Equal(t, platformraylib.Placement{ScaleX: 1, ScaleY: 1}, p)
	})

	t.Run("transform", func(t *testing.T) {
		tr := render2d.At(10, 20)
		tr.Rotation = math.Pi / 2
		tr.Scale = render2d.Vec2{X: 2, Y: 3}

		p := platformraylib.Decompose(tr.Matrix())
		assert.InDelta(t, 10, p.X, 1e-9)
		assert.InDelta(t, 20, p.Y, 1e-9)
		assert.InDelta(t, 90, p.Rotation, 1e-9)
		assert.InDelta(t, 2, p.ScaleX, 1e-9)
		assert.InDelta(t, 3, p.ScaleY, 1e-9)
	})

	t.Run("mirrored", func(t *testing.T) {
		var m ebiten.GeoM
		m.Scale(1, -1)
		p := platformraylib.Decompose(m)
		assert.InDelta(t, 1, p.ScaleX, 1e-9)
		assert.InDelta(t, -1, p.ScaleY, 1e-9)
	})
}
