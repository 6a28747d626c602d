package ebiten_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/input"
	platformebiten "github.com/plus3/frameloop/platform/ebiten"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	cases := map[ebiten.Key]input.Key{
		ebiten.KeyA:           input.KeyA,
		ebiten.KeyDigit7:      input.Key7,
		ebiten.KeyEscape:      input.KeyEscape,
		ebiten.KeyArrowLeft:   input.KeyArrowLeft,
		ebiten.KeyNumpadEnter: input.KeyNumpadEnter,
		ebiten.KeyQuote:       input.KeyApostrophe,
	}
	for from, want := range cases {
		assert.Equal(t, want, platformebiten.TranslateKey(from), from.String())
	}

	raw := platformebiten.TranslateKey(ebiten.KeyMeta)
	code, ok := raw.Raw()
	assert.True(t, ok)
	assert.Equal(t, uint32(ebiten.KeyMeta), code)
}

func TestTranslateMouseButton(t *testing.T) {
	assert.Equal(t, input.MouseLeft, platformebiten.TranslateMouseButton(ebiten.MouseButtonLeft))
	assert.Equal(t, input.MouseRight, platformebiten.TranslateMouseButton(ebiten.MouseButtonRight))
	assert.Equal(t, input.MouseMiddle, platformebiten.TranslateMouseButton(ebiten.MouseButtonMiddle))
	assert.Equal(t, input.OtherMouseButton(4), platformebiten.TranslateMouseButton(ebiten.MouseButton4))
}
