package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA,
	ebiten.KeyB: input.KeyB,
	ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD,
	ebiten.KeyE: input.KeyE,
	ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG,
	ebiten.KeyH: input.KeyH,
	ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ,
	ebiten.KeyK: input.KeyK,
	ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM,
	ebiten.KeyN: input.KeyN,
	ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP,
	ebiten.KeyQ: input.KeyQ,
	ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS,
	ebiten.KeyT: input.KeyT,
	ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV,
	ebiten.KeyW: input.KeyW,
	ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY,
	ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit0: input.Key0,
	ebiten.KeyDigit1: input.Key1,
	ebiten.KeyDigit2: input.Key2,
	ebiten.KeyDigit3: input.Key3,
	ebiten.KeyDigit4: input.Key4,
	ebiten.KeyDigit5: input.Key5,
	ebiten.KeyDigit6: input.Key6,
	ebiten.KeyDigit7: input.Key7,
	ebiten.KeyDigit8: input.Key8,
	ebiten.KeyDigit9: input.Key9,

	ebiten.KeyF1:  input.KeyF1,
	ebiten.KeyF2:  input.KeyF2,
	ebiten.KeyF3:  input.KeyF3,
	ebiten.KeyF4:  input.KeyF4,
	ebiten.KeyF5:  input.KeyF5,
	ebiten.KeyF6:  input.KeyF6,
	ebiten.KeyF7:  input.KeyF7,
	ebiten.KeyF8:  input.KeyF8,
	ebiten.KeyF9:  input.KeyF9,
	ebiten.KeyF10: input.KeyF10,
	ebiten.KeyF11: input.KeyF11,
	ebiten.KeyF12: input.KeyF12,

	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyCapsLock:     input.KeyCapsLock,
	ebiten.KeyShiftLeft:    input.KeyShiftLeft,
	ebiten.KeyShiftRight:   input.KeyShiftRight,
	ebiten.KeyControlLeft:  input.KeyControlLeft,
	ebiten.KeyControlRight: input.KeyControlRight,
	ebiten.KeyAltLeft:      input.KeyAltLeft,
	ebiten.KeyAltRight:     input.KeyAltRight,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyInsert:       input.KeyInsert,
	ebiten.KeyDelete:       input.KeyDelete,
	ebiten.KeyHome:         input.KeyHome,
	ebiten.KeyEnd:          input.KeyEnd,
	ebiten.KeyPageUp:       input.KeyPageUp,
	ebiten.KeyPageDown:     input.KeyPageDown,
	ebiten.KeyArrowUp:      input.KeyArrowUp,
	ebiten.KeyArrowDown:    input.KeyArrowDown,
	ebiten.KeyArrowLeft:    input.KeyArrowLeft,
	ebiten.KeyArrowRight:   input.KeyArrowRight,

	ebiten.KeyNumLock:        input.KeyNumLock,
	ebiten.KeyNumpad0:        input.KeyNumpad0,
	ebiten.KeyNumpad1:        input.KeyNumpad1,
	ebiten.KeyNumpad2:        input.KeyNumpad2,
	ebiten.KeyNumpad3:        input.KeyNumpad3,
	ebiten.KeyNumpad4:        input.KeyNumpad4,
	ebiten.KeyNumpad5:        input.KeyNumpad5,
	ebiten.KeyNumpad6:        input.KeyNumpad6,
	ebiten.KeyNumpad7:        input.KeyNumpad7,
	ebiten.KeyNumpad8:        input.KeyNumpad8,
	ebiten.KeyNumpad9:        input.KeyNumpad9,
	ebiten.KeyNumpadAdd:      input.KeyNumpadAdd,
	ebiten.KeyNumpadSubtract: input.KeyNumpadSubtract,
	ebiten.KeyNumpadMultiply: input.KeyNumpadMultiply,
	ebiten.KeyNumpadDivide:   input.KeyNumpadDivide,
	ebiten.KeyNumpadDecimal:  input.KeyNumpadDecimal,
	ebiten.KeyNumpadEnter:    input.KeyNumpadEnter,

	ebiten.KeyPrintScreen:  input.KeyPrintScreen,
	ebiten.KeyPause:        input.KeyPause,
	ebiten.KeyScrollLock:   input.KeyScrollLock,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyEqual:        input.KeyEquals,
	ebiten.KeyBracketLeft:  input.KeyLeftBracket,
	ebiten.KeyBracketRight: input.KeyRightBracket,
	ebiten.KeyBackslash:    input.KeyBackslash,
	ebiten.KeySemicolon:    input.KeySemicolon,
	ebiten.KeyQuote:        input.KeyApostrophe,
	ebiten.KeyBackquote:    input.KeyGrave,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySlash:        input.KeySlash,
}

// TranslateKey maps an ebiten key to an engine key. Unmapped keys become raw keys.
func TranslateKey(k ebiten.Key) input.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return input.RawKey(uint32(k))
}

// TranslateMouseButton maps an ebiten mouse button to an engine button.
func TranslateMouseButton(b ebiten.MouseButton) input.MouseButton {
	switch b {
	case ebiten.MouseButtonLeft:
		return input.MouseLeft
	case ebiten.MouseButtonRight:
		return input.MouseRight
	case ebiten.MouseButtonMiddle:
		return input.MouseMiddle
	default:
		return input.OtherMouseButton(uint16(b))
	}
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButton3,
	ebiten.MouseButton4,
}
