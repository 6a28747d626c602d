package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/frameloop/input"
)

var keyMap = map[int32]input.Key{
	rl.KeyA: input.KeyA,
	rl.KeyB: input.KeyB,
	rl.KeyC: input.KeyC,
	rl.KeyD: input.KeyD,
	rl.KeyE: input.KeyE,
	rl.KeyF: input.KeyF,
	rl.KeyG: input.KeyG,
	rl.KeyH: input.KeyH,
	rl.KeyI: input.KeyI,
	rl.KeyJ: input.KeyJ,
	rl.KeyK: input.KeyK,
	rl.KeyL: input.KeyL,
	rl.KeyM: input.KeyM,
	rl.KeyN: input.KeyN,
	rl.KeyO: input.KeyO,
	rl.KeyP: input.KeyP,
	rl.KeyQ: input.KeyQ,
	rl.KeyR: input.KeyR,
	rl.KeyS: input.KeyS,
	rl.KeyT: input.KeyT,
	rl.KeyU: input.KeyU,
	rl.KeyV: input.KeyV,
	rl.KeyW: input.KeyW,
	rl.KeyX: input.KeyX,
	rl.KeyY: input.KeyY,
	rl.KeyZ: input.KeyZ,

	rl.KeyZero:  input.Key0,
	rl.KeyOne:   input.Key1,
	rl.KeyTwo:   input.Key2,
	rl.KeyThree: input.Key3,
	rl.KeyFour:  input.Key4,
	rl.KeyFive:  input.Key5,
	rl.KeySix:   input.Key6,
	rl.KeySeven: input.Key7,
	rl.KeyEight: input.Key8,
	rl.KeyNine:  input.Key9,

	rl.KeyF1:  input.KeyF1,
	rl.KeyF2:  input.KeyF2,
	rl.KeyF3:  input.KeyF3,
	rl.KeyF4:  input.KeyF4,
	rl.KeyF5:  input.KeyF5,
	rl.KeyF6:  input.KeyF6,
	rl.KeyF7:  input.KeyF7,
	rl.KeyF8:  input.KeyF8,
	rl.KeyF9:  input.KeyF9,
	rl.KeyF10: input.KeyF10,
	rl.KeyF11: input.KeyF11,
	rl.KeyF12: input.KeyF12,

	rl.KeyEscape:       input.KeyEscape,
	rl.KeyTab:          input.KeyTab,
	rl.KeyCapsLock:     input.KeyCapsLock,
	rl.KeyLeftShift:    input.KeyShiftLeft,
	rl.KeyRightShift:   input.KeyShiftRight,
	rl.KeyLeftControl:  input.KeyControlLeft,
	rl.KeyRightControl: input.KeyControlRight,
	rl.KeyLeftAlt:      input.KeyAltLeft,
	rl.KeyRightAlt:     input.KeyAltRight,
	rl.KeySpace:        input.KeySpace,
	rl.KeyEnter:        input.KeyEnter,
	rl.KeyBackspace:    input.KeyBackspace,
	rl.KeyInsert:       input.KeyInsert,
	rl.KeyDelete:       input.KeyDelete,
	rl.KeyHome:         input.KeyHome,
	rl.KeyEnd:          input.KeyEnd,
	rl.KeyPageUp:       input.KeyPageUp,
	rl.KeyPageDown:     input.KeyPageDown,
	rl.KeyUp:           input.KeyArrowUp,
	rl.KeyDown:         input.KeyArrowDown,
	rl.KeyLeft:         input.KeyArrowLeft,
	rl.KeyRight:        input.KeyArrowRight,
}

// TranslateKey maps a raylib key code to an engine key. Unmapped keys become raw keys.
func TranslateKey(k int32) input.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return input.RawKey(uint32(k))
}

// TranslateMouseButton maps a raylib mouse button to an engine button.
func TranslateMouseButton(b rl.MouseButton) input.MouseButton {
	switch b {
	case rl.MouseButtonLeft:
		return input.MouseLeft
	case rl.MouseButtonRight:
		return input.MouseRight
	case rl.MouseButtonMiddle:
		return input.MouseMiddle
	default:
		return input.OtherMouseButton(uint16(b))
	}
}

var mouseButtons = []rl.MouseButton{
	rl.MouseButtonLeft,
	rl.MouseButtonRight,
	rl.MouseButtonMiddle,
	rl.MouseButtonSide,
	rl.MouseButtonExtra,
}
