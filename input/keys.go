package input

import "fmt"

// Key is a backend-independent keyboard key. Keys the engine does not name are
// carried as RawKey codes.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyTab
	KeyCapsLock
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeySpace
	KeyEnter
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter

	KeyPrintScreen
	KeyPause
	KeyScrollLock
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	keyNamedEnd
)

// rawKeyBase keeps raw codes clear of the named range.
const rawKeyBase Key = 1 << 16

// RawKey wraps a backend key code that has no named Key.
func RawKey(code uint32) Key {
	return rawKeyBase + Key(code)
}

// Raw returns the backend code of a raw key.
func (k Key) Raw() (uint32, bool) {
	if k < rawKeyBase {
		return 0, false
	}
	return uint32(k - rawKeyBase), true
}

var keyNames = [...]string{
	KeyUnknown:        "Unknown",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyEscape:         "Escape",
	KeyTab:            "Tab",
	KeyCapsLock:       "CapsLock",
	KeyShiftLeft:      "ShiftLeft",
	KeyShiftRight:     "ShiftRight",
	KeyControlLeft:    "ControlLeft",
	KeyControlRight:   "ControlRight",
	KeyAltLeft:        "AltLeft",
	KeyAltRight:       "AltRight",
	KeySpace:          "Space",
	KeyEnter:          "Enter",
	KeyBackspace:      "Backspace",
	KeyInsert:         "Insert",
	KeyDelete:         "Delete",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyArrowUp:        "ArrowUp",
	KeyArrowDown:      "ArrowDown",
	KeyArrowLeft:      "ArrowLeft",
	KeyArrowRight:     "ArrowRight",
	KeyNumLock:        "NumLock",
	KeyNumpad0:        "Numpad0",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyNumpadAdd:      "NumpadAdd",
	KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadDecimal:  "NumpadDecimal",
	KeyNumpadEnter:    "NumpadEnter",
	KeyPrintScreen:    "PrintScreen",
	KeyPause:          "Pause",
	KeyScrollLock:     "ScrollLock",
	KeyMinus:          "Minus",
	KeyEquals:         "Equals",
	KeyLeftBracket:    "LeftBracket",
	KeyRightBracket:   "RightBracket",
	KeyBackslash:      "Backslash",
	KeySemicolon:      "Semicolon",
	KeyApostrophe:     "Apostrophe",
	KeyGrave:          "Grave",
	KeyComma:          "Comma",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
}

func (k Key) String() string {
	if code, ok := k.Raw(); ok {
		return fmt.Sprintf("Raw(%d)", code)
	}
	if k >= 0 && int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// MouseButton is a backend-independent mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseOtherBase
)

// OtherMouseButton wraps an extra button index reported by the backend.
func OtherMouseButton(n uint16) MouseButton {
	return mouseOtherBase + MouseButton(n)
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	}
	if b >= mouseOtherBase {
		return fmt.Sprintf("Other(%d)", int(b-mouseOtherBase))
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// ElementState is whether a key or button went down or up.
type ElementState int

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}
