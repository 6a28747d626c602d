// Package input turns raw platform input events into a per-frame snapshot.
//
// A backend sends KeyboardInput, MouseInput, CursorMoved and FocusChanged
// events; the ProcessInput system folds the readable ones into the Input
// resource, which gameplay systems query for the rest of the frame.
package input

import (
	"github.com/kamstrup/intmap"
)

// KeyboardInput reports a key going down or up.
type KeyboardInput struct {
	Key   Key
	State ElementState
}

// MouseInput reports a mouse button going down or up.
type MouseInput struct {
	Button MouseButton
	State  ElementState
}

// CursorMoved reports the cursor position in window coordinates.
type CursorMoved struct {
	X, Y float32
}

// FocusChanged reports the window gaining or losing focus.
type FocusChanged struct {
	Focused bool
}

// Input is the per-frame input snapshot. "Pressed" sets hold what went down
// this frame; "down" sets hold everything currently held.
type Input struct {
	keysPressed    *intmap.Map[Key, struct{}]
	keysDown       *intmap.Map[Key, struct{}]
	buttonsPressed *intmap.Map[MouseButton, struct{}]
	buttonsDown    *intmap.Map[MouseButton, struct{}]
	mouseX, mouseY float32
	focused        bool
}

// New creates an empty, focused snapshot.
func New() *Input {
	return &Input{
		keysPressed:    intmap.New[Key, struct{}](16),
		keysDown:       intmap.New[Key, struct{}](16),
		buttonsPressed: intmap.New[MouseButton, struct{}](4),
		buttonsDown:    intmap.New[MouseButton, struct{}](4),
		focused:        true,
	}
}

func (in *Input) KeyPressed(key Key) bool {
	_, ok := in.keysPressed.Get(key)
	return ok
}

func (in *Input) KeyDown(key Key) bool {
	_, ok := in.keysDown.Get(key)
	return ok
}

// AnyKeyDown reports whether at least one key is held.
func (in *Input) AnyKeyDown() bool {
	return in.keysDown.Len() > 0
}

func (in *Input) MousePressed(button MouseButton) bool {
	_, ok := in.buttonsPressed.Get(button)
	return ok
}

func (in *Input) MouseDown(button MouseButton) bool {
	_, ok := in.buttonsDown.Get(button)
	return ok
}

func (in *Input) MousePosition() (x, y float32) {
	return in.mouseX, in.mouseY
}

func (in *Input) Focused() bool {
	return in.focused
}

// PressKey marks key as down. A key that is already held does not count as
// pressed again.
func (in *Input) PressKey(key Key) {
	if in.KeyDown(key) {
		return
	}
	in.keysPressed.Put(key, struct{}{})
	in.keysDown.Put(key, struct{}{})
}

func (in *Input) ReleaseKey(key Key) {
	in.keysDown.Del(key)
}

func (in *Input) PressMouse(button MouseButton) {
	if in.MouseDown(button) {
		return
	}
	in.buttonsPressed.Put(button, struct{}{})
	in.buttonsDown.Put(button, struct{}{})
}

func (in *Input) ReleaseMouse(button MouseButton) {
	in.buttonsDown.Del(button)
}

func (in *Input) SetMousePosition(x, y float32) {
	in.mouseX, in.mouseY = x, y
}

// ClearFrame forgets this frame's presses; held keys stay down.
func (in *Input) ClearFrame() {
	in.keysPressed.Clear()
	in.buttonsPressed.Clear()
}

// LostFocus releases everything, since release events will not arrive while
// the window is unfocused.
func (in *Input) LostFocus() {
	in.keysPressed.Clear()
	in.keysDown.Clear()
	in.buttonsPressed.Clear()
	in.buttonsDown.Clear()
	in.focused = false
}

// Apply folds one event into the snapshot.
func (in *Input) Apply(event any) {
	switch ev := event.(type) {
	case KeyboardInput:
		if ev.State == Pressed {
			in.PressKey(ev.Key)
		} else {
			in.ReleaseKey(ev.Key)
		}
	case MouseInput:
		if ev.State == Pressed {
			in.PressMouse(ev.Button)
		} else {
			in.ReleaseMouse(ev.Button)
		}
	case CursorMoved:
		in.SetMousePosition(ev.X, ev.Y)
	case FocusChanged:
		if ev.Focused {
			in.focused = true
		} else {
			in.LostFocus()
		}
	}
}
