// Package platform defines what a backend reports back after driving one frame.
//
// A backend owns the OS event loop. For every frame it sends raw input into
// the input event channels, calls App.Frame, and decides whether to go on.
package platform

import "github.com/plus3/frameloop/engine"

// PollResult tells the caller whether to keep running frames.
type PollResult int

const (
	Continue PollResult = iota
	Exit
)

func (r PollResult) String() string {
	if r == Exit {
		return "Exit"
	}
	return "Continue"
}

// Backend drives an App one frame at a time.
type Backend interface {
	PollOnce() PollResult
}

// ExitResult maps the app's exit request to a PollResult.
func ExitResult(app *engine.App) PollResult {
	if _, ok := app.ExitRequested(); ok {
		return Exit
	}
	return Continue
}
