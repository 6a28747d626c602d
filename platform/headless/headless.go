// Package headless runs an App without a window, for tests, servers and
// benchmarks. Time comes from whatever clock the App was built with; use
// StepClock for fully deterministic runs.
package headless

import (
	"context"
	"time"

	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/platform"
)

// Runner drives an App frame by frame.
type Runner struct {
	app *engine.App

	// MaxFrames stops the runner after that many frames; zero means no limit.
	MaxFrames int
	// Pace is the wall-clock period between frames in Run; zero runs flat out.
	Pace time.Duration
	// BeforeFrame is called ahead of every frame, typically to send input events.
	BeforeFrame func(frame int, res *engine.Resources)

	frames int
}

func New(app *engine.App) *Runner {
	return &Runner{app: app}
}

// Frames returns the number of frames run so far.
func (r *Runner) Frames() int {
	return r.frames
}

// PollOnce runs one frame and reports whether the runner should continue.
func (r *Runner) PollOnce() platform.PollResult {
	if r.MaxFrames > 0 && r.frames >= r.MaxFrames {
		return platform.Exit
	}
	if r.BeforeFrame != nil {
		r.BeforeFrame(r.frames, r.app.Resources())
	}

	r.app.Frame()
	r.frames++

	if result := platform.ExitResult(r.app); result == platform.Exit {
		return result
	}
	if r.MaxFrames > 0 && r.frames >= r.MaxFrames {
		return platform.Exit
	}
	return platform.Continue
}

// Run polls until the app asks to exit, the frame budget is spent or ctx is
// done, then shuts the app down. It returns ctx.Err() when cancelled.
func (r *Runner) Run(ctx context.Context) error {
	defer r.app.Shutdown()

	var tick <-chan time.Time
	if r.Pace > 0 {
		ticker := time.NewTicker(r.Pace)
		defer ticker.Stop()
		tick = ticker.C
	}

	log := r.app.Logger()
	log.Debug("headless run started", "max_frames", r.MaxFrames, "pace", r.Pace)
	for {
		select {
		case <-ctx.Done():
			log.Debug("headless run cancelled", "frames", r.frames)
			return ctx.Err()
		default:
		}

		if r.PollOnce() == platform.Exit {
			log.Debug("headless run finished", "frames", r.frames)
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}
}

// StepClock is a fake clock that advances by Step on every call.
type StepClock struct {
	current time.Time
	Step    time.Duration
}

func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{current: start, Step: step}
}

// Now advances the clock and returns the new instant.
func (c *StepClock) Now() time.Time {
	c.current = c.current.Add(c.Step)
	return c.current
}
