package engine

import "time"

const (
	// DefaultFixedDelta is the fixed-update interval used when none is configured.
	DefaultFixedDelta = 1.0 / 60.0
	// DefaultMaxFrameTime bounds how much wall time a single frame feeds into the
	// fixed-update accumulator.
	DefaultMaxFrameTime = 250 * time.Millisecond
	// MinFixedInterval is the shortest fixed-update interval; shorter ones are
	// raised to it so a clamped frame cannot expand into millions of steps.
	MinFixedInterval = 100 * time.Microsecond
)

// Time is the per-frame timing snapshot published by App.TickTime.
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
}

// DeltaSeconds returns the last frame's duration in seconds.
func (t Time) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// ElapsedSeconds returns the total time since the clock started, in seconds.
func (t Time) ElapsedSeconds() float64 {
	return t.Elapsed.Seconds()
}

// TimeState owns the clock and produces Time snapshots.
type TimeState struct {
	now  func() time.Time
	last time.Time
	time Time
}

// NewTimeState starts a clock at the current instant of now. A nil now uses time.Now.
func NewTimeState(now func() time.Time) *TimeState {
	if now == nil {
		now = time.Now
	}
	return &TimeState{
		now:  now,
		last: now(),
	}
}

// Tick measures the time since the previous Tick (or construction) and
// returns the updated snapshot. A clock that moves backwards yields a zero delta.
func (ts *TimeState) Tick() Time {
	current := ts.now()
	delta := current.Sub(ts.last)
	if delta < 0 {
		delta = 0
	}
	ts.last = current
	ts.time.Delta = delta
	ts.time.Elapsed += delta
	return ts.time
}

// Time returns the latest snapshot without advancing the clock.
func (ts *TimeState) Time() Time {
	return ts.time
}

// TimeFixed configures the fixed-update interval.
type TimeFixed struct {
	DeltaSeconds float64
}

// Interval converts the configured interval to a duration, falling back to
// DefaultFixedDelta when it is not positive and raising it to MinFixedInterval.
func (tf TimeFixed) Interval() time.Duration {
	seconds := tf.DeltaSeconds
	if seconds <= 0 {
		seconds = DefaultFixedDelta
	}
	interval := time.Duration(seconds * float64(time.Second))
	if interval < MinFixedInterval {
		interval = MinFixedInterval
	}
	return interval
}

// Interpolation carries the render interpolation fraction in [0, 1).
type Interpolation struct {
	Alpha float64
}

// FrameCount counts completed frames and fixed steps.
type FrameCount struct {
	Frames     uint64
	FixedSteps uint64
}

// AppExit is inserted by any system that wants the backend to stop.
type AppExit struct {
	Reason string
}
