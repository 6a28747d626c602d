package engine

// Stage is a fixed execution point within a frame. Stages run in declaration order.
type Stage int

const (
	// Startup runs once, before the first frame.
	Startup Stage = iota
	// ProcessInput turns raw input events into the per-frame input snapshot.
	ProcessInput
	// Update runs once per frame at a variable rate.
	Update
	// FixedUpdate runs zero or more times per frame at the fixed interval.
	FixedUpdate
	// PreRender prepares render data.
	PreRender
	// Render submits draw work.
	Render
	// LateUpdate runs last; event channels are usually flushed here.
	LateUpdate

	stageCount
)

// Stages returns every stage in execution order.
func Stages() []Stage {
	stages := make([]Stage, 0, stageCount)
	for s := Startup; s < stageCount; s++ {
		stages = append(stages, s)
	}
	return stages
}

// Valid reports whether s is one of the declared stages.
func (s Stage) Valid() bool {
	return s >= Startup && s < stageCount
}

// String returns the string representation of a stage.
func (s Stage) String() string {
	switch s {
	case Startup:
		return "Startup"
	case ProcessInput:
		return "ProcessInput"
	case Update:
		return "Update"
	case FixedUpdate:
		return "FixedUpdate"
	case PreRender:
		return "PreRender"
	case Render:
		return "Render"
	case LateUpdate:
		return "LateUpdate"
	default:
		return "Unknown"
	}
}

// Priority selects the bucket a system runs in within its stage. Lower values run first.
type Priority int

// MaxPriority is the largest accepted priority; larger values are clamped to it.
const MaxPriority Priority = 8

const (
	Highest Priority = 0
	High    Priority = 1
	Normal  Priority = 4
	Low     Priority = 6
	Lowest  Priority = MaxPriority
)

// clamp limits p to [0, MaxPriority] and reports whether it had to.
func (p Priority) clamp() (Priority, bool) {
	switch {
	case p < 0:
		return 0, true
	case p > MaxPriority:
		return MaxPriority, true
	default:
		return p, false
	}
}
