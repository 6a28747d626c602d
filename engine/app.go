package engine

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/frameloop/config"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/logging"
)

// App owns the resource registry, the entity store and the scheduler, and
// exposes each frame phase separately so a platform backend controls pacing.
//
// A whole frame, in order:
//
//	Startup (first frame only)
//	TickTime
//	ProcessInput
//	UpdateLogic
//	FixedUpdateDispatch (0..n FixedUpdate runs)
//	Render (PreRender, Render)
//	LateUpdate
type App struct {
	resources *Resources
	world     *ecs.Storage
	scheduler *Scheduler
	timeState *TimeState
	log       *log.Logger

	startupDone  bool
	accumulator  time.Duration
	maxFrameTime time.Duration

	shutdownHooks []func()
	shutdownDone  bool
}

// Option configures an App in New.
type Option func(*appOptions)

type appOptions struct {
	logger       *log.Logger
	now          func() time.Time
	fixedDelta   float64
	maxFrameTime time.Duration
}

// WithLogger sets the logger for the app and its scheduler.
func WithLogger(logger *log.Logger) Option {
	return func(o *appOptions) { o.logger = logger }
}

// WithClock replaces the wall clock used by TickTime.
func WithClock(now func() time.Time) Option {
	return func(o *appOptions) { o.now = now }
}

// WithFixedDelta sets the fixed-update interval in seconds.
func WithFixedDelta(seconds float64) Option {
	return func(o *appOptions) { o.fixedDelta = seconds }
}

// WithMaxFrameTime sets the ceiling on frame time fed to the accumulator.
// Zero or negative disables the clamp.
func WithMaxFrameTime(d time.Duration) Option {
	return func(o *appOptions) { o.maxFrameTime = d }
}

// WithConfig applies the time section of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *appOptions) {
		if cfg == nil {
			return
		}
		if cfg.Time.FixedDelta > 0 {
			o.fixedDelta = cfg.Time.FixedDelta
		}
		if cfg.Time.MaxFrameTime > 0 {
			o.maxFrameTime = cfg.Time.MaxFrameTime
		}
	}
}

// New creates an App with an empty world and the Time, TimeFixed,
// Interpolation and FrameCount resources in place.
func New(opts ...Option) *App {
	o := appOptions{
		fixedDelta:   DefaultFixedDelta,
		maxFrameTime: DefaultMaxFrameTime,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}

	a := &App{
		resources:    NewResources(),
		world:        ecs.NewStorage(),
		scheduler:    NewScheduler(o.logger),
		timeState:    NewTimeState(o.now),
		log:          o.logger,
		maxFrameTime: o.maxFrameTime,
	}

	Insert(a.resources, Time{})
	Insert(a.resources, TimeFixed{DeltaSeconds: o.fixedDelta})
	Insert(a.resources, Interpolation{})
	Insert(a.resources, FrameCount{})
	return a
}

// Resources returns the resource registry shared by all systems.
func (a *App) Resources() *Resources {
	return a.resources
}

// World returns the entity store.
func (a *App) World() *ecs.Storage {
	return a.world
}

// Scheduler returns the system scheduler.
func (a *App) Scheduler() *Scheduler {
	return a.scheduler
}

// Logger returns the app logger.
func (a *App) Logger() *log.Logger {
	return a.log
}

// AddSystem registers system with the scheduler.
func (a *App) AddSystem(stage Stage, priority Priority, system System) *App {
	a.scheduler.AddSystem(stage, priority, system)
	return a
}

// AddNamedSystem registers system under name.
func (a *App) AddNamedSystem(stage Stage, priority Priority, name string, system System) *App {
	a.scheduler.AddNamedSystem(stage, priority, name, system)
	return a
}

// AddPlugin builds plugin against the app.
func (a *App) AddPlugin(plugin Plugin) *App {
	if plugin == nil {
		return a
	}
	plugin.Build(a)
	return a
}

// AddPlugins builds each plugin in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, plugin := range plugins {
		a.AddPlugin(plugin)
	}
	return a
}

// SetFixedDelta replaces the TimeFixed resource.
func (a *App) SetFixedDelta(seconds float64) *App {
	Insert(a.resources, TimeFixed{DeltaSeconds: seconds})
	return a
}

// FixedInterval returns the current fixed-update interval. A missing TimeFixed
// resource falls back to DefaultFixedDelta.
func (a *App) FixedInterval() time.Duration {
	fixed, _ := Get[TimeFixed](a.resources)
	return fixed.Interval()
}

// Startup runs the Startup stage the first time it is called.
func (a *App) Startup() {
	if a.startupDone {
		return
	}
	a.startupDone = true
	a.log.Debug("running startup", "systems", a.scheduler.Len(Startup))
	a.scheduler.RunStage(Startup, a.resources, a.world)
}

// TickTime advances the clock and publishes the new Time snapshot.
func (a *App) TickTime() Time {
	t := a.timeState.Tick()
	Insert(a.resources, t)
	return t
}

// ProcessInput runs the ProcessInput stage.
func (a *App) ProcessInput() {
	a.scheduler.RunStage(ProcessInput, a.resources, a.world)
}

// UpdateLogic runs the Update stage once.
func (a *App) UpdateLogic() {
	a.scheduler.RunStage(Update, a.resources, a.world)
}

// FixedUpdateDispatch feeds frameDelta, clamped to the max frame time, into the
// accumulator and runs FixedUpdate once per whole interval it holds. It returns
// the number of steps run.
func (a *App) FixedUpdateDispatch(frameDelta time.Duration) int {
	if frameDelta < 0 {
		frameDelta = 0
	}
	if a.maxFrameTime > 0 && frameDelta > a.maxFrameTime {
		frameDelta = a.maxFrameTime
	}
	a.accumulator += frameDelta

	interval := a.FixedInterval()
	steps := 0
	for a.accumulator >= interval {
		a.scheduler.RunStage(FixedUpdate, a.resources, a.world)
		a.accumulator -= interval
		steps++
	}

	if steps > 0 {
		count := GetOrInsert(a.resources, FrameCount{})
		count.FixedSteps += uint64(steps)
	}
	return steps
}

// Accumulator returns the time carried over to the next fixed step.
func (a *App) Accumulator() time.Duration {
	return a.accumulator
}

// Alpha returns accumulator / fixed interval, in [0, 1) after a dispatch.
func (a *App) Alpha() float64 {
	return float64(a.accumulator) / float64(a.FixedInterval())
}

// Render publishes alpha as the Interpolation resource and runs PreRender then Render.
func (a *App) Render(alpha float64) {
	Insert(a.resources, Interpolation{Alpha: alpha})
	a.scheduler.RunStage(PreRender, a.resources, a.world)
	a.scheduler.RunStage(Render, a.resources, a.world)
}

// LateUpdate runs the LateUpdate stage.
func (a *App) LateUpdate() {
	a.scheduler.RunStage(LateUpdate, a.resources, a.world)
}

// Frame runs one complete frame and returns the steps FixedUpdate ran.
func (a *App) Frame() int {
	a.Startup()
	t := a.TickTime()
	a.ProcessInput()
	a.UpdateLogic()
	steps := a.FixedUpdateDispatch(t.Delta)
	a.Render(a.Alpha())
	a.LateUpdate()

	count := GetOrInsert(a.resources, FrameCount{})
	count.Frames++
	return steps
}

// RequestExit asks the backend to stop after the current frame.
func (a *App) RequestExit(reason string) {
	Insert(a.resources, AppExit{Reason: reason})
}

// OnShutdown registers fn to run when the backend stops the app. Hooks run in
// reverse registration order.
func (a *App) OnShutdown(fn func()) *App {
	if fn != nil {
		a.shutdownHooks = append(a.shutdownHooks, fn)
	}
	return a
}

// Shutdown runs the shutdown hooks once. Later calls do nothing.
func (a *App) Shutdown() {
	if a.shutdownDone {
		return
	}
	a.shutdownDone = true
	for i := len(a.shutdownHooks) - 1; i >= 0; i-- {
		a.shutdownHooks[i]()
	}
	a.log.Debug("app shut down", "hooks", len(a.shutdownHooks))
}

// ExitRequested reports whether any system inserted AppExit.
func (a *App) ExitRequested() (AppExit, bool) {
	return Get[AppExit](a.resources)
}
