package engine

import (
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/frameloop/ecs"
)

// System is a unit of per-frame logic. Systems have no failure channel: any
// error must be handled inside the system.
type System func(res *Resources, world *ecs.Storage)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	Priority       Priority
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	name     string
	priority Priority
	run      System

	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems stage by stage. Each stage holds priority buckets;
// bucket i finishes before bucket i+1 starts and insertion order is kept
// within a bucket.
type Scheduler struct {
	stages [stageCount][][]*systemEntry
	log    *log.Logger
}

// NewScheduler creates an empty scheduler. A nil logger falls back to log.Default().
func NewScheduler(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{log: logger}
}

// AddSystem registers system in the bucket for priority within stage, naming
// it after its function symbol.
func (s *Scheduler) AddSystem(stage Stage, priority Priority, system System) *Scheduler {
	return s.AddNamedSystem(stage, priority, systemName(system), system)
}

// AddNamedSystem registers system under an explicit display name.
// Priorities outside [0, MaxPriority] are clamped with a warning.
func (s *Scheduler) AddNamedSystem(stage Stage, priority Priority, name string, system System) *Scheduler {
	if !stage.Valid() {
		s.log.Warn("ignoring system for unknown stage", "system", name, "stage", int(stage))
		return s
	}
	if system == nil {
		s.log.Warn("ignoring nil system", "system", name, "stage", stage)
		return s
	}

	capped, clamped := priority.clamp()
	if clamped {
		s.log.Warn("priority out of range; clamping",
			"system", name, "stage", stage, "priority", int(priority), "clamped", int(capped))
	}

	buckets := s.stages[stage]
	for len(buckets) <= int(capped) {
		buckets = append(buckets, nil)
	}
	buckets[capped] = append(buckets[capped], &systemEntry{
		name:        name,
		priority:    capped,
		run:         system,
		minDuration: time.Duration(1<<63 - 1),
	})
	s.stages[stage] = buckets
	return s
}

// RunStage executes every system of stage in bucket order, then insertion
// order, and flushes the world's deferred commands afterwards.
func (s *Scheduler) RunStage(stage Stage, res *Resources, world *ecs.Storage) {
	if !stage.Valid() {
		return
	}

	for _, bucket := range s.stages[stage] {
		for _, entry := range bucket {
			start := time.Now()
			entry.run(res, world)
			entry.record(time.Since(start))
		}
	}

	if world != nil {
		world.Flush()
	}
}

// Len returns the number of systems registered to stage.
func (s *Scheduler) Len(stage Stage) int {
	if !stage.Valid() {
		return 0
	}
	n := 0
	for _, bucket := range s.stages[stage] {
		n += len(bucket)
	}
	return n
}

func (e *systemEntry) record(duration time.Duration) {
	e.executionCount++
	e.lastDuration = duration
	e.totalDuration += duration

	if duration < e.minDuration {
		e.minDuration = duration
	}
	if duration > e.maxDuration {
		e.maxDuration = duration
	}
}

// Stats returns statistics about system execution, in execution order.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{}

	for stage := Startup; stage < stageCount; stage++ {
		for _, bucket := range s.stages[stage] {
			for _, entry := range bucket {
				avgDuration := time.Duration(0)
				minDuration := time.Duration(0)
				if entry.executionCount > 0 {
					avgDuration = entry.totalDuration / time.Duration(entry.executionCount)
					minDuration = entry.minDuration
				}

				stats.Systems = append(stats.Systems, SystemStats{
					Name:           entry.name,
					Stage:          stage,
					Priority:       entry.priority,
					ExecutionCount: entry.executionCount,
					MinDuration:    minDuration,
					MaxDuration:    entry.maxDuration,
					AvgDuration:    avgDuration,
					LastDuration:   entry.lastDuration,
					TotalDuration:  entry.totalDuration,
				})
				stats.TotalExecutions += entry.executionCount
			}
		}
	}

	stats.SystemCount = len(stats.Systems)
	return stats
}

// systemName derives a short display name from the function symbol,
// e.g. "input.processInput" or "main.main.func1".
func systemName(system System) string {
	if system == nil {
		return "<nil>"
	}
	fn := runtime.FuncForPC(reflect.ValueOf(system).Pointer())
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
