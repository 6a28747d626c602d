package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/frameloop/engine"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Entities   int
	Churn      int
	FixedDelta float64

	// Results
	TotalFrames    int
	FixedSteps     uint64
	FinalEntities  int
	Spawned        int
	Despawned      int
	SpritesDrawn   int
	TotalTime      time.Duration
	FrameTime      Stats
	Systems        []engine.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarizes frame time samples.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P95     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P95 = sorted[(len(sorted)*95-1)/100]
}

const reportTemplate = `
# Frame Loop Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Spawned Per Frame:** {{.Churn}}
- **Fixed Delta:** {{printf "%.4f" .FixedDelta}}s

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Fixed Steps:** {{.FixedSteps}}
- **Total Test Time:** {{.TotalTime}}
- **Entities:** {{.FinalEntities}} (spawned {{.Spawned}}, despawned {{.Despawned}})
- **Sprites Drawn:** {{.SpritesDrawn}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **P95:** {{.FrameTime.P95}}
  - **Max:** {{.FrameTime.Max}}

## Systems
| System | Stage | Runs | Avg | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.Stage}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}} ({{mb .MemStatsEnd.HeapSys}} MiB heap reserved)
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
