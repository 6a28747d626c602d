package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	if size <= 0 {
		size = 1
	}
	return &FrameHistory{samples: make([]float32, size)}
}

// Push records a frame time, overwriting the oldest sample once full.
func (fh *FrameHistory) Push(ms float32) {
	fh.samples[fh.next] = ms
	fh.next = (fh.next + 1) % len(fh.samples)
	fh.filled = min(fh.filled+1, len(fh.samples))
}

// Average returns the mean of the recorded samples, or 0 when empty.
func (fh *FrameHistory) Average() float32 {
	if fh.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range fh.Values() {
		sum += s
	}
	return sum / float32(fh.filled)
}

// Values returns the recorded samples, oldest first.
func (fh *FrameHistory) Values() []float32 {
	out := make([]float32, 0, fh.filled)
	start := (fh.next - fh.filled + len(fh.samples)) % len(fh.samples)
	for i := range fh.filled {
		out = append(out, fh.samples[(start+i)%len(fh.samples)])
	}
	return out
}

// PerformanceStats plots frame times and summarizes storage contents.
type PerformanceStats struct {
	history *FrameHistory
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{history: NewFrameHistory(historyFrames)}
}

func (ps *PerformanceStats) History() *FrameHistory {
	return ps.history
}

// Record pushes the latest frame delta from the Time resource.
func (ps *PerformanceStats) Record(res *engine.Resources) {
	if t, ok := engine.Get[engine.Time](res); ok {
		ps.history.Push(float32(t.DeltaSeconds() * 1000.0))
	}
}

func (ps *PerformanceStats) Render(res *engine.Resources, world *ecs.Storage) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := world.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Component Columns: %d", stats.ColumnCount))
	imgui.Text(fmt.Sprintf("Resources: %d", res.Len()))

	if frames, ok := engine.Get[engine.FrameCount](res); ok {
		imgui.Text(fmt.Sprintf("Frames: %d  Fixed Steps: %d", frames.Frames, frames.FixedSteps))
	}
	if interp, ok := engine.Get[engine.Interpolation](res); ok {
		imgui.Text(fmt.Sprintf("Interpolation: %.3f", interp.Alpha))
	}

	avg := ps.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if values := ps.history.Values(); len(values) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))
	}

	if imgui.TreeNodeStr("Component Columns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ColumnStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, column := range stats.Columns {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(column.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", column.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SchedulerPanel shows per-system timings.
type SchedulerPanel struct {
	scheduler *engine.Scheduler
}

func NewSchedulerPanel(scheduler *engine.Scheduler) *SchedulerPanel {
	return &SchedulerPanel{scheduler: scheduler}
}

func (sp *SchedulerPanel) Render() {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := sp.scheduler.Stats()
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Stage")
		imgui.TableSetupColumn("Priority")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.Stage.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.Priority))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
