// Command frameloop-stress drives a headless App with a churning sprite
// population and prints a timing report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/frameloop/config"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/input"
	"github.com/plus3/frameloop/logging"
	"github.com/plus3/frameloop/platform/headless"
	"github.com/plus3/frameloop/render2d"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML or YAML config file.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 50, "Entities spawned every frame.")
	seed := flag.Int64("seed", 1, "Random seed for the entity population.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger := logging.New(cfg.Logging, os.Stderr)

	logger.Info("starting stress test", "entities", *entityCount, "churn", *churn, "duration", *duration)

	renderer := &render2d.NullRenderer{}
	app := engine.New(engine.WithConfig(cfg), engine.WithLogger(logger))
	app.AddPlugins(
		input.Plugin{},
		render2d.Plugin{Renderer: renderer},
		simPlugin{entities: *entityCount, churn: *churn, rng: rand.New(rand.NewSource(*seed))},
	)
	engine.Insert(app.Resources(), render2d.NewCamera2D(float64(cfg.Window.Width), float64(cfg.Window.Height)))

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Churn:          *churn,
		FixedDelta:     app.FixedInterval().Seconds(),
		GCPauseMetrics: *gcPauseMetrics,
	}

	runner := headless.New(app)
	var frameStart time.Time
	runner.BeforeFrame = func(frame int, res *engine.Resources) {
		if !frameStart.IsZero() {
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		}
		frameStart = time.Now()

		// toggle churn every 600 frames to exercise the input path
		if frame > 0 && frame%600 == 0 {
			engine.Send(res, input.KeyboardInput{Key: input.KeySpace, State: input.Pressed})
		} else if frame > 600 && frame%600 == 1 {
			engine.Send(res, input.KeyboardInput{Key: input.KeySpace, State: input.Released})
		}
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Fatal("stress run failed", "err", err)
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	collect(report, app, runner, renderer)
	logger.Info("simulation finished", "frames", report.TotalFrames)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}

// collect copies the run's results out of the app into report.
func collect(report *Report, app *engine.App, runner *headless.Runner, renderer *render2d.NullRenderer) {
	res := app.Resources()

	report.TotalFrames = runner.Frames()
	report.FinalEntities = app.World().Len()
	report.SpritesDrawn = renderer.Sprites
	report.Systems = app.Scheduler().Stats().Systems
	report.FrameTime.Finalize()

	if frames, ok := engine.Get[engine.FrameCount](res); ok {
		report.FixedSteps = frames.FixedSteps
	}
	if churn, ok := engine.Get[Churn](res); ok {
		report.Spawned = churn.Spawned
		report.Despawned = churn.Despawned
	}
}
