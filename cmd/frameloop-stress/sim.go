package main

import (
	"math/rand"

	"github.com/plus3/frameloop/asset"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/input"
	"github.com/plus3/frameloop/render2d"
)

const worldSize = 1024.0

// Velocity moves a Transform2D every fixed step, in units per second.
type Velocity struct {
	render2d.Vec2
}

// Lifetime despawns its entity after the given number of fixed steps.
type Lifetime struct {
	Steps int
}

// Churn is the stress configuration resource.
type Churn struct {
	SpawnPerFrame int
	Paused        bool
	Spawned       int
	Despawned     int
}

// simPlugin registers the stress systems.
type simPlugin struct {
	entities int
	churn    int
	rng      *rand.Rand
}

func (p simPlugin) Build(app *engine.App) {
	engine.Insert(app.Resources(), Churn{SpawnPerFrame: p.churn})

	rng := p.rng
	app.AddNamedSystem(engine.Startup, engine.Normal, "stress.populate", func(_ *engine.Resources, world *ecs.Storage) {
		for range p.entities {
			spawnRandom(world, rng)
		}
	})
	app.AddNamedSystem(engine.Update, engine.High, "stress.togglePause", togglePause)
	app.AddNamedSystem(engine.Update, engine.Normal, "stress.spawn", func(res *engine.Resources, world *ecs.Storage) {
		churn, ok := engine.GetMut[Churn](res)
		if !ok || churn.Paused {
			return
		}
		for range churn.SpawnPerFrame {
			spawnRandom(world, rng)
		}
		churn.Spawned += churn.SpawnPerFrame
	})
	app.AddNamedSystem(engine.FixedUpdate, engine.Normal, "stress.move", move)
	app.AddNamedSystem(engine.FixedUpdate, engine.Low, "stress.expire", expire)
}

func spawnRandom(world *ecs.Storage, rng *rand.Rand) ecs.EntityId {
	id := ecs.Spawn(world, render2d.At(rng.Float64()*worldSize, rng.Float64()*worldSize))
	ecs.Insert(world, id, render2d.PrevTransform2D{})
	ecs.Insert(world, id, Velocity{render2d.Vec2{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}})
	ecs.Insert(world, id, Lifetime{Steps: 30 + rng.Intn(300)})

	sprite := render2d.NewSprite(asset.Handle(1 + rng.Intn(8)))
	sprite.Layer = rng.Intn(4)
	ecs.Insert(world, id, sprite)
	return id
}

func togglePause(res *engine.Resources, _ *ecs.Storage) {
	in, ok := input.Snapshot(res)
	if !ok {
		return
	}
	if in.KeyPressed(input.KeySpace) {
		if churn, ok := engine.GetMut[Churn](res); ok {
			churn.Paused = !churn.Paused
		}
	}
}

func move(res *engine.Resources, world *ecs.Storage) {
	dt := engine.TimeFixed{}
	if fixed, ok := engine.Get[engine.TimeFixed](res); ok {
		dt = fixed
	}
	step := dt.Interval().Seconds()

	for _, pair := range ecs.Join[render2d.Transform2D, Velocity](world) {
		transform, vel := pair.First, pair.Second
		transform.Position = transform.Position.Add(vel.Scale(step))

		if transform.Position.X < 0 || transform.Position.X > worldSize {
			vel.X = -vel.X
		}
		if transform.Position.Y < 0 || transform.Position.Y > worldSize {
			vel.Y = -vel.Y
		}
	}
}

func expire(res *engine.Resources, world *ecs.Storage) {
	churn, _ := engine.GetMut[Churn](res)
	for id, life := range ecs.QueryMut[Lifetime](world) {
		life.Steps--
		if life.Steps <= 0 {
			world.Commands().Despawn(id)
			if churn != nil {
				churn.Despawned++
			}
		}
	}
}
