package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/input"
	"github.com/juwon-cha/TycoonPlayableAD/render"
	"github.com/juwon-cha/TycoonPlayableAD/system"
)

// game wires the world, its systems, the renderer and the input handler
type game struct {
	world     *engine.World
	renderer  *render.Renderer
	clock     *engine.PausableClock
	scheduler *engine.ClockScheduler
	input     *input.Handler
}

func newGame(screen tcell.Screen, settings engine.Settings, source engine.TimeProvider) (*game, error) {
	world, err := engine.NewWorld(settings)
	if err != nil {
		return nil, err
	}

	work := system.NewWorkSystem(world)
	world.AddSystem(system.NewHoldSystem(world, func() { _ = work.Attempt() }))
	world.AddSystem(work)
	world.AddSystem(system.NewProgressionSystem(world))
	world.AddSystem(system.NewMotionSystem(world))
	world.AddSystem(system.NewJournalSystem(world, nil))

	renderer := render.NewRenderer(screen, world)
	world.RegisterHandler(renderer)

	g := &game{
		world:    world,
		renderer: renderer,
		clock:    engine.NewPausableClock(source),
	}
	g.scheduler = engine.NewClockScheduler(g.clock, settings.TickInterval, world.Resources.Status, g.frame)
	g.input = input.NewHandler(world.Resources.Events, screen, g.clock, g.scheduler.Stop)
	return g, nil
}

// frame runs one tick and draws it, always on the scheduler goroutine
func (g *game) frame(dt time.Duration) {
	g.world.Tick(dt)
	g.renderer.Update(dt)
	g.renderer.Draw()
}
