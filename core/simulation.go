package core

import (
	"log"

	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/leveldata"
	"github.com/automoto/shoutybird/shared/messages"
	"github.com/automoto/shoutybird/systems"
	"github.com/automoto/shoutybird/systems/factory"
	"github.com/yohamta/donburi"
)

// Options configures a Simulation. The zero value is a random course with no
// persistence.
type Options struct {
	Seed   uint64
	Course *leveldata.Course
	Store  systems.ScoreStore
	Queue  *messages.ActionQueue
}

// Simulation is the ShoutyBird world: the bird, the obstacles and the systems
// that advance them once per tick.
type Simulation struct {
	world   donburi.World
	queue   *messages.ActionQueue
	systems []systems.System
}

// NewSimulation builds the world and spawns the first bird.
func NewSimulation(opts Options) *Simulation {
	queue := opts.Queue
	if queue == nil {
		queue = messages.NewActionQueue()
	}

	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.World.Width*cfg.Display.ScaleFactor, cfg.World.Height*cfg.Display.ScaleFactor, cfg.World.CellSize)
	factory.CreateGame(w, opts.Seed, opts.Course, queue)

	state := systems.GetGameState(w)
	if saved, err := systems.LoadScores(opts.Store); err == nil && saved != nil {
		state.Best = saved.Best
		state.Rounds = saved.Rounds
	}
	state.Rounds++
	factory.CreateBird(w)
	systems.RegisterSubscribers(w, opts.Store)

	if opts.Course != nil {
		log.Printf("Course %q loaded: %d gaps", opts.Course.Name, opts.Course.Len())
	}

	return &Simulation{
		world: w,
		queue: queue,
		systems: []systems.System{
			systems.UpdateActions,
			systems.WithGameplayChecks(systems.UpdateClock),
			systems.WithGameplayChecks(systems.UpdateSpawner),
			systems.WithGameplayChecks(systems.UpdateUnits),
			systems.WithGameplayChecks(systems.UpdateObjects),
			systems.WithGameplayChecks(systems.UpdateCollisions),
			systems.WithGameplayChecks(systems.UpdateBounds),
			systems.WithGameplayChecks(systems.UpdateScore),
			systems.WithGameplayChecks(systems.UpdateCull),
			systems.ProcessEvents,
		},
	}
}

func (s *Simulation) World() donburi.World           { return s.world }
func (s *Simulation) Actions() *messages.ActionQueue { return s.queue }

// Enqueue queues an action for the next tick. Safe to call from any goroutine.
func (s *Simulation) Enqueue(action cfg.ActionID) {
	s.queue.Enqueue(action)
}

// AddSystem appends a system that runs after the built-in ones.
func (s *Simulation) AddSystem(system systems.System) {
	s.systems = append(s.systems, system)
}

// Tick advances the world by intervalMs of simulated time. Like Copter.Tick it
// must not be called concurrently; GameLoop guarantees that.
func (s *Simulation) Tick(intervalMs float64) {
	if clock := systems.GetClock(s.world); clock != nil {
		clock.Tick++
		clock.IntervalMs = intervalMs
	}
	for _, system := range s.systems {
		system(s.world)
	}
}

// State returns the current round state.
func (s *Simulation) State() components.GameStateData {
	if state := systems.GetGameState(s.world); state != nil {
		return *state
	}
	return components.GameStateData{}
}
