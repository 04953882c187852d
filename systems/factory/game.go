package factory

import (
	"math/rand/v2"

	"github.com/automoto/shoutybird/archetypes"
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/leveldata"
	"github.com/automoto/shoutybird/shared/messages"
	"github.com/yohamta/donburi"
)

// CreateGame spawns the singleton holding round state, the clock, the
// obstacle spawner and the input action queue.
func CreateGame(w donburi.World, seed uint64, course *leveldata.Course, queue *messages.ActionQueue) *donburi.Entry {
	game := archetypes.Game.Spawn(w)

	if queue == nil {
		queue = messages.NewActionQueue()
	}
	components.ActionQueue.SetValue(game, components.ActionQueueData{ActionQueue: queue})
	components.Clock.SetValue(game, components.ClockData{IntervalMs: cfg.C.TickIntervalMs()})
	components.Spawner.SetValue(game, components.SpawnerData{
		Course: course,
		Seed:   seed,
		Rand:   NewSpawnerRand(seed),
		// First pipe arrives without waiting a full interval
		SinceSpawnMs: cfg.Obstacle.SpawnEveryMs,
	})
	components.Settings.SetValue(game, components.SettingsData{Debug: cfg.Debug.ShowBoxes})

	return game
}

// NewSpawnerRand returns the gap generator for a seed. The same seed always
// yields the same gap sequence.
func NewSpawnerRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
