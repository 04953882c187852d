package systems

import (
	"log"

	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/systems/factory"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

// GetGameState returns the singleton round state, or nil before the game entity exists.
func GetGameState(w donburi.World) *components.GameStateData {
	entry, ok := components.GameState.First(w)
	if !ok {
		return nil
	}
	return components.GameState.Get(entry)
}

// GetClock returns the singleton simulation clock, or nil before the game entity exists.
func GetClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

// UpdateClock accumulates simulated play time. Paused and finished rounds
// don't count.
func UpdateClock(w donburi.World) {
	if clock := GetClock(w); clock != nil {
		clock.ElapsedMs += clock.IntervalMs
	}
}

// EndRound marks the round as lost. Only the first call per round has an effect.
func EndRound(w donburi.World, reason string) {
	state := GetGameState(w)
	if state == nil || state.Over {
		return
	}
	state.Over = true
	state.Reason = reason
	if state.Score > state.Best {
		state.Best = state.Score
	}
	components.RoundOver.Publish(w, components.RoundOverEvent{Reason: reason, Score: state.Score})
}

// Restart clears every unit, rewinds the clock and spawner, and spawns a
// fresh bird.
func Restart(w donburi.World) {
	var doomed []*donburi.Entry
	components.Unit.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		factory.DestroyUnit(w, e)
	}

	if entry, ok := components.Spawner.First(w); ok {
		spawner := components.Spawner.Get(entry)
		spawner.Spawned = 0
		spawner.SinceSpawnMs = cfg.Obstacle.SpawnEveryMs
		spawner.Rand = factory.NewSpawnerRand(spawner.Seed)
	}
	if clock := GetClock(w); clock != nil {
		clock.ElapsedMs = 0
	}
	if state := GetGameState(w); state != nil {
		state.Over = false
		state.Paused = false
		state.Reason = ""
		state.Score = 0
		state.Rounds++
		log.Printf("Round %d started (best %d)", state.Rounds, state.Best)
	}
	factory.CreateBird(w)
}

// BirdCount reports how many birds are alive.
func BirdCount(w donburi.World) int {
	n := 0
	tags.Bird.Each(w, func(*donburi.Entry) { n++ })
	return n
}
