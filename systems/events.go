package systems

import (
	"log"

	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/unit"
	"github.com/yohamta/donburi"
)

// ProcessEvents delivers everything published during the tick. RoundOver goes
// last because collision subscribers publish it.
func ProcessEvents(w donburi.World) {
	components.UnitUpdated.ProcessEvents(w)
	components.Collision.ProcessEvents(w)
	components.Scored.ProcessEvents(w)
	components.RoundOver.ProcessEvents(w)
}

// RegisterSubscribers wires the game's event consumers into w. store may be
// nil, in which case scores are not persisted.
func RegisterSubscribers(w donburi.World, store ScoreStore) {
	components.UnitUpdated.Subscribe(w, countUpdate)
	components.Collision.Subscribe(w, onCollision)
	components.Scored.Subscribe(w, onScored)
	components.RoundOver.Subscribe(w, func(w donburi.World, event components.RoundOverEvent) {
		onRoundOver(w, event, store)
	})
}

func countUpdate(w donburi.World, _ components.UnitUpdatedEvent) {
	if stats := GetStats(w); stats != nil {
		stats.UnitUpdates++
	}
}

func onCollision(w donburi.World, event components.CollisionEvent) {
	if stats := GetStats(w); stats != nil {
		stats.Collisions++
	}
	if cfg.Debug.LogEvents {
		log.Printf("Collision: %s hit %s", event.Unit.Kind(), event.Other.Kind())
	}
	if event.Unit.Kind() == unit.KindBird {
		EndRound(w, "collision")
	}
}

func onScored(w donburi.World, event components.ScoredEvent) {
	if cfg.Debug.LogEvents {
		log.Printf("Scored: pair %d, score %d", event.Pair, event.Score)
	}
}

func onRoundOver(w donburi.World, event components.RoundOverEvent, store ScoreStore) {
	state := GetGameState(w)
	if state == nil {
		return
	}
	log.Printf("Round over (%s): score %d, best %d", event.Reason, event.Score, state.Best)
	if store == nil {
		return
	}
	if err := SaveScores(store, &SavedScores{Best: state.Best, Rounds: state.Rounds}); err != nil {
		return
	}
	log.Printf("Saved best score %d", state.Best)
}

// GetStats returns the event counters, or nil before the game entity exists.
func GetStats(w donburi.World) *components.StatsData {
	entry, ok := components.Stats.First(w)
	if !ok {
		return nil
	}
	return components.Stats.Get(entry)
}
