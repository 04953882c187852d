package systems

import (
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/leveldata"
	"github.com/automoto/shoutybird/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateSpawner releases a new obstacle pair at the right edge every
// SpawnEveryMs of simulated time.
func UpdateSpawner(w donburi.World) {
	entry, ok := components.Spawner.First(w)
	if !ok {
		return
	}
	clock := GetClock(w)
	if clock == nil {
		return
	}
	spawner := components.Spawner.Get(entry)
	spawner.SinceSpawnMs += clock.IntervalMs
	if spawner.SinceSpawnMs < cfg.Obstacle.SpawnEveryMs {
		return
	}
	spawner.SinceSpawnMs -= cfg.Obstacle.SpawnEveryMs

	factory.CreateObstaclePair(w, spawner.Spawned, cfg.World.Width, nextGap(spawner))
	spawner.Spawned++
}

func nextGap(spawner *components.SpawnerData) leveldata.Gap {
	if gap, ok := spawner.Course.At(spawner.Spawned); ok {
		return gap
	}
	top := cfg.Obstacle.MinGapY
	if spread := cfg.Obstacle.MaxGapY - cfg.Obstacle.MinGapY; spread > 0 && spawner.Rand != nil {
		top += spawner.Rand.Float64() * spread
	}
	return leveldata.Gap{Top: top, Height: cfg.Obstacle.GapHeight}
}
