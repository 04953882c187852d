package factory

import (
	"github.com/automoto/shoutybird/archetypes"
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/gamemath"
	"github.com/automoto/shoutybird/shared/leveldata"
	"github.com/automoto/shoutybird/shared/unit"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

// CreateObstaclePair spawns a top and bottom pipe at x leaving gap open
// between them. Either half is skipped when it would have no height.
func CreateObstaclePair(w donburi.World, pair int, x float64, gap leveldata.Gap) (top, bottom *donburi.Entry) {
	if gap.Top > 0 {
		top = createObstacle(w, pair, true, gamemath.Vec(x, 0), gap.Top)
	}
	bottomY := gap.Top + gap.Height
	if h := cfg.World.Height - bottomY; h > 0 {
		bottom = createObstacle(w, pair, top == nil, gamemath.Vec(x, bottomY), h)
	}
	return top, bottom
}

func createObstacle(w donburi.World, pair int, scoring bool, pos gamemath.Vector, height float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)

	components.Obstacle.SetValue(obstacle, components.ObstacleData{Pair: pair, Top: scoring})
	components.Sprite.SetValue(obstacle, components.SpriteData{Color: cfg.Obstacle.Color})

	u := unit.New(unit.KindObstacle, pos, cfg.Obstacle.Width, height)
	u.SetScaleFactor(cfg.Display.ScaleFactor)
	u.SetVelocity(gamemath.Vec(cfg.Obstacle.Speed, 0))
	attachUnit(w, obstacle, u, tags.ResolvUnit, tags.ResolvObstacle)

	return obstacle
}
