package factory

import (
	"github.com/automoto/shoutybird/archetypes"
	"github.com/automoto/shoutybird/assets/animations"
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/gamemath"
	"github.com/automoto/shoutybird/shared/unit"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

// CreateBird spawns the player's bird at its configured start, falling under gravity.
func CreateBird(w donburi.World) *donburi.Entry {
	bird := archetypes.Bird.Spawn(w)

	components.Sprite.SetValue(bird, components.SpriteData{Color: cfg.Bird.Color})
	components.Bird.SetValue(bird, components.BirdData{
		Flap: animations.NewAnimation(0, cfg.Bird.FlapFrames-1, cfg.Bird.TicksPerFrame, true),
	})

	u := unit.New(unit.KindBird, gamemath.Vec(cfg.Bird.StartX, cfg.Bird.StartY), cfg.Bird.Width, cfg.Bird.Height)
	u.SetScaleFactor(cfg.Display.ScaleFactor)
	u.SetAcceleration(gamemath.Vec(0, cfg.Physics.Gravity))
	attachUnit(w, bird, u, tags.ResolvUnit, tags.ResolvBird)

	return bird
}
