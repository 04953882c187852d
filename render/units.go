package render

import (
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground clears the playfield.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

// DrawSprites draws every cached sprite rect. Sprites are kept current by the
// units' change notifications, so nothing here touches unit state.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		s := components.Sprite.Get(entry)
		if s.Width <= 0 || s.Height <= 0 {
			return
		}
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), s.Color, false)
	})
}

// wingLift is the wing's vertical offset per flap frame, as a fraction of the
// bird's height.
var wingLift = []float64{0, -0.3, -0.15, 0.15}

// UpdateFlaps advances every bird's wing animation by one frame.
func UpdateFlaps(e *ecs.ECS) {
	tags.Bird.Each(e.World, func(entry *donburi.Entry) {
		if flap := components.Bird.Get(entry).Flap; flap != nil {
			flap.Update()
		}
	})
}

// DrawWings draws each bird's wing over its body.
func DrawWings(e *ecs.ECS, screen *ebiten.Image) {
	tags.Bird.Each(e.World, func(entry *donburi.Entry) {
		flap := components.Bird.Get(entry).Flap
		s := components.Sprite.Get(entry)
		lift := 0.0
		if flap != nil && flap.Frame() < len(wingLift) {
			lift = wingLift[flap.Frame()] * s.Height
		}
		vector.DrawFilledRect(screen,
			float32(s.X), float32(s.Y+s.Height*0.4+lift),
			float32(s.Width*0.6), float32(s.Height*0.3),
			cfg.Bird.WingColor, false)
	})
}
