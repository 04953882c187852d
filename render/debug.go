package render

import (
	"fmt"

	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/core"
	"github.com/automoto/shoutybird/fonts"
	"github.com/automoto/shoutybird/systems"
	"github.com/automoto/shoutybird/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug returns a renderer that outlines every collision proxy and
// prints the loop and event counters. loopStats may be nil.
func NewDrawDebug(loopStats func() core.LoopStats) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Settings.First(e.World)
		if !ok || !components.Settings.Get(entry).Debug {
			return
		}

		spaceEntry, ok := components.Space.First(e.World)
		if ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				c := cfg.UI.DebugBoxColor
				if obj.HasTags(tags.ResolvBird) {
					c = cfg.UI.HUDTextColor
				}
				x, y := float32(obj.X), float32(obj.Y)
				w, h := float32(obj.W), float32(obj.H)
				vector.DrawFilledRect(screen, x, y, w, 1, c, false)     // Top
				vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false) // Bottom
				vector.DrawFilledRect(screen, x, y, 1, h, c, false)     // Left
				vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false) // Right
			}
		}

		line := fmt.Sprintf("tps %.0f", ebiten.ActualTPS())
		if clock := systems.GetClock(e.World); clock != nil {
			line += fmt.Sprintf("  tick %d  t %.1fs", clock.Tick, clock.ElapsedMs/1000)
		}
		if stats := systems.GetStats(e.World); stats != nil {
			line += fmt.Sprintf("  updates %d  hits %d", stats.UnitUpdates, stats.Collisions)
		}
		if loopStats != nil {
			s := loopStats()
			line += fmt.Sprintf("  skipped %d", s.Skipped)
		}
		text.Draw(screen, line, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.UI.HUDTextColor)
	}
}
