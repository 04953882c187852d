package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/fonts"
	"github.com/automoto/shoutybird/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay fades the game-over screen in once per finished round and
// drops it when a new round starts. It runs once per frame.
func UpdateOverlay(e *ecs.ECS) {
	overlay := getOrCreateOverlay(e.World)
	state := systems.GetGameState(e.World)
	if state == nil || !state.Over {
		overlay.Fade = nil
		overlay.Alpha = 0
		return
	}
	if overlay.Fade == nil {
		overlay.Fade = gween.New(0, 1, cfg.UI.OverlayFadeSecs, ease.OutQuad)
	}
	alpha, _ := overlay.Fade.Update(1 / float32(ebiten.TPS()))
	overlay.Alpha = alpha
}

// DrawOverlay dims the playfield and shows the round result.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	if overlay.Alpha <= 0 {
		return
	}
	state := systems.GetGameState(e.World)
	if state == nil {
		return
	}

	c := cfg.UI.OverlayColor
	fill := color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * overlay.Alpha)}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fill, false)

	if overlay.Alpha < 1 {
		return
	}
	drawCentered(screen, "GAME OVER", fonts.Title, h/2-20)
	drawCentered(screen, fmt.Sprintf("%s - score %d", state.Reason, state.Score), fonts.HUD, h/2+10)
	drawCentered(screen, "press space to fly again", fonts.Small, h/2+34)
}

func getOrCreateOverlay(w donburi.World) *components.OverlayData {
	entry, ok := components.Overlay.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Overlay))
	}
	return components.Overlay.Get(entry)
}
