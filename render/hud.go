package render

import (
	"fmt"

	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/fonts"
	"github.com/automoto/shoutybird/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the score and best score in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	state := systems.GetGameState(e.World)
	if state == nil {
		return
	}
	face := fonts.HUD.Get()
	line := face.Metrics().Height.Ceil()

	text.Draw(screen, fmt.Sprintf("Score %d", state.Score), face, hudMargin, hudMargin+line, cfg.UI.HUDTextColor)
	text.Draw(screen, fmt.Sprintf("Best %d", state.Best), face, hudMargin, hudMargin+2*line, cfg.UI.HUDTextColor)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y int) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, cfg.UI.HUDTextColor)
}
