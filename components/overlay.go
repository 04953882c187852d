package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData fades the game-over screen in.
type OverlayData struct {
	Fade  *gween.Tween
	Alpha float32
}

var Overlay = donburi.NewComponentType[OverlayData]()
