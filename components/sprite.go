package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData caches what the renderer draws. It is refreshed from unit
// change notifications, never polled.
type SpriteData struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
