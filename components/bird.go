package components

import (
	"github.com/automoto/shoutybird/assets/animations"
	"github.com/yohamta/donburi"
)

type BirdData struct {
	Jumps int

	// Flap plays once per jump; the renderer offsets the wing by its frame
	Flap *animations.Animation
}

var Bird = donburi.NewComponentType[BirdData]()
