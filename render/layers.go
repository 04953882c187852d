// Package render draws the ShoutyBird world. It only reads components; the
// simulation never calls into it.
package render

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerOverlay
	LayerDebug
)
