package tags

import "github.com/yohamta/donburi"

var (
	Bird     = donburi.NewTag().SetName("Bird")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for broad-phase collision
const (
	ResolvUnit     = "unit"
	ResolvBird     = "bird"
	ResolvObstacle = "obstacle"
)
