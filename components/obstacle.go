package components

import "github.com/yohamta/donburi"

type ObstacleData struct {
	Pair   int  // spawn sequence number shared by the top and bottom pipe
	Top    bool // the scoring half of the pair
	Passed bool
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
