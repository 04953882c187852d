package systems

import (
	"github.com/automoto/shoutybird/components"
	"github.com/automoto/shoutybird/systems/factory"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

// UpdateScore awards a point once the bird is fully past an obstacle pair.
func UpdateScore(w donburi.World) {
	state := GetGameState(w)
	if state == nil {
		return
	}
	birdEntry, ok := tags.Bird.First(w)
	if !ok {
		return
	}
	birdBox := components.Unit.Get(birdEntry).BoundingBox()

	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		if !obstacle.Top || obstacle.Passed {
			return
		}
		if components.Unit.Get(e).BoundingBox().X2 >= birdBox.X1 {
			return
		}
		obstacle.Passed = true
		state.Score++
		components.Scored.Publish(w, components.ScoredEvent{Pair: obstacle.Pair, Score: state.Score})
	})
}

// UpdateCull removes obstacles that have scrolled off the left edge.
func UpdateCull(w donburi.World) {
	var gone []*donburi.Entry
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		if components.Unit.Get(e).BoundingBox().X2 < 0 {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.DestroyUnit(w, e)
	}
}
