package systems

import (
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/gamemath"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions finds birds overlapping obstacles and tells both units.
// The resolv space narrows candidates to shared cells; bounding boxes decide.
func UpdateCollisions(w donburi.World) {
	tags.Bird.Each(w, func(e *donburi.Entry) {
		bird := components.Unit.Get(e)
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			return
		}

		check := obj.Check(0, 0, tags.ResolvObstacle)
		if check == nil {
			return
		}
		for _, candidate := range check.ObjectsByTags(tags.ResolvObstacle) {
			entity, ok := candidate.Data.(donburi.Entity)
			if !ok || !w.Valid(entity) {
				continue
			}
			other := components.Unit.Get(w.Entry(entity))
			if !bird.BoundingBox().Overlaps(other.BoundingBox()) {
				continue
			}
			bird.Collide(other.Unit)
			other.Collide(bird.Unit)
		}
	})
}

// UpdateBounds ends the round when the bird leaves the playfield vertically.
func UpdateBounds(w donburi.World) {
	field := gamemath.BoundingBox{X1: 0, Y1: 0, X2: cfg.World.Width, Y2: cfg.World.Height}
	tags.Bird.Each(w, func(e *donburi.Entry) {
		box := components.Unit.Get(e).BoundingBox()
		if box.Y1 < field.Y1 || box.Y2 > field.Y2 {
			EndRound(w, "out of bounds")
		}
	})
}
