package factory

import (
	"math"

	"github.com/automoto/shoutybird/archetypes"
	"github.com/automoto/shoutybird/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision grid covering width x height pixels.
func CreateSpace(w donburi.World, width, height float64, cellSize int) *donburi.Entry {
	if cellSize <= 0 {
		cellSize = 1
	}
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}
