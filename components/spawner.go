package components

import (
	"math/rand/v2"

	"github.com/automoto/shoutybird/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SpawnerData drives obstacle generation. Gaps come from Course when set,
// otherwise from Rand, which is reseeded from Seed every round.
type SpawnerData struct {
	SinceSpawnMs float64
	Spawned      int
	Course       *leveldata.Course
	Seed         uint64
	Rand         *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
