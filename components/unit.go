package components

import (
	"github.com/automoto/shoutybird/shared/unit"
	"github.com/yohamta/donburi"
)

// UnitData points at the entity's kinematic state. The pointer stays stable
// when donburi moves component storage around.
type UnitData struct {
	*unit.Unit
}

var Unit = donburi.NewComponentType[UnitData]()
