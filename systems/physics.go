package systems

import (
	"github.com/automoto/shoutybird/components"
	"github.com/yohamta/donburi"
)

// UpdateUnits steps every unit by the clock's interval. The interval is
// trusted as elapsed time; nothing here reads the wall clock.
func UpdateUnits(w donburi.World) {
	clock := GetClock(w)
	if clock == nil {
		return
	}
	components.Unit.Each(w, func(e *donburi.Entry) {
		components.Unit.Get(e).Update(clock.IntervalMs)
	})
}
