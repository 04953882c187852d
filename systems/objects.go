package systems

import (
	"github.com/automoto/shoutybird/components"
	"github.com/automoto/shoutybird/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves each resolv proxy onto its unit's bounding box.
func UpdateObjects(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Unit) {
			return
		}
		factory.SyncObject(obj.Object, components.Unit.Get(e).Unit)
		if obj.Space != nil {
			obj.Update()
		}
	})
}
