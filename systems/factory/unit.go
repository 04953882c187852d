package factory

import (
	"github.com/automoto/shoutybird/components"
	"github.com/automoto/shoutybird/shared/unit"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// attachUnit stores u on the entry, gives it a resolv proxy in the space (if
// one exists) and bridges its notifications into the world's event queues and
// sprite cache.
func attachUnit(w donburi.World, entry *donburi.Entry, u *unit.Unit, resolvTags ...string) {
	entity := entry.Entity()
	components.Unit.SetValue(entry, components.UnitData{Unit: u})

	obj := resolv.NewObject(0, 0, 0, 0, resolvTags...)
	obj.Data = entity // Link for O(1) lookup
	SyncObject(obj, u)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	refreshSprite(w, entity, u)
	u.Subscribe(unit.Funcs{
		OnUpdated: func(u *unit.Unit) {
			components.UnitUpdated.Publish(w, components.UnitUpdatedEvent{Entity: entity, Kind: u.Kind()})
		},
		OnCollision: func(u *unit.Unit, other *unit.Unit) {
			components.Collision.Publish(w, components.CollisionEvent{Entity: entity, Unit: u, Other: other})
		},
		OnPropertyChanged: func(u *unit.Unit, p unit.Property) {
			switch p {
			case unit.PropertyDisplayPosition, unit.PropertyDisplayWidth,
				unit.PropertyDisplayHeight, unit.PropertyScaleFactor:
				refreshSprite(w, entity, u)
			}
		},
	})
}

// SyncObject places obj over u's bounding box in display pixels. resolv drops
// an object's last pixel row and column when picking cells, so the proxy is
// one pixel larger than the box.
func SyncObject(obj *resolv.Object, u *unit.Unit) {
	pos := u.DisplayPosition()
	obj.X = pos.X
	obj.Y = pos.Y
	obj.W = u.DisplayWidth() + 1
	obj.H = u.DisplayHeight() + 1
}

func refreshSprite(w donburi.World, entity donburi.Entity, u *unit.Unit) {
	if !w.Valid(entity) {
		return
	}
	sprite := components.Sprite.Get(w.Entry(entity))
	pos := u.DisplayPosition()
	sprite.X = pos.X
	sprite.Y = pos.Y
	sprite.Width = u.DisplayWidth()
	sprite.Height = u.DisplayHeight()
}

// DestroyUnit releases everything attachUnit set up and removes the entity.
func DestroyUnit(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	if entry.HasComponent(components.Unit) {
		if u := components.Unit.Get(entry); u.Unit != nil {
			u.Dispose()
		}
	}
	w.Remove(entry.Entity())
}
