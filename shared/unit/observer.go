package unit

import "github.com/automoto/shoutybird/shared/gamemath"

// Property names a value whose change renderers care about.
type Property int

const (
	PropertyDisplayPosition Property = iota
	PropertyVelocity
	PropertyScaleFactor
	PropertyDisplayWidth
	PropertyDisplayHeight
	PropertyDeltaVelocity
	PropertyDeltaPosition
)

var propertyNames = [...]string{
	PropertyDisplayPosition: "DisplayPosition",
	PropertyVelocity:        "Velocity",
	PropertyScaleFactor:     "ScaleFactor",
	PropertyDisplayWidth:    "DisplayWidth",
	PropertyDisplayHeight:   "DisplayHeight",
	PropertyDeltaVelocity:   "DeltaVelocity",
	PropertyDeltaPosition:   "DeltaPosition",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return "Unknown"
	}
	return propertyNames[p]
}

// Observer receives a unit's notifications, synchronously and in the order
// observers subscribed.
type Observer interface {
	Updated(u *Unit)
	PositionChanged(u *Unit, prev, cur gamemath.Vector)
	Collided(u *Unit, other *Unit)
	PropertyChanged(u *Unit, p Property)
}

// Funcs adapts plain functions to Observer. Nil fields are ignored.
type Funcs struct {
	OnUpdated         func(u *Unit)
	OnPositionChanged func(u *Unit, prev, cur gamemath.Vector)
	OnCollision       func(u *Unit, other *Unit)
	OnPropertyChanged func(u *Unit, p Property)
}

func (f Funcs) Updated(u *Unit) {
	if f.OnUpdated != nil {
		f.OnUpdated(u)
	}
}

func (f Funcs) PositionChanged(u *Unit, prev, cur gamemath.Vector) {
	if f.OnPositionChanged != nil {
		f.OnPositionChanged(u, prev, cur)
	}
}

func (f Funcs) Collided(u *Unit, other *Unit) {
	if f.OnCollision != nil {
		f.OnCollision(u, other)
	}
}

func (f Funcs) PropertyChanged(u *Unit, p Property) {
	if f.OnPropertyChanged != nil {
		f.OnPropertyChanged(u, p)
	}
}

type registration struct {
	id       uint64
	observer Observer
}

// Subscription removes its observer when cancelled.
type Subscription struct {
	unit *Unit
	id   uint64
}

// Cancel unsubscribes the observer. Cancelling twice, or after the unit was
// disposed, does nothing.
func (s Subscription) Cancel() {
	if s.unit == nil {
		return
	}
	obs := s.unit.observers
	for i, r := range obs {
		if r.id == s.id {
			// Copy so an in-flight emit keeps iterating its own snapshot.
			next := make([]registration, 0, len(obs)-1)
			next = append(next, obs[:i]...)
			next = append(next, obs[i+1:]...)
			s.unit.observers = next
			return
		}
	}
}

// Subscribe registers o for every notification this unit raises. A disposed
// unit accepts no observers.
func (u *Unit) Subscribe(o Observer) Subscription {
	if u.disposed || o == nil {
		return Subscription{}
	}
	u.nextID++
	u.observers = append(u.observers, registration{id: u.nextID, observer: o})
	return Subscription{unit: u, id: u.nextID}
}

// RaisePropertyChanged notifies observers that p changed. Composites built
// around a unit use it for values they derive themselves.
func (u *Unit) RaisePropertyChanged(p Property) {
	for _, r := range u.observers {
		r.observer.PropertyChanged(u, p)
	}
}

func (u *Unit) emitUpdated() {
	for _, r := range u.observers {
		r.observer.Updated(u)
	}
}

func (u *Unit) emitPositionChanged(prev, cur gamemath.Vector) {
	for _, r := range u.observers {
		r.observer.PositionChanged(u, prev, cur)
	}
}

func (u *Unit) emitCollision(other *Unit) {
	for _, r := range u.observers {
		r.observer.Collided(u, other)
	}
}
