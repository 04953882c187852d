// Package unit holds the kinematic state of a single moving, collidable game
// object and the notifications it raises as that state changes.
//
// A Unit is owned by one simulation goroutine; it does no locking of its own.
package unit

import (
	"github.com/automoto/shoutybird/shared/gamemath"
)

// Kind identifies what a unit represents in the scene.
type Kind int

const (
	KindBird Kind = iota
	KindObstacle
	KindCraft
)

func (k Kind) String() string {
	switch k {
	case KindBird:
		return "bird"
	case KindObstacle:
		return "obstacle"
	case KindCraft:
		return "craft"
	default:
		return "unknown"
	}
}

// Unit is a moving entity: position, velocity and acceleration in game units
// (per second where applicable), a size, and a display scale.
type Unit struct {
	kind Kind

	position     gamemath.Vector
	velocity     gamemath.Vector
	acceleration gamemath.Vector
	width        float64
	height       float64
	scaleFactor  float64
	box          gamemath.BoundingBox

	observers []registration
	nextID    uint64
	disposed  bool
}

// New creates a unit of the given kind at position with the given size.
func New(kind Kind, position gamemath.Vector, width, height float64) *Unit {
	u := &Unit{
		kind:        kind,
		position:    position,
		width:       width,
		height:      height,
		scaleFactor: 1,
	}
	u.updateBox()
	return u
}

func (u *Unit) Kind() Kind                        { return u.kind }
func (u *Unit) Position() gamemath.Vector         { return u.position }
func (u *Unit) Velocity() gamemath.Vector         { return u.velocity }
func (u *Unit) Acceleration() gamemath.Vector     { return u.acceleration }
func (u *Unit) Width() float64                    { return u.width }
func (u *Unit) Height() float64                   { return u.height }
func (u *Unit) ScaleFactor() float64              { return u.scaleFactor }
func (u *Unit) BoundingBox() gamemath.BoundingBox { return u.box }
func (u *Unit) Disposed() bool                    { return u.disposed }

// DisplayPosition is the position scaled for rendering.
func (u *Unit) DisplayPosition() gamemath.Vector {
	return gamemath.ToDisplayUnits(u.position, u.scaleFactor)
}

// DisplayWidth is the width scaled for rendering.
func (u *Unit) DisplayWidth() float64 {
	return gamemath.ToDisplayLength(u.width, u.scaleFactor)
}

// DisplayHeight is the height scaled for rendering.
func (u *Unit) DisplayHeight() float64 {
	return gamemath.ToDisplayLength(u.height, u.scaleFactor)
}

// SetPosition moves the unit. The bounding box is recomputed before any
// observer hears about the move.
func (u *Unit) SetPosition(v gamemath.Vector) {
	if gamemath.SameVector(u.position, v) {
		return
	}
	prev := u.position
	u.position = v
	u.updateBox()
	u.RaisePropertyChanged(PropertyDisplayPosition)
	u.emitPositionChanged(prev, v)
}

func (u *Unit) SetVelocity(v gamemath.Vector) {
	if gamemath.SameVector(u.velocity, v) {
		return
	}
	u.velocity = v
	u.RaisePropertyChanged(PropertyVelocity)
}

// SetAcceleration stores the acceleration; it raises no notification.
func (u *Unit) SetAcceleration(v gamemath.Vector) {
	u.acceleration = v
}

func (u *Unit) SetWidth(w float64) {
	if gamemath.SameFloat(u.width, w) {
		return
	}
	u.width = w
	u.updateBox()
	u.RaisePropertyChanged(PropertyDisplayWidth)
}

func (u *Unit) SetHeight(h float64) {
	if gamemath.SameFloat(u.height, h) {
		return
	}
	u.height = h
	u.updateBox()
	u.RaisePropertyChanged(PropertyDisplayHeight)
}

// SetScaleFactor changes the display scale. Simulation state is unaffected.
func (u *Unit) SetScaleFactor(s float64) {
	if gamemath.SameFloat(u.scaleFactor, s) {
		return
	}
	u.scaleFactor = s
	u.RaisePropertyChanged(PropertyScaleFactor)
}

// Update advances the unit by intervalMs milliseconds. Observers hear Updated
// before anything moves; velocity is fully updated before the position step
// reads it. A disposed unit does not move.
func (u *Unit) Update(intervalMs float64) {
	if u.disposed {
		return
	}
	u.emitUpdated()

	u.SetVelocity(gamemath.StepVelocity(u.acceleration, u.velocity, intervalMs))
	u.SetPosition(gamemath.StepPosition(u.acceleration, u.velocity, u.position, intervalMs))
}

// Collide reports a collision with other to this unit's observers. Detecting
// the collision is up to the caller.
func (u *Unit) Collide(other *Unit) {
	u.emitCollision(other)
}

// Dispose drops every observer and stops the unit from updating. Calling it
// more than once is harmless.
func (u *Unit) Dispose() {
	if u.disposed {
		return
	}
	u.disposed = true
	u.observers = nil
}

func (u *Unit) updateBox() {
	u.box = gamemath.BoxAt(u.position, u.width, u.height)
}
