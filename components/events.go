package components

import (
	"github.com/automoto/shoutybird/shared/unit"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UnitUpdatedEvent is published once per unit per integration step.
type UnitUpdatedEvent struct {
	Entity donburi.Entity
	Kind   unit.Kind
}

// CollisionEvent is published once per unit involved in a collision.
type CollisionEvent struct {
	Entity donburi.Entity
	Unit   *unit.Unit
	Other  *unit.Unit
}

// RoundOverEvent is published when the bird is lost.
type RoundOverEvent struct {
	Reason string
	Score  int
}

// ScoredEvent is published when the bird clears an obstacle pair.
type ScoredEvent struct {
	Pair  int
	Score int
}

var (
	UnitUpdated = events.NewEventType[UnitUpdatedEvent]()
	Collision   = events.NewEventType[CollisionEvent]()
	RoundOver   = events.NewEventType[RoundOverEvent]()
	Scored      = events.NewEventType[ScoredEvent]()
)
