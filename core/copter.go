// Package core drives the simulations at a fixed tick interval.
package core

import (
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/gamemath"
	"github.com/automoto/shoutybird/shared/messages"
	"github.com/automoto/shoutybird/shared/unit"
)

// Copter is the single-craft prototype: one unit under gravity whose vertical
// velocity a jump overrides. Velocity and position are stepped separately so a
// jump queued during the previous interval takes effect before the move.
type Copter struct {
	craft   *unit.Unit
	actions *messages.ActionQueue

	deltaVelocity gamemath.Vector
	deltaPosition gamemath.Vector
	elapsedMs     float64
	ticks         uint64
	jumps         uint64
}

// NewCopter creates a craft at the configured start position. actions may be
// shared with an input goroutine; nil gets a private queue.
func NewCopter(actions *messages.ActionQueue) *Copter {
	if actions == nil {
		actions = messages.NewActionQueue()
	}
	craft := unit.New(unit.KindCraft, gamemath.Vec(cfg.Copter.StartX, cfg.Copter.StartY), cfg.Copter.Width, cfg.Copter.Height)
	craft.SetScaleFactor(cfg.Copter.ScaleFactor)
	craft.SetAcceleration(gamemath.Vec(0, cfg.Physics.Gravity))
	return &Copter{craft: craft, actions: actions}
}

func (c *Copter) Craft() *unit.Unit              { return c.craft }
func (c *Copter) Actions() *messages.ActionQueue { return c.actions }
func (c *Copter) DeltaVelocity() gamemath.Vector { return c.deltaVelocity }
func (c *Copter) DeltaPosition() gamemath.Vector { return c.deltaPosition }
func (c *Copter) ElapsedMs() float64             { return c.elapsedMs }
func (c *Copter) Ticks() uint64                  { return c.ticks }
func (c *Copter) Jumps() uint64                  { return c.jumps }

// Jump queues a jump for the next tick. Safe to call from any goroutine.
func (c *Copter) Jump() {
	c.actions.Enqueue(cfg.ActionJump)
}

// Tick advances the craft by intervalMs. Callers serialize ticks; GameLoop
// does that with its busy guard.
func (c *Copter) Tick(intervalMs float64) {
	u := c.craft
	if u.Disposed() {
		return
	}

	oldVelocity := u.Velocity()
	u.SetVelocity(gamemath.StepVelocity(u.Acceleration(), oldVelocity, intervalMs))
	c.deltaVelocity = gamemath.Delta(oldVelocity, u.Velocity())
	u.RaisePropertyChanged(unit.PropertyDeltaVelocity)

	for _, action := range c.actions.Drain() {
		if action != cfg.ActionJump {
			continue
		}
		v := u.Velocity()
		u.SetVelocity(gamemath.Vec(v.X, cfg.Physics.JumpVelocity))
		c.jumps++
	}

	oldPosition := u.Position()
	u.SetPosition(gamemath.StepPosition(u.Acceleration(), u.Velocity(), oldPosition, intervalMs))
	c.deltaPosition = gamemath.Delta(oldPosition, u.Position())
	u.RaisePropertyChanged(unit.PropertyDeltaPosition)

	c.elapsedMs += intervalMs
	c.ticks++
}

// Dispose releases the craft's observers.
func (c *Copter) Dispose() {
	c.craft.Dispose()
}
