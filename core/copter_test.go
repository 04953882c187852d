package core

import (
	"math"
	"sync"
	"testing"

	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/gamemath"
	"github.com/automoto/shoutybird/shared/unit"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCopterJumpOverridesVelocity(t *testing.T) {
	c := NewCopter(nil)
	c.Jump()
	c.Tick(10)

	if got := c.Craft().Velocity().Y; got != cfg.Physics.JumpVelocity {
		t.Fatalf("velocity after jump = %v, want %v", got, cfg.Physics.JumpVelocity)
	}
	// 9.8*0.01^2 + -10*0.01
	if got := c.Craft().Position().Y; !near(got, -0.09902) {
		t.Fatalf("position after jump = %v, want -0.09902", got)
	}
	if c.Jumps() != 1 {
		t.Fatalf("jumps = %d, want 1", c.Jumps())
	}
}

func TestCopterJumpsReplaceNotAccumulate(t *testing.T) {
	c := NewCopter(nil)
	c.Jump()
	c.Jump()
	c.Jump()
	c.Tick(10)

	if got := c.Craft().Velocity().Y; got != cfg.Physics.JumpVelocity {
		t.Fatalf("velocity after three jumps = %v, want %v", got, cfg.Physics.JumpVelocity)
	}
	if c.Actions().Len() != 0 {
		t.Fatalf("queue not drained: %d left", c.Actions().Len())
	}
}

func TestCopterDeltasAndElapsed(t *testing.T) {
	c := NewCopter(nil)
	var props []unit.Property
	c.Craft().Subscribe(unit.Funcs{
		OnPropertyChanged: func(_ *unit.Unit, p unit.Property) {
			props = append(props, p)
		},
	})

	c.Tick(10)

	if dv := c.DeltaVelocity(); !near(dv.Y, 0.098) || dv.X != 0 {
		t.Fatalf("delta velocity = %+v, want (0, 0.098)", dv)
	}
	// velocity is updated first, so the position step reads 0.098
	if dp := c.DeltaPosition(); !near(dp.Y, 0.00098+0.00098) || dp.X != 0 {
		t.Fatalf("delta position = %+v, want (0, 0.00196)", dp)
	}
	if c.ElapsedMs() != 10 || c.Ticks() != 1 {
		t.Fatalf("elapsed %v ticks %d, want 10 and 1", c.ElapsedMs(), c.Ticks())
	}

	want := []unit.Property{
		unit.PropertyVelocity,
		unit.PropertyDeltaVelocity,
		unit.PropertyDisplayPosition,
		unit.PropertyDeltaPosition,
	}
	if len(props) != len(want) {
		t.Fatalf("properties = %v, want %v", props, want)
	}
	for i := range want {
		if props[i] != want[i] {
			t.Fatalf("properties = %v, want %v", props, want)
		}
	}
}

func TestCopterTwoTicksMatchTwoSteps(t *testing.T) {
	c := NewCopter(nil)
	c.Tick(10)
	c.Tick(10)

	a := gamemath.Vec(0, cfg.Physics.Gravity)
	v := gamemath.Vector{}
	p := gamemath.Vec(cfg.Copter.StartX, cfg.Copter.StartY)
	for i := 0; i < 2; i++ {
		v = gamemath.StepVelocity(a, v, 10)
		p = gamemath.StepPosition(a, v, p, 10)
	}

	got := c.Craft().Position()
	if !near(got.X, p.X) || !near(got.Y, p.Y) {
		t.Fatalf("position after two ticks = %+v, want %+v", got, p)
	}
	if c.ElapsedMs() != 20 {
		t.Fatalf("elapsed = %v, want 20", c.ElapsedMs())
	}
}

func TestSkippedTickLeavesQueueAndState(t *testing.T) {
	c := NewCopter(nil)
	loop := NewGameLoop(c, 0)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.Craft().Subscribe(unit.Funcs{
		// Blocks after the first tick has drained the queue
		OnPositionChanged: func(*unit.Unit, gamemath.Vector, gamemath.Vector) {
			once.Do(func() {
				close(entered)
				<-release
			})
		},
	})

	done := make(chan bool)
	go func() {
		done <- loop.TickOnce()
	}()
	<-entered

	c.Jump()
	if loop.TickOnce() {
		t.Fatal("second tick ran while the first was in flight")
	}
	if c.Actions().Len() != 1 {
		t.Fatalf("skipped tick touched the queue: %d queued", c.Actions().Len())
	}

	close(release)
	if !<-done {
		t.Fatal("first tick reported as skipped")
	}
	if c.Ticks() != 1 || c.ElapsedMs() != 10 {
		t.Fatalf("ticks %d elapsed %v, want 1 and 10", c.Ticks(), c.ElapsedMs())
	}
	if c.Jumps() != 0 {
		t.Fatalf("jump applied by the skipped tick")
	}

	if !loop.TickOnce() {
		t.Fatal("tick after release was skipped")
	}
	if c.Jumps() != 1 || c.Craft().Velocity().Y != cfg.Physics.JumpVelocity {
		t.Fatalf("queued jump not applied on the next tick")
	}

	stats := loop.Stats()
	if stats.Ticks != 2 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want 2 ticks 1 skipped", stats)
	}
}

func TestDisposedCopterDoesNotMove(t *testing.T) {
	c := NewCopter(nil)
	c.Dispose()
	c.Dispose()
	c.Tick(10)

	if c.Ticks() != 0 || c.Craft().Position() != gamemath.Vec(cfg.Copter.StartX, cfg.Copter.StartY) {
		t.Fatalf("disposed copter advanced")
	}
}
