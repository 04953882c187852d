package unit

import (
	"math"
	"testing"

	"github.com/automoto/shoutybird/shared/gamemath"
)

type recorder struct {
	events     []string
	properties []Property
	moves      [][2]gamemath.Vector
	hits       []*Unit
}

func (r *recorder) observer() Funcs {
	return Funcs{
		OnUpdated: func(u *Unit) {
			r.events = append(r.events, "updated")
		},
		OnPositionChanged: func(u *Unit, prev, cur gamemath.Vector) {
			r.events = append(r.events, "position")
			r.moves = append(r.moves, [2]gamemath.Vector{prev, cur})
		},
		OnCollision: func(u *Unit, other *Unit) {
			r.events = append(r.events, "collision")
			r.hits = append(r.hits, other)
		},
		OnPropertyChanged: func(u *Unit, p Property) {
			r.events = append(r.events, "property:"+p.String())
			r.properties = append(r.properties, p)
		},
	}
}

func checkBox(t *testing.T, u *Unit) {
	t.Helper()
	box := u.BoundingBox()
	if box.X1 != u.Position().X || box.Y1 != u.Position().Y {
		t.Fatalf("box origin %+v does not match position %+v", box, u.Position())
	}
	if math.Abs(box.Width()-u.Width()) > 1e-9 || math.Abs(box.Height()-u.Height()) > 1e-9 {
		t.Fatalf("box %+v does not match size %vx%v", box, u.Width(), u.Height())
	}
}

func TestSetPositionNotifiesAndRecomputesBox(t *testing.T) {
	u := New(KindBird, gamemath.Vec(1, 2), 1, 1)
	rec := &recorder{}
	u.Subscribe(rec.observer())

	u.SetPosition(gamemath.Vec(3, 4))

	checkBox(t, u)
	if len(rec.moves) != 1 || rec.moves[0][0] != gamemath.Vec(1, 2) || rec.moves[0][1] != gamemath.Vec(3, 4) {
		t.Fatalf("unexpected position events %+v", rec.moves)
	}
	if len(rec.properties) != 1 || rec.properties[0] != PropertyDisplayPosition {
		t.Fatalf("unexpected property events %+v", rec.properties)
	}
}

func TestSettersAreIdempotent(t *testing.T) {
	u := New(KindObstacle, gamemath.Vec(5, 5), 2, 3)
	u.SetVelocity(gamemath.Vec(-8, 0))
	u.SetScaleFactor(16)
	box := u.BoundingBox()

	rec := &recorder{}
	u.Subscribe(rec.observer())
	u.SetPosition(gamemath.Vec(5, 5))
	u.SetVelocity(gamemath.Vec(-8, 0))
	u.SetWidth(2)
	u.SetHeight(3)
	u.SetScaleFactor(16)

	if len(rec.events) != 0 {
		t.Fatalf("expected no notifications, got %v", rec.events)
	}
	if u.BoundingBox() != box {
		t.Fatalf("box changed from %+v to %+v", box, u.BoundingBox())
	}
}

func TestRepeatedNaNDoesNotRenotify(t *testing.T) {
	u := New(KindBird, gamemath.Vec(0, 0), 1, 1)
	rec := &recorder{}
	u.Subscribe(rec.observer())

	nan := gamemath.Vec(math.NaN(), 0)
	u.SetPosition(nan)
	u.SetPosition(nan)
	u.SetPosition(nan)
	u.SetVelocity(nan)
	u.SetVelocity(nan)
	u.SetWidth(math.NaN())
	u.SetWidth(math.NaN())

	if len(rec.moves) != 1 {
		t.Fatalf("position events = %d, want 1", len(rec.moves))
	}
	want := []Property{PropertyDisplayPosition, PropertyVelocity, PropertyDisplayWidth}
	if len(rec.properties) != len(want) {
		t.Fatalf("properties %v, want %v", rec.properties, want)
	}
	for i := range want {
		if rec.properties[i] != want[i] {
			t.Fatalf("properties %v, want %v", rec.properties, want)
		}
	}
}

func TestSizeChangesKeepBoxConsistent(t *testing.T) {
	u := New(KindBird, gamemath.Vec(0.5, 0.25), 1, 1)
	rec := &recorder{}
	u.Subscribe(rec.observer())

	u.SetWidth(2.5)
	checkBox(t, u)
	u.SetHeight(0.75)
	checkBox(t, u)
	u.SetPosition(gamemath.Vec(-3.125, 7))
	checkBox(t, u)

	want := []Property{PropertyDisplayWidth, PropertyDisplayHeight, PropertyDisplayPosition}
	if len(rec.properties) != len(want) {
		t.Fatalf("properties %v, want %v", rec.properties, want)
	}
	for i := range want {
		if rec.properties[i] != want[i] {
			t.Fatalf("properties %v, want %v", rec.properties, want)
		}
	}
}

func TestUpdateEmitsUpdatedBeforeMoving(t *testing.T) {
	u := New(KindBird, gamemath.Vec(0, 0), 1, 1)
	u.SetAcceleration(gamemath.Vec(0, 9.8))
	var seen gamemath.Vector
	rec := &recorder{}
	u.Subscribe(Funcs{OnUpdated: func(u *Unit) { seen = u.Position() }})
	u.Subscribe(rec.observer())

	u.Update(1000)

	if seen != gamemath.Vec(0, 0) {
		t.Fatalf("Updated observer saw position %+v, want the pre-step position", seen)
	}
	want := []string{"updated", "property:Velocity", "property:DisplayPosition", "position"}
	if len(rec.events) != len(want) {
		t.Fatalf("events %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Fatalf("events %v, want %v", rec.events, want)
		}
	}
	if u.Velocity() != gamemath.Vec(0, 9.8) {
		t.Fatalf("unexpected velocity %+v", u.Velocity())
	}
	checkBox(t, u)
}

func TestUpdatePositionUsesUpdatedVelocity(t *testing.T) {
	u := New(KindBird, gamemath.Vec(0, 0), 1, 1)
	u.SetAcceleration(gamemath.Vec(0, 9.8))
	u.Update(10)
	u.Update(10)

	v, p := gamemath.Vector{}, gamemath.Vector{}
	accel := gamemath.Vec(0, 9.8)
	for i := 0; i < 2; i++ {
		v = gamemath.StepVelocity(accel, v, 10)
		p = gamemath.StepPosition(accel, v, p, 10)
	}
	if u.Velocity() != v || u.Position() != p {
		t.Fatalf("two updates gave %+v/%+v, want %+v/%+v", u.Velocity(), u.Position(), v, p)
	}

	once := New(KindBird, gamemath.Vec(0, 0), 1, 1)
	once.SetAcceleration(accel)
	once.Update(20)
	if once.Position() == u.Position() {
		t.Fatalf("one 20ms update should differ from two 10ms updates")
	}
}

func TestCollideCarriesOtherUnit(t *testing.T) {
	bird := New(KindBird, gamemath.Vec(0, 0), 1, 1)
	pipe := New(KindObstacle, gamemath.Vec(0.5, 0), 1, 1)
	rec := &recorder{}
	bird.Subscribe(rec.observer())

	bird.Collide(pipe)

	if len(rec.hits) != 1 || rec.hits[0] != pipe {
		t.Fatalf("unexpected collision events %+v", rec.hits)
	}
}

func TestSubscriptionCancel(t *testing.T) {
	u := New(KindCraft, gamemath.Vec(0, 0), 1, 1)
	first, second := &recorder{}, &recorder{}
	sub := u.Subscribe(first.observer())
	u.Subscribe(second.observer())

	sub.Cancel()
	sub.Cancel()
	u.SetVelocity(gamemath.Vec(1, 1))

	if len(first.events) != 0 {
		t.Fatalf("cancelled observer still notified: %v", first.events)
	}
	if len(second.events) != 1 {
		t.Fatalf("remaining observer missed the change: %v", second.events)
	}
}

func TestDisposeIsIdempotentAndReleasesObservers(t *testing.T) {
	u := New(KindObstacle, gamemath.Vec(10, 0), 1, 1)
	u.SetVelocity(gamemath.Vec(-8, 0))
	rec := &recorder{}
	sub := u.Subscribe(rec.observer())

	u.Dispose()
	u.Dispose()
	sub.Cancel()
	u.Update(10)
	u.Collide(u)

	if !u.Disposed() {
		t.Fatalf("unit should report disposed")
	}
	if len(rec.events) != 0 {
		t.Fatalf("disposed unit still notified: %v", rec.events)
	}
	if u.Position() != gamemath.Vec(10, 0) {
		t.Fatalf("disposed unit moved to %+v", u.Position())
	}
	if s := u.Subscribe(rec.observer()); s != (Subscription{}) {
		t.Fatalf("disposed unit accepted an observer")
	}
}

func TestDisplayValuesFollowScale(t *testing.T) {
	u := New(KindCraft, gamemath.Vec(1, 2), 1, 1.5)
	u.SetScaleFactor(10)
	if u.DisplayPosition() != gamemath.Vec(10, 20) {
		t.Fatalf("unexpected display position %+v", u.DisplayPosition())
	}
	if u.DisplayWidth() != 10 || u.DisplayHeight() != 15 {
		t.Fatalf("unexpected display size %vx%v", u.DisplayWidth(), u.DisplayHeight())
	}
	if u.BoundingBox() != gamemath.BoxAt(gamemath.Vec(1, 2), 1, 1.5) {
		t.Fatalf("scale must not affect the bounding box")
	}
}
