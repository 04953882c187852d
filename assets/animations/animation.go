package animations

// Animation steps a frame index from First to Last, holding each frame for
// TicksPerFrame updates. A one-shot animation rests on First once it finishes.
type Animation struct {
	First         int
	Last          int
	TicksPerFrame int
	OneShot       bool

	counter int
	frame   int
	playing bool
}

// NewAnimation returns a stopped animation resting on first.
func NewAnimation(first, last, ticksPerFrame int, oneShot bool) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		OneShot:       oneShot,
		frame:         first,
	}
}

func (a *Animation) Update() {
	if !a.playing {
		return
	}
	a.counter++
	if a.counter < a.TicksPerFrame {
		return
	}
	a.counter = 0
	a.frame++
	if a.frame > a.Last {
		a.frame = a.First
		if a.OneShot {
			a.playing = false
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Playing() bool {
	return a.playing
}

// Restart plays the animation again from First.
func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = 0
	a.playing = true
}
