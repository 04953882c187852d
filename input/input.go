package input

import (
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// NewUpdateInput returns a frame system that polls raw input and enqueues every
// action pressed this frame. The simulation picks them up on its next tick.
func NewUpdateInput(queue *messages.ActionQueue) ecs.System {
	return func(e *ecs.ECS) {
		in := getOrCreateInput(e.World)

		// Swap buffers: current becomes previous, then zero out current
		in.Previous = in.Current
		in.Current = [cfg.ActionCount]bool{}

		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

		for actionID, binding := range Bindings {
			in.Current[actionID] = pressed(binding)
		}

		for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
			if in.JustPressed(id) {
				queue.Enqueue(id)
			}
		}
	}
}

func pressed(binding Binding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}
