package systems

import "github.com/yohamta/donburi"

// System is one step of the simulation, run once per tick in registration order.
type System func(w donburi.World)

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if state := GetGameState(w); state != nil && state.Paused {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when the
// round is over.
func WithGameplayChecks(system System) System {
	return WithPauseCheck(func(w donburi.World) {
		if state := GetGameState(w); state != nil && state.Over {
			return
		}
		system(w)
	})
}

// TogglePause flips the paused flag; a finished round cannot be paused.
func TogglePause(w donburi.World) {
	state := GetGameState(w)
	if state == nil || state.Over {
		return
	}
	state.Paused = !state.Paused
}
