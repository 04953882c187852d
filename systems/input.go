package systems

import (
	"github.com/automoto/shoutybird/components"
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/gamemath"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

// UpdateActions drains the action queue in enqueue order. It must run before
// UpdateUnits so a jump lands in the same tick's integration.
func UpdateActions(w donburi.World) {
	entry, ok := components.ActionQueue.First(w)
	if !ok {
		return
	}
	queue := components.ActionQueue.Get(entry)
	for _, action := range queue.Drain() {
		switch action {
		case cfg.ActionJump:
			applyJump(w)
		case cfg.ActionPause:
			TogglePause(w)
		case cfg.ActionDebug:
			if e, ok := components.Settings.First(w); ok {
				settings := components.Settings.Get(e)
				settings.Debug = !settings.Debug
			}
		}
	}
}

func applyJump(w donburi.World) {
	state := GetGameState(w)
	if state != nil && state.Paused {
		return
	}
	if state != nil && state.Over {
		Restart(w)
		return
	}
	tags.Bird.Each(w, func(e *donburi.Entry) {
		u := components.Unit.Get(e)
		v := u.Velocity()
		// A jump overrides the vertical velocity instead of adding to it
		u.SetVelocity(gamemath.Vec(v.X, cfg.Physics.JumpVelocity))
		bird := components.Bird.Get(e)
		bird.Jumps++
		if bird.Flap != nil {
			bird.Flap.Restart()
		}
	})
}
