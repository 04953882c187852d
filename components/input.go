package components

import (
	cfg "github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/shared/messages"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// JustPressed reports whether action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()

// ActionQueueData holds commands waiting for the next tick.
type ActionQueueData struct {
	*messages.ActionQueue
}

var ActionQueue = donburi.NewComponentType[ActionQueueData]()
