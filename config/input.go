package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionPause
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionPause:
		return "pause"
	case ActionDebug:
		return "debug"
	default:
		return "none"
	}
}
