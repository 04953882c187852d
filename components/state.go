package components

import "github.com/yohamta/donburi"

// GameStateData is the singleton round state.
type GameStateData struct {
	Over   bool
	Paused bool
	Reason string
	Score  int
	Best   int
	Rounds int
}

var GameState = donburi.NewComponentType[GameStateData]()

// ClockData is the singleton simulation clock. IntervalMs is the trusted
// elapsed time of the current tick.
type ClockData struct {
	Tick       uint64
	IntervalMs float64
	ElapsedMs  float64
}

var Clock = donburi.NewComponentType[ClockData]()
