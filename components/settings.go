package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// StatsData counts what the event subscribers have seen.
type StatsData struct {
	UnitUpdates uint64
	Collisions  uint64
}

var Stats = donburi.NewComponentType[StatsData]()
