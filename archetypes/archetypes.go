package archetypes

import (
	"github.com/automoto/shoutybird/components"
	"github.com/automoto/shoutybird/tags"
	"github.com/yohamta/donburi"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Unit,
		components.Object,
		components.Sprite,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Unit,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.GameState,
		components.Clock,
		components.Spawner,
		components.ActionQueue,
		components.Settings,
		components.Stats,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
