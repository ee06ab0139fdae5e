package archetypes

import (
	"github.com/jacksakers/CarveDrifters/components"
	"github.com/jacksakers/CarveDrifters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Feet,
		components.Board,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
	Session = newArchetype(
		components.Session,
		components.Grid,
	)
	SnowField = newArchetype(
		components.Snow,
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

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.World.Create(
		append(a.components, cs...)...,
	))
}
