package factory

import (
	"github.com/jacksakers/CarveDrifters/archetypes"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the rider entity in its home stance, board
// pointing straight down-slope at minimum speed.
func CreatePlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	components.Feet.SetValue(player, components.FeetData{
		Left:  components.FootState{Pos: gamemath.Vec{X: 0, Y: -cfg.Board.FootHomeOffset}},
		Right: components.FootState{Pos: gamemath.Vec{X: 0, Y: cfg.Board.FootHomeOffset}},
	})
	components.Board.SetValue(player, components.BoardData{
		Angle:              gamemath.StraightDownAngle,
		Velocity:           cfg.Physics.MinSpeed,
		Alignment:          1,
		FrictionMultiplier: 1,
		Alive:              true,
	})

	return player
}
