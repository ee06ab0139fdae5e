package systems

import (
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFeet advances both feet by one spring-damper frame from the raw
// input sample, then applies the board's geometric constraints: max
// extension from the board center and minimum separation between feet.
func UpdateFeet(e *ecs.ECS) {
	playerEntry, ok := components.Feet.First(e.World)
	if !ok {
		return
	}
	feet := components.Feet.Get(playerEntry)
	raw := getOrCreateRawInput(e)

	p := gamemath.SpringParams{
		DeadZone:        cfg.Input.DeadZone,
		Sensitivity:     cfg.Input.Sensitivity,
		MaxDisplacement: cfg.Input.MaxDisplacement,
		SpringStrength:  cfg.Board.SpringStrength,
		Damping:         cfg.Board.Damping,
	}

	feet.Left.Pos, feet.Left.Vel = gamemath.SpringStep(feet.Left.Pos, feet.Left.Vel, raw.Left, p)
	feet.Right.Pos, feet.Right.Vel = gamemath.SpringStep(feet.Right.Pos, feet.Right.Vel, raw.Right, p)

	feet.Left.Pos = gamemath.ClampExtension(feet.Left.Pos, cfg.Board.MaxFootExtension)
	feet.Right.Pos = gamemath.ClampExtension(feet.Right.Pos, cfg.Board.MaxFootExtension)

	feet.Left.Pos, feet.Right.Pos = gamemath.SeparateFeet(feet.Left.Pos, feet.Right.Pos, cfg.Board.MinFeetDistance)
}

// ResetFeet returns both feet to their home stance with zero velocity.
func ResetFeet(feet *components.FeetData) {
	feet.Left = components.FootState{Pos: gamemath.Vec{X: 0, Y: -cfg.Board.FootHomeOffset}}
	feet.Right = components.FootState{Pos: gamemath.Vec{X: 0, Y: cfg.Board.FootHomeOffset}}
}
