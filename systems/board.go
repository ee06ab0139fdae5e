package systems

import (
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/events"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoard derives the board heading and forward speed from the foot
// positions. Aligned boards accelerate under gravity; angled boards
// scrub speed through the blended friction model. Velocity is always
// clamped to [MinSpeed, MaxSpeed] afterward.
func UpdateBoard(e *ecs.ECS) {
	playerEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(playerEntry)
	feet := components.Feet.Get(playerEntry)

	board.Angle = gamemath.BoardAngle(feet.Left.Pos, feet.Right.Pos)
	board.Alignment = gamemath.Alignment(board.Angle)

	wasCarving := board.Carving > cfg.Scoring.CarveThreshold
	board.Carving = 1 - board.Alignment

	if board.Alignment > cfg.Physics.AccelAlignment {
		board.Velocity += cfg.Physics.Gravity * board.Alignment
		board.FrictionMultiplier = 1
	} else {
		board.FrictionMultiplier = gamemath.FrictionBlend(
			cfg.Physics.FrictionPerpendicular, cfg.Physics.FrictionParallel, board.Alignment)
		board.Velocity *= board.FrictionMultiplier
	}
	board.Velocity = gamemath.ClampSpeed(board.Velocity, cfg.Physics.MinSpeed, cfg.Physics.MaxSpeed)

	// Stall tracking; the stall ending itself is a config-gated product
	// decision and ships disabled.
	if board.Velocity <= cfg.Physics.MinSpeed+cfg.Physics.StallSpeedEpsilon {
		board.StallFrames++
	} else {
		board.StallFrames = 0
	}
	if cfg.Physics.StallGameOver && board.Alive && board.StallFrames >= cfg.Physics.StallFrameLimit {
		board.Alive = false
	}

	events.SpeedChangedEvent.Publish(e.World, events.SpeedChanged{
		Fraction: board.Velocity / cfg.Physics.MaxSpeed,
	})
	if carving := board.Carving > cfg.Scoring.CarveThreshold; carving != wasCarving {
		events.CarvingChangedEvent.Publish(e.World, events.CarvingChanged{
			Carving: carving,
			Amount:  board.Carving,
		})
	}

	snapshotDebug(e, board, feet)
}

// snapshotDebug captures the once-per-frame structured debug snapshot.
func snapshotDebug(e *ecs.ECS, board *components.BoardData, feet *components.FeetData) {
	debug := getOrCreateDebug(e)
	debug.Snapshot = components.DebugSnapshot{
		BoardAngle:         board.Angle,
		Alignment:          board.Alignment,
		FrictionMultiplier: board.FrictionMultiplier,
		LeftFoot:           feet.Left.Pos,
		RightFoot:          feet.Right.Pos,
		FeetDistance:       feet.Right.Pos.Sub(feet.Left.Pos).Len(),
	}
}

// ResetBoard restores the board to its session-start state.
func ResetBoard(board *components.BoardData) {
	board.Angle = gamemath.StraightDownAngle
	board.Velocity = cfg.Physics.MinSpeed
	board.Alignment = 1
	board.Carving = 0
	board.FrictionMultiplier = 1
	board.Alive = true
	board.StallFrames = 0
}
