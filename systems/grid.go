package systems

import (
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrid feeds the board's carving into the player's lane offset.
// Must run after the board update and before any obstacle projection in
// the same frame. The offset accumulates without bounds; spawning keys
// off it instead of clamping it.
func UpdateGrid(e *ecs.ECS) {
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return
	}
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(gridEntry)
	board := components.Board.Get(boardEntry)

	grid.PlayerLaneOffset += gamemath.LaneShift(board.Angle, board.Velocity, cfg.Perspective.LaneShiftSpeed)
}
