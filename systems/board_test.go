package systems

import (
	"testing"

	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/jacksakers/CarveDrifters/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newSlopeECS builds a minimal world the gameplay systems can run
// against: one session with grid state and one player.
func newSlopeECS(t *testing.T) (*ecs.ECS, *components.SessionData, *components.BoardData, *components.FeetData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	SubscribeSessionEvents(e.World)

	sessionEntry := factory.CreateSession(e, 0)
	playerEntry := factory.CreatePlayer(e)

	return e,
		components.Session.Get(sessionEntry),
		components.Board.Get(playerEntry),
		components.Feet.Get(playerEntry)
}

func setFeetSideways(feet *components.FeetData) {
	feet.Left = components.FootState{Pos: gamemath.Vec{X: -cfg.Board.FootHomeOffset}}
	feet.Right = components.FootState{Pos: gamemath.Vec{X: cfg.Board.FootHomeOffset}}
}

func TestUpdateBoardAcceleratesWhenAligned(t *testing.T) {
	e, _, board, _ := newSlopeECS(t)

	require.Equal(t, cfg.Physics.MinSpeed, board.Velocity)

	prev := board.Velocity
	for i := 0; i < 120; i++ {
		UpdateBoard(e)
		assert.GreaterOrEqual(t, board.Velocity, prev)
		assert.LessOrEqual(t, board.Velocity, cfg.Physics.MaxSpeed)
		prev = board.Velocity
	}
	assert.Equal(t, cfg.Physics.MaxSpeed, board.Velocity)
	assert.InDelta(t, 1, board.Alignment, 1e-9)
}

func TestUpdateBoardScrubsSpeedWhenSideways(t *testing.T) {
	e, _, board, feet := newSlopeECS(t)

	board.Velocity = cfg.Physics.MaxSpeed
	setFeetSideways(feet)

	for i := 0; i < 300; i++ {
		UpdateBoard(e)
		assert.GreaterOrEqual(t, board.Velocity, cfg.Physics.MinSpeed)
	}
	assert.Equal(t, cfg.Physics.MinSpeed, board.Velocity)
	assert.Zero(t, board.Alignment)
	assert.Equal(t, cfg.Physics.FrictionPerpendicular, board.FrictionMultiplier)
}

func TestUpdateBoardVelocityAlwaysClamped(t *testing.T) {
	e, _, board, _ := newSlopeECS(t)

	board.Velocity = 1000
	UpdateBoard(e)
	assert.Equal(t, cfg.Physics.MaxSpeed, board.Velocity)

	board.Velocity = -5
	UpdateBoard(e)
	assert.GreaterOrEqual(t, board.Velocity, cfg.Physics.MinSpeed)
}

func TestUpdateBoardStallCounting(t *testing.T) {
	e, _, board, feet := newSlopeECS(t)
	setFeetSideways(feet)

	for i := 0; i < 10; i++ {
		UpdateBoard(e)
	}
	assert.Equal(t, 10, board.StallFrames)

	// Stall ending ships disabled; the board survives any dwell time.
	for i := 10; i < cfg.Physics.StallFrameLimit+60; i++ {
		UpdateBoard(e)
	}
	assert.True(t, board.Alive)

	// Picking up speed again resets the counter
	ResetFeet(feet)
	board.Velocity = cfg.Physics.MaxSpeed
	UpdateBoard(e)
	assert.Zero(t, board.StallFrames)
}

func TestResetBoard(t *testing.T) {
	_, _, board, _ := newSlopeECS(t)

	board.Velocity = 9
	board.Carving = 0.8
	board.Alive = false
	board.StallFrames = 77

	ResetBoard(board)

	assert.Equal(t, gamemath.StraightDownAngle, board.Angle)
	assert.Equal(t, cfg.Physics.MinSpeed, board.Velocity)
	assert.True(t, board.Alive)
	assert.Zero(t, board.Carving)
	assert.Zero(t, board.StallFrames)
}
