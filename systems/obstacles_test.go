package systems

import (
	"testing"

	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// obstacleByEntity re-resolves the component after spawns may have
// grown the obstacle storage.
func obstacleByEntity(e *ecs.ECS, ent donburi.Entity) (*components.ObstacleData, bool) {
	if !e.World.Valid(ent) {
		return nil, false
	}
	return components.Obstacle.Get(e.World.Entry(ent)), true
}

func TestObstacleDepthMonotonic(t *testing.T) {
	e, _, _, _ := newSlopeECS(t)

	// Outer lane keeps the tree clear of the player column
	ent := factory.CreateObstacle(e, 3, 60, 0.2, components.SilhouettePine, components.ShadeMid).Entity()

	prev := 0.2
	for i := 0; i < 20; i++ {
		UpdateObstacles(e)
		ob, ok := obstacleByEntity(e, ent)
		require.True(t, ok)
		assert.Greater(t, ob.Depth, prev)
		prev = ob.Depth
	}
}

func TestObstacleExpiresPastMaxDepth(t *testing.T) {
	e, _, _, _ := newSlopeECS(t)

	ent := factory.CreateObstacle(e, 3, 60, cfg.Obstacle.MaxDepth-0.01, components.SilhouettePine, components.ShadeMid).Entity()

	UpdateObstacles(e)
	assert.False(t, e.World.Valid(ent))
}

func TestPassAwardsBonusOnce(t *testing.T) {
	e, session, _, _ := newSlopeECS(t)

	ent := factory.CreateObstacle(e, 3, 60, cfg.Obstacle.PassDepth+0.01, components.SilhouettePine, components.ShadeMid).Entity()

	UpdateObstacles(e)
	FlushEvents(e)

	ob, ok := obstacleByEntity(e, ent)
	require.True(t, ok)
	require.True(t, ob.Scored)

	want := cfg.Scoring.PassPoints * cfg.Scoring.PassBonus
	assert.Equal(t, want, session.Score)

	// Still deep enough to pass again, but the scored flag holds
	UpdateObstacles(e)
	FlushEvents(e)
	assert.Equal(t, want, session.Score)
}

func TestSpawnRejectedWhenLaneOccupiedFar(t *testing.T) {
	e, _, _, _ := newSlopeECS(t)

	require.True(t, TrySpawnObstacle(e, 2))
	count := CountObstacles(e)

	assert.False(t, TrySpawnObstacle(e, 2))
	assert.Equal(t, count, CountObstacles(e))

	// A different lane is still open
	assert.True(t, TrySpawnObstacle(e, -2))
}

func TestCollisionOnlyInNearField(t *testing.T) {
	e, _, board, _ := newSlopeECS(t)

	// Dead center on the player column but still far up-slope
	factory.CreateObstacle(e, 0, 90, 0.3, components.SilhouettePine, components.ShadeMid)

	UpdateObstacles(e)
	assert.True(t, board.Alive)
}

func TestCollisionEndsRunAndRestartRebuilds(t *testing.T) {
	e, session, board, _ := newSlopeECS(t)
	gridEntry, ok := components.Grid.First(e.World)
	require.True(t, ok)
	grid := components.Grid.Get(gridEntry)

	session.Score = 25
	session.Distance = 80
	grid.PlayerLaneOffset = 1.4

	factory.CreateObstacle(e, 0, 90, 0.85, components.SilhouettePine, components.ShadeMid)

	UpdateObstacles(e)
	require.False(t, board.Alive)

	UpdateSession(e)
	FlushEvents(e)
	require.False(t, session.Active)
	assert.Equal(t, ReasonCollision, session.Reason)
	assert.Equal(t, 25.0, session.FinalScore)
	assert.Equal(t, 25.0, session.Best)

	ResetRun(e)
	FlushEvents(e)

	assert.True(t, session.Active)
	assert.Zero(t, session.Score)
	assert.Zero(t, session.Distance)
	assert.Equal(t, 25.0, session.Best)
	assert.Zero(t, grid.PlayerLaneOffset)
	assert.True(t, board.Alive)
	assert.Equal(t, cfg.Physics.MinSpeed, board.Velocity)
	assert.Equal(t, cfg.Obstacle.InitialBatch, CountObstacles(e))
}

func TestCollisionRadiusBoundary(t *testing.T) {
	// depth 0.9, size 100: tree radius 100*0.9*0.35, rider radius 30
	treeRadius := 100 * 0.9 * cfg.Obstacle.CollisionFactor
	riderRadius := cfg.Board.Length / 2
	reach := treeRadius + riderRadius

	assert.True(t, circlesOverlap(320, 300, riderRadius, 320+reach*0.99, 300, treeRadius))
	assert.False(t, circlesOverlap(320, 300, riderRadius, 320+reach*1.01, 300, treeRadius))
}
