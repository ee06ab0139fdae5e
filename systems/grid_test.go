package systems

import (
	"math"
	"testing"

	"github.com/jacksakers/CarveDrifters/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGridCarvingShiftsOffset(t *testing.T) {
	e, _, board, _ := newSlopeECS(t)
	gridEntry, ok := components.Grid.First(e.World)
	require.True(t, ok)
	grid := components.Grid.Get(gridEntry)

	// Straight down-slope: no drift
	UpdateGrid(e)
	assert.Zero(t, grid.PlayerLaneOffset)

	board.Angle = math.Pi / 4
	board.Velocity = 10
	UpdateGrid(e)
	assert.Positive(t, grid.PlayerLaneOffset)

	board.Angle = 3 * math.Pi / 4
	for i := 0; i < 4; i++ {
		UpdateGrid(e)
	}
	assert.Negative(t, grid.PlayerLaneOffset)
}

func TestUpdateGridOffsetIsUnbounded(t *testing.T) {
	e, _, board, _ := newSlopeECS(t)
	gridEntry, ok := components.Grid.First(e.World)
	require.True(t, ok)
	grid := components.Grid.Get(gridEntry)

	board.Angle = math.Pi / 4
	board.Velocity = 12

	for i := 0; i < 2000; i++ {
		UpdateGrid(e)
	}
	// Far past the visible lane band and still counting
	assert.Greater(t, grid.PlayerLaneOffset, 10.0)
}
