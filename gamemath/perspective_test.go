package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthStep(t *testing.T) {
	t.Parallel()

	t.Run("reproduces the approach formula exactly", func(t *testing.T) {
		t.Parallel()
		// depth 0.1, player velocity 10, base 1.5, multiplier 1.5, exponent 1.8
		approach := ApproachSpeed(1.5, 10, 1.5)
		got := 0.1 + DepthStep(0.1, approach, 1.8)

		want := 0.1 + (1.5+10*1.5*0.1)*0.01*math.Pow(0.1+0.1, 1.8)
		require.Equal(t, want, got)
	})

	t.Run("grows with depth", func(t *testing.T) {
		t.Parallel()
		far := DepthStep(0.1, 3, 1.8)
		near := DepthStep(0.9, 3, 1.8)
		assert.Greater(t, near, far)
	})

	t.Run("always positive", func(t *testing.T) {
		t.Parallel()
		assert.Positive(t, DepthStep(0, 0.5, 1.8))
	})
}

func TestGridWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, GridWidth(100, 900, 0))
	assert.Equal(t, 900.0, GridWidth(100, 900, 1))
	assert.Equal(t, 500.0, GridWidth(100, 900, 0.5))

	// Depth past 1 clamps for width purposes
	assert.Equal(t, 900.0, GridWidth(100, 900, 1.3))
	assert.Equal(t, 100.0, GridWidth(100, 900, -0.2))
}

func TestLaneScreenX(t *testing.T) {
	t.Parallel()

	t.Run("player lane projects to center", func(t *testing.T) {
		t.Parallel()
		x := LaneScreenX(320, 0, 0, 100, 900, 7, 0.5)
		assert.Equal(t, 320.0, x)

		// Fractional offsets too: the player is always at centerX
		x = LaneScreenX(320, 2.25, 2.25, 100, 900, 7, 0.8)
		assert.Equal(t, 320.0, x)
	})

	t.Run("lanes spread toward the near edge", func(t *testing.T) {
		t.Parallel()
		far := LaneScreenX(320, 1, 0, 100, 900, 7, 0)
		near := LaneScreenX(320, 1, 0, 100, 900, 7, 1)
		assert.Greater(t, near-320, far-320)

		// Spacing is gridWidth/(columns-1)
		assert.InDelta(t, 900.0/6, near-320, 1e-9)
	})

	t.Run("offset shifts lanes opposite the player", func(t *testing.T) {
		t.Parallel()
		left := LaneScreenX(320, 1, 0.5, 100, 900, 7, 1)
		center := LaneScreenX(320, 1, 0, 100, 900, 7, 1)
		assert.Less(t, left, center)
	})
}

func TestDepthScreenY(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 58.0, DepthScreenY(58, 300, 0))
	assert.Equal(t, 300.0, DepthScreenY(58, 300, 1))
	assert.Equal(t, 300.0, DepthScreenY(58, 300, 1.15))
	assert.Equal(t, 58.0, DepthScreenY(58, 300, -1))
}

func TestVisualScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.08, VisualScale(0.08, 1, 0))
	assert.Equal(t, 1.0, VisualScale(0.08, 1, 1))

	// Past the player row the near scale holds
	assert.Equal(t, 1.0, VisualScale(0.08, 1, 1.2))

	mid := VisualScale(0.08, 1, 0.5)
	assert.InDelta(t, 0.08+(1-0.08)*0.5, mid, 1e-9)
}

func TestLaneShift(t *testing.T) {
	t.Parallel()

	t.Run("no shift pointing straight down", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0, LaneShift(math.Pi/2, 10, 0.004), 1e-12)
	})

	t.Run("carving steers, faster when faster", func(t *testing.T) {
		t.Parallel()
		slow := LaneShift(math.Pi/4, 4, 0.004)
		fast := LaneShift(math.Pi/4, 12, 0.004)
		assert.Positive(t, slow)
		assert.Greater(t, fast, slow)
	})

	t.Run("opposite rails steer opposite ways", func(t *testing.T) {
		t.Parallel()
		assert.Negative(t, LaneShift(3*math.Pi/4, 10, 0.004))
	})
}
