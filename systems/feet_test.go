package systems

import (
	"testing"

	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestUpdateFeetHoldsStanceWithoutInput(t *testing.T) {
	e, _, _, feet := newSlopeECS(t)

	home := *feet
	for i := 0; i < 60; i++ {
		UpdateFeet(e)
	}
	assert.Equal(t, home, *feet)
}

func TestUpdateFeetMovesTowardInput(t *testing.T) {
	e, _, _, feet := newSlopeECS(t)

	raw := getOrCreateRawInput(e)
	raw.Left = gamemath.Vec{X: -1}
	raw.Right = gamemath.Vec{X: 1}

	for i := 0; i < 60; i++ {
		UpdateFeet(e)
	}
	assert.Negative(t, feet.Left.Pos.X)
	assert.Positive(t, feet.Right.Pos.X)
}

func TestUpdateFeetEnforcesSeparation(t *testing.T) {
	e, _, _, feet := newSlopeECS(t)

	// Drive the feet straight at each other
	raw := getOrCreateRawInput(e)
	raw.Left = gamemath.Vec{Y: 1}
	raw.Right = gamemath.Vec{Y: -1}

	for i := 0; i < 120; i++ {
		UpdateFeet(e)
		dist := feet.Right.Pos.Sub(feet.Left.Pos).Len()
		assert.GreaterOrEqual(t, dist, cfg.Board.MinFeetDistance-1e-9)
	}
}

func TestUpdateFeetClampsExtension(t *testing.T) {
	e, _, _, feet := newSlopeECS(t)

	// Pull the feet apart diagonally; both target points sit past the
	// extension limit, so the clamp is what holds them in.
	raw := getOrCreateRawInput(e)
	raw.Left = gamemath.Vec{X: -1, Y: -1}
	raw.Right = gamemath.Vec{X: 1, Y: 1}

	for i := 0; i < 120; i++ {
		UpdateFeet(e)
		assert.LessOrEqual(t, feet.Left.Pos.Len(), cfg.Board.MaxFootExtension+1e-9)
		assert.LessOrEqual(t, feet.Right.Pos.Len(), cfg.Board.MaxFootExtension+1e-9)
	}
}
