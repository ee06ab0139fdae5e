package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateCatchesBadTuning(t *testing.T) {
	t.Run("inverted speed bounds", func(t *testing.T) {
		old := Physics.MinSpeed
		defer func() { Physics.MinSpeed = old }()

		Physics.MinSpeed = Physics.MaxSpeed + 1
		assert.ErrorContains(t, Validate(), "MinSpeed")
	})

	t.Run("inverted friction pair", func(t *testing.T) {
		old := Physics.FrictionParallel
		defer func() { Physics.FrictionParallel = old }()

		Physics.FrictionParallel = Physics.FrictionPerpendicular - 0.1
		assert.ErrorContains(t, Validate(), "FrictionParallel")
	})

	t.Run("unstable foot damping", func(t *testing.T) {
		old := Board.Damping
		defer func() { Board.Damping = old }()

		Board.Damping = 1.2
		assert.ErrorContains(t, Validate(), "damping")
	})

	t.Run("unsatisfiable feet separation", func(t *testing.T) {
		old := Board.MinFeetDistance
		defer func() { Board.MinFeetDistance = old }()

		Board.MinFeetDistance = 2*Board.MaxFootExtension + 1
		assert.ErrorContains(t, Validate(), "MinFeetDistance")
	})

	t.Run("degenerate grid", func(t *testing.T) {
		old := Perspective.GridColumns
		defer func() { Perspective.GridColumns = old }()

		Perspective.GridColumns = 1
		assert.ErrorContains(t, Validate(), "GridColumns")
	})

	t.Run("depth thresholds out of order", func(t *testing.T) {
		old := Obstacle.PassDepth
		defer func() { Obstacle.PassDepth = old }()

		Obstacle.PassDepth = Obstacle.MaxDepth + 1
		assert.ErrorContains(t, Validate(), "depth thresholds")
	})

	t.Run("spawn chance outside unit interval", func(t *testing.T) {
		old := Obstacle.SpawnChance
		defer func() { Obstacle.SpawnChance = old }()

		Obstacle.SpawnChance = 1.5
		assert.ErrorContains(t, Validate(), "SpawnChance")
	})
}
