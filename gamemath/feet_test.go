package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func springParams() SpringParams {
	return SpringParams{
		DeadZone:        0.15,
		Sensitivity:     1.0,
		MaxDisplacement: 26,
		SpringStrength:  0.18,
		Damping:         0.72,
	}
}

func TestSpringStep(t *testing.T) {
	t.Parallel()

	t.Run("input below the dead zone freezes the foot", func(t *testing.T) {
		t.Parallel()
		pos := Vec{X: 8, Y: -4}
		vel := Vec{X: 2, Y: 1}

		gotPos, gotVel := SpringStep(pos, vel, Vec{X: 0.1, Y: 0}, springParams())
		assert.Equal(t, pos, gotPos)
		assert.Equal(t, Vec{}, gotVel)
	})

	t.Run("foot accelerates toward the input target", func(t *testing.T) {
		t.Parallel()
		gotPos, gotVel := SpringStep(Vec{}, Vec{}, Vec{X: 1, Y: 0}, springParams())
		assert.Positive(t, gotVel.X)
		assert.Zero(t, gotVel.Y)
		assert.Equal(t, gotVel, gotPos)
	})

	t.Run("held input settles at the target", func(t *testing.T) {
		t.Parallel()
		p := springParams()
		raw := Vec{X: 0, Y: 1}
		var pos, vel Vec
		for i := 0; i < 200; i++ {
			pos, vel = SpringStep(pos, vel, raw, p)
		}
		assert.InDelta(t, p.Sensitivity*p.MaxDisplacement, pos.Y, 0.01)
		assert.InDelta(t, 0, vel.Y, 0.01)
	})
}

func TestClampExtension(t *testing.T) {
	t.Parallel()

	t.Run("within range is untouched", func(t *testing.T) {
		t.Parallel()
		pos := Vec{X: 3, Y: 4}
		assert.Equal(t, pos, ClampExtension(pos, 10))
	})

	t.Run("rescales along the same direction", func(t *testing.T) {
		t.Parallel()
		got := ClampExtension(Vec{X: 30, Y: 40}, 10)
		assert.InDelta(t, 6, got.X, 1e-9)
		assert.InDelta(t, 8, got.Y, 1e-9)
		assert.InDelta(t, 10, got.Len(), 1e-9)
	})

	t.Run("zero vector stays put", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Vec{}, ClampExtension(Vec{}, 10))
	})
}

func TestSeparateFeet(t *testing.T) {
	t.Parallel()

	t.Run("pushes half the deficit onto each foot", func(t *testing.T) {
		t.Parallel()
		left, right := SeparateFeet(Vec{Y: -5}, Vec{Y: 5}, 18)
		require.InDelta(t, -9, left.Y, 1e-9)
		require.InDelta(t, 9, right.Y, 1e-9)
		assert.InDelta(t, 18, right.Sub(left).Len(), 1e-9)
	})

	t.Run("far enough apart is untouched", func(t *testing.T) {
		t.Parallel()
		l, r := Vec{Y: -20}, Vec{Y: 20}
		gotL, gotR := SeparateFeet(l, r, 18)
		assert.Equal(t, l, gotL)
		assert.Equal(t, r, gotR)
	})

	t.Run("coincident feet are left alone", func(t *testing.T) {
		t.Parallel()
		p := Vec{X: 2, Y: 2}
		gotL, gotR := SeparateFeet(p, p, 18)
		assert.Equal(t, p, gotL)
		assert.Equal(t, p, gotR)
	})
}
