package gamemath

import "math"

// StraightDownAngle is the board heading for straight down-slope travel.
const StraightDownAngle = math.Pi / 2

// BoardAngle returns the board heading in radians from the two foot
// positions, measured from the left foot to the right foot.
func BoardAngle(left, right Vec) float64 {
	return math.Atan2(right.Y-left.Y, right.X-left.X)
}

// Alignment measures how closely the board heading matches straight
// down-slope travel: 1 = straight down, 0 = perpendicular or worse.
func Alignment(angle float64) float64 {
	deviation := math.Abs(angle-StraightDownAngle) / (math.Pi / 2)
	return 1 - math.Min(deviation, 1)
}

// FrictionBlend returns the velocity multiplier for a board that is not
// aligned enough to accelerate, blending between the perpendicular and
// parallel friction coefficients by alignment.
func FrictionBlend(frictionPerpendicular, frictionParallel, alignment float64) float64 {
	return frictionPerpendicular + (frictionParallel-frictionPerpendicular)*alignment
}

// ClampSpeed clamps v to [min, max].
func ClampSpeed(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
