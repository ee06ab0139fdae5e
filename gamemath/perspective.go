package gamemath

import "math"

// GridWidth returns the lane grid's total width at the given depth.
// The grid converges toward farWidth at the vanishing point (depth 0)
// and spreads to nearWidth at the player row (depth 1 and beyond).
func GridWidth(farWidth, nearWidth, depth float64) float64 {
	return Lerp(farWidth, nearWidth, Clamp01(depth))
}

// LaneScreenX projects a lane position to a screen x coordinate.
// playerOffset is the player's fractional lane position; lanes shift
// opposite to it so the player always renders at centerX. lane is
// float64 so grid lines between lanes can be projected too.
func LaneScreenX(centerX, lane, playerOffset, farWidth, nearWidth float64, columns int, depth float64) float64 {
	spacing := GridWidth(farWidth, nearWidth, depth) / float64(columns-1)
	return centerX + (lane-playerOffset)*spacing
}

// DepthScreenY projects depth to a screen y coordinate between the
// horizon and the player row.
func DepthScreenY(horizonY, nearY, depth float64) float64 {
	return Lerp(horizonY, nearY, Clamp01(depth))
}

// VisualScale returns the render scale fraction for an obstacle at depth.
// Depth past 1 keeps the full near scale.
func VisualScale(scaleMin, scaleMax, depth float64) float64 {
	return scaleMin + (scaleMax-scaleMin)*math.Min(depth, 1)
}

// ApproachSpeed combines the base approach rate with the player's
// forward velocity contribution.
func ApproachSpeed(baseSpeed, playerVelocity, speedMultiplier float64) float64 {
	return baseSpeed + playerVelocity*speedMultiplier*0.1
}

// DepthStep returns the depth increment for one frame. The step grows
// with depth so obstacles accelerate as they close in on the player.
func DepthStep(depth, approachSpeed, curveExponent float64) float64 {
	return approachSpeed * 0.01 * math.Pow(depth+0.1, curveExponent)
}

// LaneShift returns the per-frame change to the player's lane offset
// from carving. A board pointing straight down-slope (angle pi/2) does
// not steer; angling toward either rail does.
func LaneShift(boardAngle, velocity, laneShiftSpeed float64) float64 {
	return math.Cos(boardAngle) * velocity * laneShiftSpeed
}
