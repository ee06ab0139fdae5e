package gamemath

// SpringParams tunes the per-foot spring-damper.
type SpringParams struct {
	DeadZone        float64
	Sensitivity     float64
	MaxDisplacement float64
	SpringStrength  float64
	Damping         float64
}

// SpringStep advances one foot by a single spring-damper frame.
// Raw input below the dead zone freezes the foot where it is: velocity
// is zeroed rather than springing back toward home.
func SpringStep(pos, vel, raw Vec, p SpringParams) (Vec, Vec) {
	if raw.Len() > p.DeadZone {
		target := raw.Scale(p.Sensitivity * p.MaxDisplacement)
		vel = vel.Add(target.Sub(pos).Scale(p.SpringStrength))
	} else {
		vel = Vec{}
	}
	vel = vel.Scale(p.Damping)
	return pos.Add(vel), vel
}

// ClampExtension limits a foot's distance from the board center,
// rescaling the position vector when it exceeds max.
func ClampExtension(pos Vec, max float64) Vec {
	d := pos.Len()
	if d <= max || d == 0 {
		return pos
	}
	return pos.Scale(max / d)
}

// SeparateFeet pushes both feet apart symmetrically along the line
// connecting them when they are closer than minDist, half the deficit
// each. Exactly coincident feet are left untouched; there is no line to
// push along.
func SeparateFeet(left, right Vec, minDist float64) (Vec, Vec) {
	delta := right.Sub(left)
	d := delta.Len()
	if d >= minDist || d == 0 {
		return left, right
	}
	push := delta.Scale((minDist - d) / 2 / d)
	return left.Sub(push), right.Add(push)
}
