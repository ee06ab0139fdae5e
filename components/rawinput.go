package components

import (
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi"
)

// RawInputData is the per-frame raw two-axis sample for each foot.
// Each component is in [-1, 1], zero when no key is held.
type RawInputData struct {
	Left  gamemath.Vec
	Right gamemath.Vec
}

var RawInput = donburi.NewComponentType[RawInputData]()
