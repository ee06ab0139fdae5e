package components

import (
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi"
)

// FootState is one foot's spring-damped position and velocity,
// relative to the board center.
type FootState struct {
	Pos gamemath.Vec
	Vel gamemath.Vec
}

// FeetData holds both feet. Owned by the foot smoothing system; board
// physics only reads it.
type FeetData struct {
	Left  FootState
	Right FootState
}

var Feet = donburi.NewComponentType[FeetData]()
