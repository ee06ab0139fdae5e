package components

import "github.com/yohamta/donburi"

// BoardData is the board's derived physics state for the current frame.
// Velocity always stays clamped to [Physics.MinSpeed, Physics.MaxSpeed]
// after the board update.
type BoardData struct {
	Angle     float64 // radians, heading from left foot to right foot
	Velocity  float64 // scalar forward speed
	Alignment float64 // 0..1, 1 = pointing straight down-slope
	Carving   float64 // 0..1, 1 - Alignment

	// Friction multiplier applied this frame (1 while accelerating);
	// surfaced in the debug snapshot.
	FrictionMultiplier float64

	Alive       bool
	StallFrames int // consecutive frames pinned at MinSpeed
}

var Board = donburi.NewComponentType[BoardData]()
