package components

import (
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi"
)

// DebugSnapshot is the structured per-frame simulation snapshot emitted
// for the debug overlay.
type DebugSnapshot struct {
	BoardAngle         float64
	Alignment          float64
	FrictionMultiplier float64
	LeftFoot           gamemath.Vec
	RightFoot          gamemath.Vec
	FeetDistance       float64
}

// DebugData holds overlay visibility and the latest snapshot.
type DebugData struct {
	Visible  bool
	Snapshot DebugSnapshot
}

var Debug = donburi.NewComponentType[DebugData]()
