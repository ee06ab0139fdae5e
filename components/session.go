package components

import "github.com/yohamta/donburi"

// SessionData aggregates one run. Score and Distance are monotonically
// non-decreasing while the session is active.
type SessionData struct {
	Score      float64
	Distance   float64
	FrameCount int
	Active     bool

	Best float64 // best score loaded from disk, updated on game over

	// Captured at the instant the session goes inactive
	FinalScore    float64
	FinalDistance float64
	Reason        string
}

var Session = donburi.NewComponentType[SessionData]()
