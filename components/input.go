package components

import (
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the full input state for an action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the discrete action state for the current and previous
// frame; edges are derived by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
