package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRestart
	ActionDebugToggle
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// FootBinding maps four keys onto a foot's raw [-1,1] axes
type FootBinding struct {
	Up    ebiten.Key
	Down  ebiten.Key
	Left  ebiten.Key
	Right ebiten.Key
}

// KeyBindings holds all input mappings
type KeyBindings struct {
	Bindings  map[ActionID]InputBinding
	LeftFoot  FootBinding
	RightFoot FootBinding
}

// Keys is the global input configuration
var Keys KeyBindings

func init() {
	Keys = KeyBindings{
		// Left foot on WASD, right foot on the arrow keys
		LeftFoot: FootBinding{
			Up:    ebiten.KeyW,
			Down:  ebiten.KeyS,
			Left:  ebiten.KeyA,
			Right: ebiten.KeyD,
		},
		RightFoot: FootBinding{
			Up:    ebiten.KeyUp,
			Down:  ebiten.KeyDown,
			Left:  ebiten.KeyLeft,
			Right: ebiten.KeyRight,
		},
		Bindings: map[ActionID]InputBinding{
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
			},
			ActionDebugToggle: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
