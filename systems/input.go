package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the discrete action array and the
// per-foot raw axis vectors. Must run before every other system.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Keys.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	raw := getOrCreateRawInput(e)
	raw.Left = footAxes(cfg.Keys.LeftFoot)
	raw.Right = footAxes(cfg.Keys.RightFoot)
}

// footAxes folds a foot's four keys into a raw vector with each
// component in [-1, 1]; opposing keys cancel.
func footAxes(b cfg.FootBinding) gamemath.Vec {
	var v gamemath.Vec
	if ebiten.IsKeyPressed(b.Left) {
		v.X -= 1
	}
	if ebiten.IsKeyPressed(b.Right) {
		v.X += 1
	}
	if ebiten.IsKeyPressed(b.Up) {
		v.Y -= 1
	}
	if ebiten.IsKeyPressed(b.Down) {
		v.Y += 1
	}
	return v
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// getOrCreateRawInput returns the singleton RawInput component, creating if needed
func getOrCreateRawInput(e *ecs.ECS) *components.RawInputData {
	entry, ok := components.RawInput.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.RawInput))
	}
	return components.RawInput.Get(entry)
}
