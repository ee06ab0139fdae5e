package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay. The snapshot itself is captured by
// the board update so it reflects the frame's settled physics state.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	debug := getOrCreateDebug(e)
	if GetAction(input, cfg.ActionDebugToggle).JustPressed {
		debug.Visible = !debug.Visible
	}
}

// DrawDebug renders the per-frame simulation snapshot.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debug := getOrCreateDebug(e)
	if !debug.Visible {
		return
	}
	s := debug.Snapshot

	lines := []string{
		fmt.Sprintf("angle     %6.3f rad", s.BoardAngle),
		fmt.Sprintf("align     %6.3f", s.Alignment),
		fmt.Sprintf("friction  %6.3f", s.FrictionMultiplier),
		fmt.Sprintf("foot L    (%5.1f, %5.1f)", s.LeftFoot.X, s.LeftFoot.Y),
		fmt.Sprintf("foot R    (%5.1f, %5.1f)", s.RightFoot.X, s.RightFoot.Y),
		fmt.Sprintf("feet dist %6.1f", s.FeetDistance),
	}

	x := float64(cfg.C.Width) - 170
	y := cfg.HUD.Margin
	for i, line := range lines {
		drawText(screen, line, x, y+float64(i)*12, cfg.White)
	}
}

func getOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{
			Visible: cfg.Debug.ShowOverlay,
		})
	}
	return components.Debug.Get(entry)
}
