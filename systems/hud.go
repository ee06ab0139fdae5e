package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeHUDEvents wires the HUD's view of the simulation. The HUD
// only ever learns about the run through these notifications.
func SubscribeHUDEvents(w donburi.World) {
	events.ScoreChangedEvent.Subscribe(w, func(w donburi.World, ev events.ScoreChanged) {
		if hud, ok := hudData(w); ok {
			hud.Score = ev.Score
		}
	})
	events.SpeedChangedEvent.Subscribe(w, func(w donburi.World, ev events.SpeedChanged) {
		if hud, ok := hudData(w); ok {
			hud.SpeedFraction = ev.Fraction
		}
	})
	events.CarvingChangedEvent.Subscribe(w, func(w donburi.World, ev events.CarvingChanged) {
		if hud, ok := hudData(w); ok {
			hud.Carving = ev.Carving
			hud.CarvingAmount = ev.Amount
		}
	})
	events.ObstaclePassedEvent.Subscribe(w, func(w donburi.World, ev events.ObstaclePassed) {
		if hud, ok := hudData(w); ok {
			hud.BonusText = fmt.Sprintf("+%.0f", ev.Points)
			hud.BonusFrames = cfg.HUD.BonusFlashFrames
		}
	})
	events.GameOverEvent.Subscribe(w, func(w donburi.World, ev events.GameOver) {
		if hud, ok := hudData(w); ok {
			if ev.Score > hud.Best {
				hud.Best = ev.Score
			}
		}
	})
	events.GameResetEvent.Subscribe(w, func(w donburi.World, ev events.GameReset) {
		if hud, ok := hudData(w); ok {
			hud.Score = 0
			hud.BonusText = ""
			hud.BonusFrames = 0
		}
	})
}

// UpdateHUD ages the transient bonus popup.
func UpdateHUD(e *ecs.ECS) {
	hud := getOrCreateHUD(e)
	if hud.BonusFrames > 0 {
		hud.BonusFrames--
	}

	// Distance is cheap display state, read directly rather than
	// streamed through an event every frame.
	if session, ok := currentSession(e); ok {
		hud.Distance = session.Distance
		if session.Best > hud.Best {
			hud.Best = session.Best
		}
	}
}

// DrawHUD renders score, best, distance, the speed bar and the carve
// indicator in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := getOrCreateHUD(e)
	m := cfg.HUD.Margin

	drawText(screen, fmt.Sprintf("SCORE %6.0f", hud.Score), m, m, cfg.HUD.TextColor)
	drawText(screen, fmt.Sprintf("BEST  %6.0f", hud.Best), m, m+14, cfg.HUD.TextColor)
	drawText(screen, fmt.Sprintf("DIST  %6.0fm", hud.Distance), m, m+28, cfg.HUD.TextColor)

	// Speed bar
	barY := m + 46
	vector.DrawFilledRect(screen,
		float32(m), float32(barY),
		float32(cfg.HUD.SpeedBarWidth), float32(cfg.HUD.SpeedBarHeight),
		cfg.HUD.SpeedBarBg, false)
	vector.DrawFilledRect(screen,
		float32(m), float32(barY),
		float32(cfg.HUD.SpeedBarWidth*hud.SpeedFraction), float32(cfg.HUD.SpeedBarHeight),
		cfg.HUD.SpeedBarFg, false)

	if hud.Carving {
		drawText(screen, "CARVING", m, barY+cfg.HUD.SpeedBarHeight+6, cfg.HUD.CarveColor)
	}

	if hud.BonusFrames > 0 && hud.BonusText != "" {
		drawTextCentered(screen, hud.BonusText,
			float64(cfg.C.Width)/2, cfg.Perspective.NearY-60, cfg.HUD.CarveColor)
	}
}

func getOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}

func hudData(w donburi.World) (*components.HUDData, bool) {
	entry, ok := components.HUD.First(w)
	if !ok {
		return nil, false
	}
	return components.HUD.Get(entry), true
}
