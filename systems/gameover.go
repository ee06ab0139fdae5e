package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates the run-over overlay system. It only acts
// while the session is inactive: fades the overlay in, navigates the
// menu, and accepts the restart trigger.
func NewUpdateGameOver(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		session, ok := currentSession(e)
		if !ok {
			return
		}
		gameOver := getOrCreateGameOver(e)

		if session.Active {
			// Arm the overlay for the next death
			gameOver.Fade = nil
			gameOver.FadeAlpha = 0
			gameOver.SelectedOption = components.GameOverRestart
			return
		}

		if gameOver.Fade == nil {
			gameOver.Fade = gween.New(0, float32(cfg.GameOver.OverlayColor.A), float32(cfg.GameOver.FadeSeconds), ease.OutQuad)
		}
		alpha, _ := gameOver.Fade.Update(float32(frameSeconds))
		gameOver.FadeAlpha = float64(alpha)

		input := getOrCreateInput(e)

		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionRestart).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRestart:
				ResetRun(e)
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the run-over overlay with the final tallies.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := currentSession(e)
	if !ok || session.Active {
		return
	}
	gameOver := getOrCreateGameOver(e)

	width := float64(cfg.C.Width)
	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(gameOver.FadeAlpha)
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), overlay, false)

	drawTitle(screen, "WIPEOUT", width/2, cfg.GameOver.TitleY, 3, cfg.GameOver.TitleColor)
	drawTextCentered(screen, fmt.Sprintf("you %s", session.Reason),
		width/2, cfg.GameOver.TitleY+40, cfg.GameOver.TitleColor)
	drawTextCentered(screen,
		fmt.Sprintf("score %.0f   distance %.0fm", session.FinalScore, session.FinalDistance),
		width/2, cfg.GameOver.TitleY+58, cfg.GameOver.TitleColor)
	if session.FinalScore >= session.Best && session.Best > 0 {
		drawTextCentered(screen, "new best!", width/2, cfg.GameOver.TitleY+76, cfg.HUD.CarveColor)
	}

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*cfg.GameOver.MenuItemHeight

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		drawTextCentered(screen, option, width/2, y, textColor)
	}

	drawTextCentered(screen, "space to restart", width/2,
		cfg.GameOver.MenuStartY+float64(len(cfg.GameOver.MenuOptions))*cfg.GameOver.MenuItemHeight+16,
		color.RGBA{180, 180, 180, 255})
}

func getOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(entry, components.GameOverData{
			SelectedOption: components.GameOverRestart,
		})
	}
	return components.GameOver.Get(entry)
}
