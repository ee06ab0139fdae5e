package systems

import (
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the main menu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createSlopeScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)

		menu.TitlePulse += 0.03
		if menu.TitlePulse > 2*math.Pi {
			menu.TitlePulse -= 2 * math.Pi
		}

		numOptions := len(cfg.Menu.MenuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch components.MainMenuOption(menu.SelectedIndex) {
			case components.MainMenuRide:
				sceneChanger.ChangeScene(createSlopeScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)

	screen.Fill(cfg.Menu.BackgroundColor)
	width := float64(cfg.C.Width)

	scale := 4 + 0.25*math.Sin(menu.TitlePulse)
	drawTitle(screen, "CARVE DRIFTERS", width/2, cfg.Menu.TitleY, scale, cfg.Menu.TitleColor)
	drawTextCentered(screen, "WASD steers your back foot, arrows your front",
		width/2, cfg.Menu.TitleY+50, cfg.DarkBlue)

	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawTextCentered(screen, option, width/2, y, textColor)
	}
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
