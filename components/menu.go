package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuRide MainMenuOption = iota
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	TitlePulse    float64 // title pulse phase, radians wrapped at 2 pi
}

var Menu = donburi.NewComponentType[MenuData]()
