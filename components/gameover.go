package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available run-over menu selections
type GameOverOption int

const (
	GameOverRestart GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the state of the run-over overlay
type GameOverData struct {
	SelectedOption GameOverOption
	Fade           *gween.Tween // overlay alpha fade-in
	FadeAlpha      float64
}

var GameOver = donburi.NewComponentType[GameOverData]()
