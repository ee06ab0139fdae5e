package components

import "github.com/yohamta/donburi"

// Flake is one cosmetic snow particle.
type Flake struct {
	X, Y  float64
	Speed float64 // pixels per frame
	Phase float64 // horizontal sway phase
	Size  float64
}

// SnowData holds the decoupled snowfall layer. Purely cosmetic, the
// simulation never reads it.
type SnowData struct {
	Flakes []Flake
}

var Snow = donburi.NewComponentType[SnowData]()
