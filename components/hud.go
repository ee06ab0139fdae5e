package components

import "github.com/yohamta/donburi"

// HUDData is the HUD's view of the simulation, maintained entirely by
// event subscriptions so the HUD never reaches into the core state.
type HUDData struct {
	Score         float64
	Best          float64
	Distance      float64
	SpeedFraction float64 // velocity as a fraction of MaxSpeed
	Carving       bool
	CarvingAmount float64

	BonusText   string // e.g. "+10"
	BonusFrames int    // frames the popup remains visible
}

var HUD = donburi.NewComponentType[HUDData]()
