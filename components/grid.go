package components

import "github.com/yohamta/donburi"

// GridData is the perspective grid's per-session state. PlayerLaneOffset
// is the player's continuous fractional lane position; it is unbounded,
// carving steers it without limit.
type GridData struct {
	PlayerLaneOffset float64
}

var Grid = donburi.NewComponentType[GridData]()
