package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Silhouette selects the drawn tree shape. Cosmetic only; both shapes
// collide identically.
type Silhouette int

const (
	SilhouettePine Silhouette = iota
	SilhouetteRounded
)

// Shade picks one of the tree color variants. Cosmetic only.
type Shade int

const (
	ShadeDark Shade = iota
	ShadeMid
	ShadeLight
)

// ObstacleData is one live tree on the slope. Depth is monotonically
// non-decreasing while the obstacle is alive; past Obstacle.MaxDepth the
// tree expires and is removed on the next filtering pass.
type ObstacleData struct {
	Lane     int     // lane index relative to the grid center
	BaseSize float64 // pixels at full scale
	Depth    float64 // 0 = just spawned at the horizon, 1 = player row
	Alive    bool
	Scored   bool // pass points awarded at most once

	Silhouette Silhouette
	Shade      Shade

	// Spawn pop-in scale, render-only
	PopIn *gween.Tween
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
