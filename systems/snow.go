package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSnow advances the cosmetic snowfall. Flakes drift sideways on a
// sine sway and wrap from the bottom back to the top; the simulation
// never reads any of this.
func UpdateSnow(e *ecs.ECS) {
	snowEntry, ok := components.Snow.First(e.World)
	if !ok {
		return
	}
	snow := components.Snow.Get(snowEntry)

	for i := range snow.Flakes {
		f := &snow.Flakes[i]
		f.Y += f.Speed
		f.Phase += 0.02
		f.X += math.Sin(f.Phase) * cfg.Snow.DriftAmplitude * 0.02

		if f.Y > float64(cfg.C.Height) {
			f.Y = -2
			f.X = rng.Float64() * float64(cfg.C.Width)
		}
	}
}

// DrawSnow renders the snowfall layer over the scene.
func DrawSnow(e *ecs.ECS, screen *ebiten.Image) {
	snowEntry, ok := components.Snow.First(e.World)
	if !ok {
		return
	}
	snow := components.Snow.Get(snowEntry)

	for i := range snow.Flakes {
		f := &snow.Flakes[i]
		vector.DrawFilledCircle(screen,
			float32(f.X), float32(f.Y), float32(f.Size), cfg.SnowWhite, false)
	}
}
