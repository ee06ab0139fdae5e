package factory

import (
	"math"
	"math/rand"

	"github.com/jacksakers/CarveDrifters/archetypes"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSnowField spawns the cosmetic snowfall layer with flakes
// scattered over the whole screen.
func CreateSnowField(e *ecs.ECS) *donburi.Entry {
	snow := archetypes.SnowField.Spawn(e)

	flakes := make([]components.Flake, cfg.Snow.FlakeCount)
	for i := range flakes {
		flakes[i] = components.Flake{
			X:     rand.Float64() * float64(cfg.C.Width),
			Y:     rand.Float64() * float64(cfg.C.Height),
			Speed: cfg.Snow.MinFallSpeed + rand.Float64()*(cfg.Snow.MaxFallSpeed-cfg.Snow.MinFallSpeed),
			Phase: rand.Float64() * 2 * math.Pi,
			Size:  1 + rand.Float64()*2,
		}
	}
	components.Snow.SetValue(snow, components.SnowData{Flakes: flakes})

	return snow
}
