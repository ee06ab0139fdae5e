package factory

import (
	"github.com/jacksakers/CarveDrifters/archetypes"
	"github.com/jacksakers/CarveDrifters/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns a tree on the given lane at the given depth.
// Silhouette and shade are cosmetic picks made by the caller.
func CreateObstacle(e *ecs.ECS, lane int, baseSize, depth float64, silhouette components.Silhouette, shade components.Shade) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Lane:       lane,
		BaseSize:   baseSize,
		Depth:      depth,
		Alive:      true,
		Silhouette: silhouette,
		Shade:      shade,
		PopIn:      gween.New(0.3, 1, 0.35, ease.OutQuad),
	})

	return obstacle
}
