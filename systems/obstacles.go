package systems

import (
	"math"
	"math/rand"

	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/events"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/jacksakers/CarveDrifters/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(42))

// UpdateObstacles runs the per-frame obstacle pass in fixed order:
// approach, collision, pass scoring, then dead-obstacle removal, then
// spawning. Depends on the board update and the grid offset update
// having already run this frame.
func UpdateObstacles(e *ecs.ECS) {
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)
	grid := components.Grid.Get(gridEntry)

	approach := gamemath.ApproachSpeed(cfg.Obstacle.BaseSpeed, board.Velocity, cfg.Obstacle.SpeedMultiplier)

	playerX := float64(cfg.C.Width) / 2
	playerY := cfg.Perspective.NearY
	playerRadius := cfg.Board.Length / 2

	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		ob := components.Obstacle.Get(entry)
		if !ob.Alive {
			return
		}

		ob.Depth += gamemath.DepthStep(ob.Depth, approach, cfg.Perspective.DepthCurveExponent)
		if ob.PopIn != nil {
			if _, done := ob.PopIn.Update(float32(frameSeconds)); done {
				ob.PopIn = nil
			}
		}

		if ob.Depth > cfg.Obstacle.MaxDepth {
			ob.Alive = false
			return
		}

		// Collision only once the tree is in the near field; distant
		// silhouettes overlap the player column without ever touching it.
		if board.Alive && ob.Depth > cfg.Obstacle.NearFieldDepth {
			ox, oy := ObstacleScreenPos(ob, grid.PlayerLaneOffset)
			radius := ob.BaseSize * ob.Depth * cfg.Obstacle.CollisionFactor
			if circlesOverlap(playerX, playerY, playerRadius, ox, oy, radius) {
				board.Alive = false
				return
			}
		}

		if ob.Depth > cfg.Obstacle.PassDepth && !ob.Scored {
			ob.Scored = true
			events.ObstaclePassedEvent.Publish(e.World, events.ObstaclePassed{
				Lane:   ob.Lane,
				Points: cfg.Scoring.PassPoints * cfg.Scoring.PassBonus,
			})
		}
	})

	RemoveDeadObstacles(e)
	spawnObstacles(e, board, grid)
}

// ObstacleScreenPos projects an obstacle to screen coordinates through
// the lane grid.
func ObstacleScreenPos(ob *components.ObstacleData, playerOffset float64) (float64, float64) {
	x := gamemath.LaneScreenX(float64(cfg.C.Width)/2, float64(ob.Lane), playerOffset,
		cfg.Perspective.FarWidth, cfg.Perspective.NearWidth, cfg.Perspective.GridColumns, ob.Depth)
	y := gamemath.DepthScreenY(cfg.Perspective.HorizonY, cfg.Perspective.NearY, ob.Depth)
	return x, y
}

func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	a := resolv.NewCircle(x1, y1, r1)
	b := resolv.NewCircle(x2, y2, r2)
	return a.Intersection(0, 0, b) != nil
}

// RemoveDeadObstacles filters out every obstacle whose Alive flag has
// been cleared. Runs once per frame, after update/collision/scoring.
func RemoveDeadObstacles(e *ecs.ECS) {
	var dead []*donburi.Entry
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if !components.Obstacle.Get(entry).Alive {
			dead = append(dead, entry)
		}
	})
	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}

// CountObstacles returns the live obstacle count.
func CountObstacles(e *ecs.ECS) int {
	count := 0
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if components.Obstacle.Get(entry).Alive {
			count++
		}
	})
	return count
}

// spawnObstacles performs the per-frame Bernoulli spawn attempt gated by
// the on-screen maximum, then enforces the minimum live count.
func spawnObstacles(e *ecs.ECS, board *components.BoardData, grid *components.GridData) {
	count := CountObstacles(e)

	if count < cfg.Obstacle.MaxOnScreen && rng.Float64() < cfg.Obstacle.SpawnChance {
		if TrySpawnObstacle(e, pickSpawnLane(board, grid)) {
			count++
		}
	}

	// Floor enforcement: one attempt per missing obstacle; a rejected
	// attempt is skipped, not retried this frame.
	for i := count; i < cfg.Obstacle.MinOnScreen; i++ {
		TrySpawnObstacle(e, pickSpawnLane(board, grid))
	}
}

// TrySpawnObstacle spawns a tree on the lane at the configured start
// depth, unless another far-depth obstacle already occupies that lane.
// Reports whether the spawn happened.
func TrySpawnObstacle(e *ecs.ECS, lane int) bool {
	if laneOccupiedFar(e, lane) {
		return false
	}
	size := cfg.Obstacle.MinSize + rng.Float64()*(cfg.Obstacle.MaxSize-cfg.Obstacle.MinSize)
	factory.CreateObstacle(e, lane, size, cfg.Obstacle.StartDepth, randomSilhouette(), randomShade())
	return true
}

// laneOccupiedFar reports whether a live obstacle still in the far
// spawn window holds the lane.
func laneOccupiedFar(e *ecs.ECS, lane int) bool {
	occupied := false
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		ob := components.Obstacle.Get(entry)
		if ob.Alive && ob.Lane == lane && ob.Depth < cfg.Obstacle.SpawnGapDepth {
			occupied = true
		}
	})
	return occupied
}

// pickSpawnLane chooses the lane for the next spawn attempt according
// to the configured spawn mode, with an optional bias toward the side
// the player is steering away from.
func pickSpawnLane(board *components.BoardData, grid *components.GridData) int {
	half := (cfg.Perspective.GridColumns - 1) / 2

	var lane int
	switch cfg.Obstacle.SpawnMode {
	case cfg.SpawnInfinite:
		// Window around the player's current rounded lane, so the slope
		// stays populated however far carving has drifted the offset.
		center := int(math.Round(grid.PlayerLaneOffset))
		lane = center - half + rng.Intn(cfg.Perspective.GridColumns)
	default:
		// Static band excluding the center lane
		lane = rng.Intn(cfg.Perspective.GridColumns-1) - half
		if lane >= 0 {
			lane++
		}
	}

	if cfg.Obstacle.SteerBias {
		// Drop trees on the side the player is turning away from, so
		// carving back across the slope stays dangerous.
		steering := math.Cos(board.Angle)
		if steering > 0.1 && lane > 0 {
			lane = -lane
		} else if steering < -0.1 && lane < 0 {
			lane = -lane
		}
	}

	return lane
}

// SpawnInitialBatch places the session-start obstacles on distinct
// lanes at staggered depths.
func SpawnInitialBatch(e *ecs.ECS) {
	half := (cfg.Perspective.GridColumns - 1) / 2

	// Distinct non-center lanes, shuffled
	lanes := make([]int, 0, cfg.Perspective.GridColumns-1)
	for l := -half; l <= half; l++ {
		if l != 0 {
			lanes = append(lanes, l)
		}
	}
	rng.Shuffle(len(lanes), func(i, j int) { lanes[i], lanes[j] = lanes[j], lanes[i] })

	for i := 0; i < cfg.Obstacle.InitialBatch && i < len(lanes); i++ {
		size := cfg.Obstacle.MinSize + rng.Float64()*(cfg.Obstacle.MaxSize-cfg.Obstacle.MinSize)
		depth := cfg.Obstacle.StartDepth + float64(i)*0.12
		factory.CreateObstacle(e, lanes[i], size, depth, randomSilhouette(), randomShade())
	}
}

func randomSilhouette() components.Silhouette {
	if rng.Float64() < 0.7 {
		return components.SilhouettePine
	}
	return components.SilhouetteRounded
}

func randomShade() components.Shade {
	return components.Shade(rng.Intn(3))
}
