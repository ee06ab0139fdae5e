package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSlope renders the sky, the snow field and the lane grid lines
// converging on the vanishing point.
func DrawSlope(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SlopeBlue)
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.Perspective.HorizonY), cfg.SkyBlue, false)

	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return
	}
	offset := components.Grid.Get(gridEntry).PlayerLaneOffset

	centerX := float64(cfg.C.Width) / 2
	half := float64(cfg.Perspective.GridColumns-1) / 2
	lineColor := color.RGBA{255, 255, 255, 40}

	// Boundary lines sit between lanes. The offset's fractional part
	// slides them so carving visibly sweeps the grid past the player.
	frac := offset - math.Floor(offset)
	for b := -half - 1; b <= half+1; b++ {
		lane := b + 0.5 - frac
		topX := gamemath.LaneScreenX(centerX, lane, 0,
			cfg.Perspective.FarWidth, cfg.Perspective.NearWidth, cfg.Perspective.GridColumns, 0)
		bottomX := gamemath.LaneScreenX(centerX, lane, 0,
			cfg.Perspective.FarWidth, cfg.Perspective.NearWidth, cfg.Perspective.GridColumns, 1)
		vector.StrokeLine(screen,
			float32(topX), float32(cfg.Perspective.HorizonY),
			float32(bottomX), float32(cfg.C.Height),
			1, lineColor, false)
	}
}

// DrawObstacles renders every live tree back to front so nearer trees
// overlap farther ones.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return
	}
	offset := components.Grid.Get(gridEntry).PlayerLaneOffset

	var entries []*donburi.Entry
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if components.Obstacle.Get(entry).Alive {
			entries = append(entries, entry)
		}
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Obstacle.Get(entries[i]).Depth < components.Obstacle.Get(entries[j]).Depth
	})

	for _, entry := range entries {
		ob := components.Obstacle.Get(entry)
		x, y := ObstacleScreenPos(ob, offset)

		scale := gamemath.VisualScale(cfg.Perspective.ScaleMin, cfg.Perspective.ScaleMax, ob.Depth)
		if ob.PopIn != nil {
			v, _ := ob.PopIn.Update(0) // read without advancing; UpdateObstacles owns the tween clock
			scale *= float64(v)
		}
		size := ob.BaseSize * scale

		// Far trees fade in out of the haze
		alpha := gamemath.Clamp01(ob.Depth*4 + 0.15)

		switch ob.Silhouette {
		case components.SilhouetteRounded:
			drawRoundedTree(screen, x, y, size, treeColor(ob.Shade), alpha)
		default:
			drawPineTree(screen, x, y, size, treeColor(ob.Shade), alpha)
		}
	}
}

func treeColor(shade components.Shade) color.RGBA {
	switch shade {
	case components.ShadeDark:
		return cfg.DarkGreen
	case components.ShadeLight:
		return color.RGBA{55, 120, 70, 255}
	default:
		return cfg.PineGreen
	}
}

// drawPineTree stacks progressively narrower canopy slabs over a trunk;
// (x, y) is the trunk base.
func drawPineTree(screen *ebiten.Image, x, y, size float64, clr color.RGBA, alpha float64) {
	c := fadeColor(clr, alpha)
	trunk := fadeColor(cfg.TrunkBrown, alpha)

	trunkW := size * 0.12
	trunkH := size * 0.2
	vector.DrawFilledRect(screen,
		float32(x-trunkW/2), float32(y-trunkH),
		float32(trunkW), float32(trunkH), trunk, false)

	tiers := 3
	for i := 0; i < tiers; i++ {
		w := size * (0.9 - 0.25*float64(i))
		h := size * 0.28
		tierY := y - trunkH - float64(i+1)*h
		vector.DrawFilledRect(screen,
			float32(x-w/2), float32(tierY),
			float32(w), float32(h), c, false)
	}
}

// drawRoundedTree draws a blob canopy over a trunk; (x, y) is the
// trunk base.
func drawRoundedTree(screen *ebiten.Image, x, y, size float64, clr color.RGBA, alpha float64) {
	c := fadeColor(clr, alpha)
	trunk := fadeColor(cfg.TrunkBrown, alpha)

	trunkW := size * 0.12
	trunkH := size * 0.2
	vector.DrawFilledRect(screen,
		float32(x-trunkW/2), float32(y-trunkH),
		float32(trunkW), float32(trunkH), trunk, false)

	r := size * 0.42
	vector.DrawFilledCircle(screen, float32(x), float32(y-trunkH-r*0.9), float32(r), c, false)
	vector.DrawFilledCircle(screen, float32(x-r*0.5), float32(y-trunkH-r*0.5), float32(r*0.7), c, false)
	vector.DrawFilledCircle(screen, float32(x+r*0.5), float32(y-trunkH-r*0.5), float32(r*0.7), c, false)
}

// DrawPlayer renders the board as a thick stroke along its heading with
// both feet on top, plus a spray fan while carving hard.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(playerEntry)
	feet := components.Feet.Get(playerEntry)

	cx := float64(cfg.C.Width) / 2
	cy := cfg.Perspective.NearY

	dx := math.Cos(board.Angle)
	dy := math.Sin(board.Angle)
	halfL := cfg.Board.Length / 2

	if board.Carving > cfg.Scoring.CarveThreshold && board.Alive {
		drawSpray(screen, cx, cy, board)
	}

	vector.StrokeLine(screen,
		float32(cx-dx*halfL), float32(cy-dy*halfL),
		float32(cx+dx*halfL), float32(cy+dy*halfL),
		float32(cfg.Board.Width), cfg.BoardRed, true)

	vector.DrawFilledCircle(screen,
		float32(cx+feet.Left.Pos.X), float32(cy+feet.Left.Pos.Y),
		float32(cfg.Board.FootRadius), cfg.BootBlack, true)
	vector.DrawFilledCircle(screen,
		float32(cx+feet.Right.Pos.X), float32(cy+feet.Right.Pos.Y),
		float32(cfg.Board.FootRadius), cfg.White, true)
}

// drawSpray scatters a few flecks on the uphill side of the board,
// heavier the harder the carve. Cosmetic only.
func drawSpray(screen *ebiten.Image, cx, cy float64, board *components.BoardData) {
	side := 1.0
	if math.Cos(board.Angle) > 0 {
		side = -1.0
	}
	n := 3 + int(board.Carving*5)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		px := cx + side*(12+t*26+rng.Float64()*6)
		py := cy + 6 - t*18 + rng.Float64()*8
		vector.DrawFilledCircle(screen, float32(px), float32(py),
			float32(1.5+rng.Float64()*1.5), cfg.SnowWhite, false)
	}
}

func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	a := gamemath.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
