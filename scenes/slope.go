package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jacksakers/CarveDrifters/systems"
	"github.com/jacksakers/CarveDrifters/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SlopeScene runs the ride itself: the full simulation pipeline in a
// fixed per-frame order plus the presentation layers on top.
type SlopeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewSlopeScene creates a new slope scene
func NewSlopeScene(sc SceneChanger) *SlopeScene {
	return &SlopeScene{sceneChanger: sc}
}

func (ss *SlopeScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SlopeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SlopeScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ss.sceneChanger)
	}

	// The simulation depends on this exact order: input feeds the feet,
	// the feet feed the board, the board feeds the lane offset, and
	// obstacles project through the settled offset before the session
	// aggregates the frame. Events flush last so subscribers never see
	// a half-updated frame.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.WhileActive(systems.UpdateFeet))
	e.AddSystem(systems.WhileActive(systems.UpdateBoard))
	e.AddSystem(systems.WhileActive(systems.UpdateGrid))
	e.AddSystem(systems.WhileActive(systems.UpdateObstacles))
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.NewUpdateGameOver(ss.sceneChanger, createMenuScene))
	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateSnow)
	e.AddSystem(systems.FlushEvents)

	e.AddRenderer(ecs.LayerDefault, systems.DrawSlope)
	e.AddRenderer(ecs.LayerDefault, systems.DrawObstacles)
	e.AddRenderer(ecs.LayerDefault, systems.DrawPlayer)
	e.AddRenderer(ecs.LayerDefault, systems.DrawSnow)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawDebug)
	e.AddRenderer(ecs.LayerDefault, systems.DrawGameOver)

	ss.ecs = e

	systems.SubscribeSessionEvents(e.World)
	systems.SubscribeHUDEvents(e.World)

	factory.CreateSession(e, systems.LoadBestScore())
	factory.CreatePlayer(e)
	factory.CreateSnowField(e)
	systems.SpawnInitialBatch(e)
}
