package config

import (
	"fmt"
	"image/color"
)

// PhysicsConfig contains slope physics configuration values
type PhysicsConfig struct {
	// Acceleration applied per frame while the board is aligned down-slope
	Gravity float64

	// Friction multipliers blended by alignment (perpendicular = sideways board)
	FrictionParallel      float64
	FrictionPerpendicular float64

	// Forward speed bounds (units per frame)
	MinSpeed float64
	MaxSpeed float64

	// Alignment above which the board accelerates instead of scrubbing speed
	AccelAlignment float64

	// Stall detection
	StallSpeedEpsilon float64 // velocity within this of MinSpeed counts as stalled
	StallFrameLimit   int     // consecutive stalled frames before a stall game over
	StallGameOver     bool    // product decision: stall ending is off by default
}

// BoardConfig contains board geometry and foot constraint configuration
type BoardConfig struct {
	Length     float64 // pixels, nose to tail
	Width      float64 // pixels
	FootRadius float64 // pixels, drawn foot size

	FootHomeOffset   float64 // pixels, each foot's rest distance from board center
	MaxFootExtension float64 // pixels, max foot distance from board center
	MinFeetDistance  float64 // pixels, feet are pushed apart below this

	SpringStrength float64 // per-frame spring gain toward the input target
	Damping        float64 // per-frame foot velocity multiplier (< 1)
}

// InputConfig contains input tuning for the foot axes
type InputConfig struct {
	Sensitivity     float64 // raw input multiplier
	DeadZone        float64 // raw magnitude below which a foot freezes
	MaxDisplacement float64 // pixels, full-deflection foot target distance
}

// ObstacleConfig contains obstacle lifecycle tuning
type ObstacleConfig struct {
	MinSize float64 // pixels, base silhouette size range
	MaxSize float64

	SpawnChance float64 // per-frame Bernoulli probability of a spawn attempt
	MaxOnScreen int
	MinOnScreen int // floor enforcement respawns up to this count

	BaseSpeed       float64 // approach speed independent of the player
	SpeedMultiplier float64 // scales playerVelocity's contribution

	StartDepth     float64 // depth assigned at spawn
	MaxDepth       float64 // past this the obstacle expires
	PassDepth      float64 // depth at which the player has dodged it
	NearFieldDepth float64 // collision is only checked beyond this depth
	SpawnGapDepth  float64 // a lane holding an obstacle shallower than this rejects spawns

	CollisionFactor float64 // obstacle collision radius = size * depth * factor

	InitialBatch int // obstacles placed at session start and on restart

	SpawnMode SpawnMode
	SteerBias bool // optional: bias spawn side opposite current steering
}

// SpawnMode selects how spawn lanes are chosen
type SpawnMode int

const (
	// SpawnFixed picks uniformly across the static lane band, excluding the center lane
	SpawnFixed SpawnMode = iota
	// SpawnInfinite picks within a window around the player's current rounded lane
	SpawnInfinite
)

// PerspectiveConfig contains depth projection and lane grid tuning
type PerspectiveConfig struct {
	GridColumns int     // lane count, odd so a center lane exists
	FarWidth    float64 // pixels, grid width at the vanishing point
	NearWidth   float64 // pixels, grid width at the player row

	HorizonY float64 // pixels, screen y at depth 0
	NearY    float64 // pixels, screen y at depth 1 (player row)

	ScaleMin float64 // visual scale fraction at depth 0
	ScaleMax float64 // visual scale fraction at depth 1

	DepthCurveExponent float64 // > 1; near obstacles close in faster
	LaneShiftSpeed     float64 // carving-to-lane-offset rate
}

// ScoringConfig contains score and distance accumulation tuning
type ScoringConfig struct {
	DistanceRate    float64 // distance per velocity unit per frame
	CarveMultiplier float64 // score multiplier while carving hard
	CarveThreshold  float64 // carvingAmount above this earns the multiplier
	PassPoints      float64 // flat award per dodged obstacle
	PassBonus       float64 // multiplier on PassPoints
}

// SnowConfig contains cosmetic snowfall tuning (no gameplay feedback)
type SnowConfig struct {
	FlakeCount     int
	MinFallSpeed   float64 // pixels per frame
	MaxFallSpeed   float64
	DriftAmplitude float64 // pixels of horizontal sway
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin           float64
	SpeedBarWidth    float64
	SpeedBarHeight   float64
	BonusFlashFrames int // frames the +points popup stays visible

	SpeedBarBg color.RGBA
	SpeedBarFg color.RGBA
	TextColor  color.RGBA
	CarveColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// GameOverConfig contains the run-over overlay configuration
type GameOverConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	FadeSeconds       float64 // overlay fade-in duration
	MenuOptions       []string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu    bool // skip menu and go directly to the slope
	ShowOverlay bool // start with the debug snapshot visible
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Board BoardConfig
var Input InputConfig
var Obstacle ObstacleConfig
var Perspective PerspectiveConfig
var Scoring ScoringConfig
var Snow SnowConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SnowWhite    = color.RGBA{R: 235, G: 240, B: 250, A: 255}
	SkyBlue      = color.RGBA{R: 150, G: 190, B: 235, A: 255}
	SlopeBlue    = color.RGBA{R: 205, G: 220, B: 240, A: 255}
	PineGreen    = color.RGBA{R: 30, G: 90, B: 50, A: 255}
	DarkGreen    = color.RGBA{R: 20, G: 65, B: 40, A: 255}
	TrunkBrown   = color.RGBA{R: 90, G: 60, B: 35, A: 255}
	BoardRed     = color.RGBA{R: 200, G: 50, B: 60, A: 255}
	BootBlack    = color.RGBA{R: 30, G: 30, B: 35, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:               0.22,
		FrictionParallel:      0.995,
		FrictionPerpendicular: 0.92,
		MinSpeed:              2.0,
		MaxSpeed:              12.0,
		AccelAlignment:        0.7,
		StallSpeedEpsilon:     0.05,
		StallFrameLimit:       300, // 5s at 60fps
		StallGameOver:         false,
	}

	Board = BoardConfig{
		Length:           60.0,
		Width:            16.0,
		FootRadius:       6.0,
		FootHomeOffset:   20.0,
		MaxFootExtension: 34.0,
		MinFeetDistance:  18.0,
		SpringStrength:   0.18,
		Damping:          0.72,
	}

	Input = InputConfig{
		Sensitivity:     1.0,
		DeadZone:        0.15,
		MaxDisplacement: 26.0,
	}

	Obstacle = ObstacleConfig{
		MinSize:         40.0,
		MaxSize:         90.0,
		SpawnChance:     0.035,
		MaxOnScreen:     8,
		MinOnScreen:     2,
		BaseSpeed:       1.5,
		SpeedMultiplier: 1.5,
		StartDepth:      0.05,
		MaxDepth:        1.2,
		PassDepth:       0.9,
		NearFieldDepth:  0.7,
		SpawnGapDepth:   0.3,
		CollisionFactor: 0.35,
		InitialBatch:    3,
		SpawnMode:       SpawnFixed,
		SteerBias:       false,
	}

	Perspective = PerspectiveConfig{
		GridColumns:        7,
		FarWidth:           90.0,
		NearWidth:          860.0,
		HorizonY:           58.0,
		NearY:              300.0,
		ScaleMin:           0.08,
		ScaleMax:           1.0,
		DepthCurveExponent: 1.8,
		LaneShiftSpeed:     0.004,
	}

	Scoring = ScoringConfig{
		DistanceRate:    0.1,
		CarveMultiplier: 1.5,
		CarveThreshold:  0.5,
		PassPoints:      10.0,
		PassBonus:       1.0,
	}

	Snow = SnowConfig{
		FlakeCount:     80,
		MinFallSpeed:   0.6,
		MaxFallSpeed:   2.2,
		DriftAmplitude: 9.0,
	}

	HUD = HUDConfig{
		Margin:           10.0,
		SpeedBarWidth:    110.0,
		SpeedBarHeight:   10.0,
		BonusFlashFrames: 45,
		SpeedBarBg:       color.RGBA{40, 40, 40, 255},
		SpeedBarFg:       color.RGBA{40, 220, 40, 255},
		TextColor:        White,
		CarveColor:       color.RGBA{255, 180, 50, 255},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{18, 28, 48, 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            110.0,
		MenuStartY:        190.0,
		MenuItemHeight:    26.0,
		MenuOptions:       []string{"RIDE", "EXIT"},
	}

	GameOver = GameOverConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            120.0,
		MenuStartY:        220.0,
		MenuItemHeight:    26.0,
		FadeSeconds:       0.6,
		MenuOptions:       []string{"RESTART", "MENU"},
	}

	Debug = DebugConfig{
		SkipMenu:    false,
		ShowOverlay: false,
	}
}

// Validate checks startup invariants that would otherwise corrupt a session.
// Called once from main before the game loop starts.
func Validate() error {
	if Physics.MinSpeed > Physics.MaxSpeed {
		return fmt.Errorf("config: MinSpeed %.2f exceeds MaxSpeed %.2f", Physics.MinSpeed, Physics.MaxSpeed)
	}
	if Physics.FrictionParallel < Physics.FrictionPerpendicular {
		return fmt.Errorf("config: FrictionParallel %.3f below FrictionPerpendicular %.3f", Physics.FrictionParallel, Physics.FrictionPerpendicular)
	}
	if Board.Damping <= 0 || Board.Damping >= 1 {
		return fmt.Errorf("config: foot damping %.2f outside (0, 1)", Board.Damping)
	}
	if Board.MinFeetDistance > 2*Board.MaxFootExtension {
		return fmt.Errorf("config: MinFeetDistance %.1f cannot be satisfied within MaxFootExtension %.1f", Board.MinFeetDistance, Board.MaxFootExtension)
	}
	if Perspective.GridColumns < 2 {
		return fmt.Errorf("config: GridColumns %d must be at least 2", Perspective.GridColumns)
	}
	if Perspective.DepthCurveExponent <= 1 {
		return fmt.Errorf("config: DepthCurveExponent %.2f must exceed 1", Perspective.DepthCurveExponent)
	}
	if Obstacle.StartDepth >= Obstacle.PassDepth || Obstacle.PassDepth >= Obstacle.MaxDepth {
		return fmt.Errorf("config: obstacle depth thresholds out of order (start %.2f, pass %.2f, max %.2f)",
			Obstacle.StartDepth, Obstacle.PassDepth, Obstacle.MaxDepth)
	}
	if Obstacle.MinOnScreen > Obstacle.MaxOnScreen {
		return fmt.Errorf("config: MinOnScreen %d exceeds MaxOnScreen %d", Obstacle.MinOnScreen, Obstacle.MaxOnScreen)
	}
	if Obstacle.SpawnChance < 0 || Obstacle.SpawnChance > 1 {
		return fmt.Errorf("config: SpawnChance %.3f outside [0, 1]", Obstacle.SpawnChance)
	}
	return nil
}
