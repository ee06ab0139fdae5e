// Package events defines the typed notifications the simulation emits
// each frame for the HUD and other presentation-side consumers. They
// are queued through donburi's event feature and flushed once per frame
// after the session update, so subscribers never observe mid-frame
// state.
package events

import "github.com/yohamta/donburi/features/events"

// ScoreChanged carries the new score total.
type ScoreChanged struct {
	Score float64
}

// SpeedChanged carries the board speed as a fraction of MaxSpeed.
type SpeedChanged struct {
	Fraction float64
}

// CarvingChanged fires when the hard-carving state flips.
type CarvingChanged struct {
	Carving bool
	Amount  float64
}

// ObstaclePassed fires once per dodged obstacle.
type ObstaclePassed struct {
	Lane   int
	Points float64
}

// GameOver carries the final tallies and a human-readable reason.
type GameOver struct {
	Score    float64
	Distance float64
	Reason   string
}

// GameReset fires after a restart has rebuilt the run state.
type GameReset struct{}

var (
	ScoreChangedEvent   = events.NewEventType[ScoreChanged]()
	SpeedChangedEvent   = events.NewEventType[SpeedChanged]()
	CarvingChangedEvent = events.NewEventType[CarvingChanged]()
	ObstaclePassedEvent = events.NewEventType[ObstaclePassed]()
	GameOverEvent       = events.NewEventType[GameOver]()
	GameResetEvent      = events.NewEventType[GameReset]()
)
