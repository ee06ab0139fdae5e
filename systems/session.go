package systems

import (
	"github.com/jacksakers/CarveDrifters/components"
	cfg "github.com/jacksakers/CarveDrifters/config"
	"github.com/jacksakers/CarveDrifters/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	donburievents "github.com/yohamta/donburi/features/events"
)

// frameSeconds is the fixed timestep; ebiten ticks at 60 per second.
const frameSeconds = 1.0 / 60.0

// Reason strings surfaced on the game over screen
const (
	ReasonCollision = "hit a tree"
	ReasonStalled   = "stalled out"
)

// WhileActive wraps a gameplay system so it only runs while the session
// is active. The collision transition therefore short-circuits the
// whole gameplay pipeline until a restart is observed.
func WhileActive(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session, ok := currentSession(e); ok && session.Active {
			system(e)
		}
	}
}

// UpdateSession aggregates distance and score each active frame and
// performs the terminal transition the moment the board reports dead.
// Runs after the obstacle pass, before the event flush.
func UpdateSession(e *ecs.ECS) {
	session, ok := currentSession(e)
	if !ok || !session.Active {
		return
	}
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)

	if !board.Alive {
		endSession(e, session, board)
		return
	}

	session.FrameCount++

	step := board.Velocity * cfg.Scoring.DistanceRate
	session.Distance += step
	if board.Carving > cfg.Scoring.CarveThreshold {
		step *= cfg.Scoring.CarveMultiplier
	}
	session.Score += step

	events.ScoreChangedEvent.Publish(e.World, events.ScoreChanged{Score: session.Score})
}

// endSession captures the final tallies at the instant of death and
// deactivates the session. The dying frame's movement is not scored.
func endSession(e *ecs.ECS, session *components.SessionData, board *components.BoardData) {
	session.Active = false
	session.FinalScore = session.Score
	session.FinalDistance = session.Distance
	if cfg.Physics.StallGameOver && board.StallFrames >= cfg.Physics.StallFrameLimit {
		session.Reason = ReasonStalled
	} else {
		session.Reason = ReasonCollision
	}

	if session.Score > session.Best {
		session.Best = session.Score
		SaveBestScore(session.Best)
	}

	events.GameOverEvent.Publish(e.World, events.GameOver{
		Score:    session.FinalScore,
		Distance: session.FinalDistance,
		Reason:   session.Reason,
	})
}

// SubscribeSessionEvents wires the session's own event handlers. Called
// once when the slope scene builds its world.
func SubscribeSessionEvents(w donburi.World) {
	events.ObstaclePassedEvent.Subscribe(w, onObstaclePassed)
}

// onObstaclePassed awards the discrete dodge bonus. The scored flag on
// the obstacle guarantees at most one event per tree.
func onObstaclePassed(w donburi.World, ev events.ObstaclePassed) {
	entry, ok := components.Session.First(w)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	if !session.Active {
		return
	}
	session.Score += ev.Points
}

// ResetRun transactionally rebuilds the run: obstacles cleared and
// repopulated with the initial batch, grid and feet re-homed, board
// revived, counters zeroed. Only valid while the session is inactive.
func ResetRun(e *ecs.ECS) {
	session, ok := currentSession(e)
	if !ok || session.Active {
		return
	}

	var obstacles []*donburi.Entry
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obstacles = append(obstacles, entry)
	})
	for _, entry := range obstacles {
		e.World.Remove(entry.Entity())
	}
	SpawnInitialBatch(e)

	if gridEntry, ok := components.Grid.First(e.World); ok {
		components.Grid.Get(gridEntry).PlayerLaneOffset = 0
	}
	if playerEntry, ok := components.Board.First(e.World); ok {
		ResetBoard(components.Board.Get(playerEntry))
		ResetFeet(components.Feet.Get(playerEntry))
	}

	best := session.Best
	*session = components.SessionData{
		Active: true,
		Best:   best,
	}

	events.GameResetEvent.Publish(e.World, events.GameReset{})
}

// FlushEvents delivers the frame's queued notifications to their
// subscribers. Registered last so every subscriber sees a settled frame.
func FlushEvents(e *ecs.ECS) {
	donburievents.ProcessAllEvents(e.World)
}

func currentSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}
