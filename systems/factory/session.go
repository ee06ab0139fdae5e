package factory

import (
	"github.com/jacksakers/CarveDrifters/archetypes"
	"github.com/jacksakers/CarveDrifters/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session entity carrying the run aggregates
// and the perspective grid state.
func CreateSession(e *ecs.ECS, bestScore float64) *donburi.Entry {
	session := archetypes.Session.Spawn(e)

	components.Session.SetValue(session, components.SessionData{
		Active: true,
		Best:   bestScore,
	})
	components.Grid.SetValue(session, components.GridData{})

	return session
}
