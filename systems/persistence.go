package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedScores represents the score data stored on disk
type SavedScores struct {
	BestScore float64 `json:"bestScore"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "carvedrifters",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadBestScore loads the saved best score, zero when none exists.
func LoadBestScore() float64 {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("scores")
	if err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		return 0
	}
	if data == nil {
		return 0
	}

	var scores SavedScores
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse saved scores: %v", err)
		return 0
	}
	return scores.BestScore
}

// SaveBestScore saves the best score to disk
func SaveBestScore(best float64) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedScores{BestScore: best})
	if err != nil {
		log.Printf("Warning: Could not serialize scores: %v", err)
		return
	}
	if err := gdataManager.SaveItem("scores", data); err != nil {
		log.Printf("Warning: Could not save scores: %v", err)
	}
}
