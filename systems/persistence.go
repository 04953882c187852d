package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/shoutybird/config"
	"github.com/quasilyte/gdata"
)

// SavedScores represents the score data stored on disk
type SavedScores struct {
	Best   int `json:"best"`
	Rounds int `json:"rounds"`
}

// ScoreStore is the subset of *gdata.Manager the game uses.
type ScoreStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenScoreStore opens the gdata-backed store for this app.
func OpenScoreStore() (ScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return m, nil
}

// LoadScores loads scores from store. A missing item yields nil, nil.
func LoadScores(store ScoreStore) (*SavedScores, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Persistence.ScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		return nil, nil
	}
	if data == nil {
		// Nothing saved yet
		return nil, nil
	}

	var scores SavedScores
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse saved scores: %v", err)
		return nil, err
	}
	return &scores, nil
}

// SaveScores writes scores to store.
func SaveScores(store ScoreStore, s *SavedScores) error {
	if store == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize scores: %v", err)
		return err
	}

	if err := store.SaveItem(cfg.Persistence.ScoreKey, data); err != nil {
		log.Printf("Warning: Could not save scores: %v", err)
		return err
	}
	return nil
}
