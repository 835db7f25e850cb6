package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

// stateDocument mirrors AppState with pointer fields so a decoded blob can
// tell "absent" from "zero" and each missing field gets defaulted
// explicitly instead of leaking through a structural merge.
type stateDocument struct {
	Profile         *models.Profile                                  `json:"profile"`
	Mesocycle       *models.Mesocycle                                `json:"mesocycle"`
	ActiveWorkout   *models.ActiveWorkout                            `json:"activeWorkout"`
	History         *[]models.ActiveWorkout                          `json:"history"`
	Settings        *models.Settings                                 `json:"settings"`
	CustomExercises *map[models.MuscleGroup][]models.Exercise        `json:"customExercises"`
	CustomTemplates *map[string]models.Template                      `json:"customTemplates"`
	ExerciseHistory *map[string][]models.HistoryEntry                `json:"exerciseHistory"`
}

// recognizedKeys are the top-level state keys an import must carry at
// least one of.
var recognizedKeys = []string{
	"profile", "mesocycle", "history", "activeWorkout",
	"settings", "customExercises", "customTemplates", "exerciseHistory",
}

// EncodeState serializes the full state blob.
func EncodeState(state *models.AppState) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeState parses a state blob, falling back to defaults for every
// field the document does not carry.
func DecodeState(data []byte) (*models.AppState, error) {
	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}

	state := models.DefaultState()
	if doc.Profile != nil {
		state.Profile = *doc.Profile
	}
	if doc.Mesocycle != nil {
		state.Mesocycle = doc.Mesocycle
	}
	if doc.ActiveWorkout != nil {
		state.ActiveWorkout = doc.ActiveWorkout
	}
	if doc.History != nil {
		state.History = *doc.History
	}
	if doc.Settings != nil {
		state.Settings = *doc.Settings
	}
	if doc.CustomExercises != nil {
		state.CustomExercises = *doc.CustomExercises
	}
	if doc.CustomTemplates != nil {
		state.CustomTemplates = *doc.CustomTemplates
	}
	if doc.ExerciseHistory != nil {
		state.ExerciseHistory = *doc.ExerciseHistory
	}
	return state, nil
}

// Export serializes the state for backup, indented for the humans who will
// inevitably open the file.
func Export(state *models.AppState) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// BackupFilename names a backup file for the given date.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("hypertrophy-backup-%s.json", now.Format("2006-01-02"))
}

// ValidateImport accepts a candidate backup only when it is a JSON object
// carrying at least one recognized top-level state key.
func ValidateImport(data []byte) bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}
	if raw == nil {
		return false
	}
	for _, key := range recognizedKeys {
		if _, ok := raw[key]; ok {
			return true
		}
	}
	return false
}

// Import validates and decodes a backup into a full state, defaulting any
// fields the backup does not carry.
func Import(data []byte) (*models.AppState, error) {
	if !ValidateImport(data) {
		return nil, fmt.Errorf("invalid backup: no recognized state keys")
	}
	return DecodeState(data)
}
