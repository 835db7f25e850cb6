package models

import "time"

// HistoryEntry is one logged set for one exercise. The per-exercise list
// is append-only, capped at the most recent 100 entries.
type HistoryEntry struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	RIR    *float64  `json:"rir"`
}

// HistoryCap bounds each exercise's logged history.
const HistoryCap = 100

type Profile struct {
	Name       string `json:"name"`
	Experience string `json:"experience"`
	Gender     string `json:"gender"`
}

type Settings struct {
	RestTimerSeconds  int     `json:"restTimerSeconds"`
	AutoProgress      bool    `json:"autoProgress"`
	WeightIncrementKg float64 `json:"weightIncrementKg"`
}

// Settings bounds, enforced at the settings command.
const (
	RestTimerMin       = 30
	RestTimerMax       = 300
	WeightIncrementMin = 0.5
	WeightIncrementMax = 10
)

// AppState is the single persisted state blob. One in-process owner loads
// it at startup, mutates it, and writes it back in full after every
// mutation.
type AppState struct {
	Profile         Profile                     `json:"profile"`
	Mesocycle       *Mesocycle                  `json:"mesocycle"`
	ActiveWorkout   *ActiveWorkout              `json:"activeWorkout"`
	History         []ActiveWorkout             `json:"history"`
	Settings        Settings                    `json:"settings"`
	CustomExercises map[MuscleGroup][]Exercise  `json:"customExercises"`
	CustomTemplates map[string]Template         `json:"customTemplates"`
	ExerciseHistory map[string][]HistoryEntry   `json:"exerciseHistory"`
}

// DefaultState returns a freshly initialized AppState.
func DefaultState() *AppState {
	return &AppState{
		Profile: Profile{Experience: "intermediate", Gender: "male"},
		Settings: Settings{
			RestTimerSeconds:  120,
			AutoProgress:      true,
			WeightIncrementKg: 2.5,
		},
		History:         []ActiveWorkout{},
		CustomExercises: map[MuscleGroup][]Exercise{},
		CustomTemplates: map[string]Template{},
		ExerciseHistory: map[string][]HistoryEntry{},
	}
}
