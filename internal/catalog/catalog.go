package catalog

import (
	"sort"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

// Exercises returns the combined exercise table: built-ins first, then any
// custom exercises the state carries for each muscle.
func Exercises(state *models.AppState) map[models.MuscleGroup][]models.Exercise {
	combined := make(map[models.MuscleGroup][]models.Exercise, len(DefaultExercises))
	for muscle, list := range DefaultExercises {
		merged := make([]models.Exercise, 0, len(list))
		merged = append(merged, list...)
		if state != nil {
			merged = append(merged, state.CustomExercises[muscle]...)
		}
		combined[muscle] = merged
	}
	if state != nil {
		for muscle, list := range state.CustomExercises {
			if _, ok := combined[muscle]; !ok {
				combined[muscle] = append([]models.Exercise{}, list...)
			}
		}
	}
	return combined
}

// Templates returns the combined template table keyed by template key.
func Templates(state *models.AppState) map[string]models.Template {
	combined := make(map[string]models.Template, len(DefaultTemplates))
	for key, t := range DefaultTemplates {
		combined[key] = t
	}
	if state != nil {
		for key, t := range state.CustomTemplates {
			combined[key] = t
		}
	}
	return combined
}

// FindExercise looks an exercise up by id across the combined table.
func FindExercise(state *models.AppState, id string) (models.Exercise, bool) {
	for _, list := range Exercises(state) {
		for _, ex := range list {
			if ex.ID == id {
				return ex, true
			}
		}
	}
	return models.Exercise{}, false
}

// TemplateKeys returns the combined template keys in sorted order, for
// stable listings.
func TemplateKeys(state *models.AppState) []string {
	all := Templates(state)
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
