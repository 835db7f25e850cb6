package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hypertrophy/hypertrophy/internal/catalog"
	"github.com/hypertrophy/hypertrophy/internal/models"
)

const (
	defaultTargetReps = 10
	deloadFactor      = 0.6
	deloadRIR         = 4
)

// isolationMuscles get single-exercise coverage per day; everything else
// gets two movements.
var isolationMuscles = map[models.MuscleGroup]bool{
	models.MuscleAbs:      true,
	models.MuscleCalves:   true,
	models.MuscleForearms: true,
	models.MuscleTraps:    true,
}

// GenerateMesocycle builds a complete week-by-week plan from a template.
// Weekly per-exercise set counts ramp linearly from the muscle's MEV
// toward the chosen volume landmark, both spread across the template's
// training days; the final week is a deload at 60% volume and RIR 4.
func GenerateMesocycle(state *models.AppState, templateKey string, weeks int, goal models.VolumeGoal) (*models.Mesocycle, error) {
	if weeks < 1 {
		return nil, fmt.Errorf("mesocycle length must be at least 1 week, got %d", weeks)
	}
	template, ok := catalog.Templates(state)[templateKey]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", templateKey)
	}
	exerciseDB := catalog.Exercises(state)

	weeksData := make([]models.MesocycleWeek, 0, weeks)
	for week := 1; week <= weeks; week++ {
		deload := week == weeks
		workouts := make([]models.WorkoutDay, 0, len(template.Split))
		for dayIndex, day := range template.Split {
			var exercises []models.PlannedExercise
			for _, muscle := range day.Muscles {
				pool := exerciseDB[muscle]
				if len(pool) == 0 {
					continue
				}
				n := 2
				if isolationMuscles[muscle] {
					n = 1
				}
				if n > len(pool) {
					n = len(pool)
				}
				landmark := catalog.VolumeLandmarks[muscle]
				sets := setsForWeek(landmark, goal, template.Days, week, weeks)
				targetRIR := targetRIRForWeek(week, weeks)
				for _, ex := range pool[:n] {
					planned := models.PlannedExercise{
						ExerciseID: ex.ID,
						Name:       ex.Name,
						Muscle:     muscle,
						Sets:       make([]models.PlannedSet, sets),
					}
					for i := range planned.Sets {
						planned.Sets[i] = models.PlannedSet{
							TargetReps: defaultTargetReps,
							TargetRIR:  targetRIR,
						}
					}
					exercises = append(exercises, planned)
				}
			}
			workouts = append(workouts, models.WorkoutDay{
				ID:        fmt.Sprintf("week%d_day%d", week, dayIndex+1),
				Name:      day.Name,
				DayNumber: dayIndex + 1,
				Exercises: exercises,
			})
		}
		weeksData = append(weeksData, models.MesocycleWeek{
			WeekNumber: week,
			IsDeload:   deload,
			Workouts:   workouts,
		})
	}

	return &models.Mesocycle{
		ID:           uuid.New().String(),
		TemplateKey:  templateKey,
		TemplateName: template.Name,
		Weeks:        weeks,
		VolumeGoal:   goal,
		StartDate:    time.Now().UTC(),
		WeeksData:    weeksData,
		CurrentWeek:  1,
		CurrentDay:   1,
	}, nil
}

// setsForWeek interpolates the per-day set count between the MEV start and
// the goal landmark, deloading the final week. Never below 2 sets.
func setsForWeek(landmark models.VolumeLandmark, goal models.VolumeGoal, days, week, weeks int) int {
	startSets := math.Ceil(float64(landmark.MEV) / float64(days))
	endSets := math.Ceil(float64(landmark.Landmark(goal)) / float64(days))

	// With a single-week plan there is nothing to interpolate across.
	fraction := 0.0
	if weeks > 1 {
		fraction = float64(week-1) / float64(weeks-1)
	}
	interpolated := math.Round(startSets + (endSets-startSets)*fraction)

	sets := interpolated
	if week == weeks {
		sets = math.Round(interpolated * deloadFactor)
	}
	if sets < 2 {
		sets = 2
	}
	return int(sets)
}

// targetRIRForWeek tapers effort from RIR 4 toward failure over the block,
// backing off to RIR 4 on the deload.
func targetRIRForWeek(week, weeks int) int {
	if week == weeks {
		return deloadRIR
	}
	rir := 4 - int(math.Floor(float64(week-1)*1.2))
	if rir < 0 {
		rir = 0
	}
	return rir
}
