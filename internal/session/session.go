package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hypertrophy/hypertrophy/internal/analytics"
	"github.com/hypertrophy/hypertrophy/internal/models"
)

var (
	ErrNoMesocycle       = errors.New("no mesocycle planned")
	ErrMesocycleComplete = errors.New("mesocycle is complete")
	ErrWorkoutActive     = errors.New("a workout is already in progress")
	ErrNoActiveWorkout   = errors.New("no active workout")
	ErrSetCompleted      = errors.New("set is already completed")
	ErrMissingWeightReps = errors.New("set needs both weight and reps before completion")
)

// Start snapshots the mesocycle's current planned day into an active
// workout. Every set gets a suggested weight derived from the exercise's
// history, and the editable weight starts at that suggestion.
func Start(state *models.AppState, now time.Time) error {
	if state.ActiveWorkout != nil {
		return ErrWorkoutActive
	}
	if state.Mesocycle == nil {
		return ErrNoMesocycle
	}
	if state.Mesocycle.IsComplete() {
		return ErrMesocycleComplete
	}
	planned := state.Mesocycle.CurrentWorkout()
	if planned == nil {
		return ErrNoMesocycle
	}

	day := cloneDay(*planned)
	for i := range day.Exercises {
		ex := &day.Exercises[i]
		history := state.ExerciseHistory[ex.ExerciseID]
		for j := range ex.Sets {
			set := &ex.Sets[j]
			set.SuggestedWeight = analytics.SuggestNextWeight(history, set.TargetReps, set.TargetRIR, state.Settings)
			set.Weight = copyFloat(set.SuggestedWeight)
		}
	}

	state.ActiveWorkout = &models.ActiveWorkout{
		WorkoutDay: day,
		StartTime:  now,
	}
	return nil
}

// UpdateSet overwrites the logged fields of one set. Only non-nil values
// are applied. Completed sets are immutable.
func UpdateSet(state *models.AppState, exIdx, setIdx int, weight, rir *float64, reps *int) error {
	set, err := setAt(state, exIdx, setIdx)
	if err != nil {
		return err
	}
	if set.Completed {
		return ErrSetCompleted
	}
	if weight != nil {
		set.Weight = copyFloat(weight)
	}
	if reps != nil {
		r := *reps
		set.Reps = &r
	}
	if rir != nil {
		set.RIR = copyFloat(rir)
	}
	return nil
}

// CompleteSet marks a set done and appends it to the exercise's history,
// capped at the most recent entries. It returns the rest period to arm.
// A set without both weight and reps cannot be completed.
func CompleteSet(state *models.AppState, exIdx, setIdx int, now time.Time) (int, error) {
	if state.ActiveWorkout == nil {
		return 0, ErrNoActiveWorkout
	}
	if exIdx < 0 || exIdx >= len(state.ActiveWorkout.Exercises) {
		return 0, fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &state.ActiveWorkout.Exercises[exIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return 0, fmt.Errorf("set index %d out of range", setIdx+1)
	}
	set := &ex.Sets[setIdx]
	if set.Completed {
		return 0, ErrSetCompleted
	}
	if set.Weight == nil || set.Reps == nil || *set.Weight == 0 || *set.Reps == 0 {
		return 0, ErrMissingWeightReps
	}

	entry := models.HistoryEntry{
		Date:   now,
		Weight: *set.Weight,
		Reps:   *set.Reps,
		RIR:    copyFloat(set.RIR),
	}
	history := append(state.ExerciseHistory[ex.ExerciseID], entry)
	if len(history) > models.HistoryCap {
		history = history[len(history)-models.HistoryCap:]
	}
	if state.ExerciseHistory == nil {
		state.ExerciseHistory = map[string][]models.HistoryEntry{}
	}
	state.ExerciseHistory[ex.ExerciseID] = history

	set.Completed = true
	return state.Settings.RestTimerSeconds, nil
}

// ReplaceExercise swaps one planned exercise for another mid-session.
// Sets not yet completed get fresh suggestions against the new exercise's
// history; completed sets keep their logged values.
func ReplaceExercise(state *models.AppState, exIdx int, newEx models.Exercise) error {
	if state.ActiveWorkout == nil {
		return ErrNoActiveWorkout
	}
	if exIdx < 0 || exIdx >= len(state.ActiveWorkout.Exercises) {
		return fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &state.ActiveWorkout.Exercises[exIdx]
	ex.ExerciseID = newEx.ID
	ex.Name = newEx.Name

	history := state.ExerciseHistory[newEx.ID]
	for i := range ex.Sets {
		set := &ex.Sets[i]
		if set.Completed {
			continue
		}
		set.SuggestedWeight = analytics.SuggestNextWeight(history, set.TargetReps, set.TargetRIR, state.Settings)
		set.Weight = copyFloat(set.SuggestedWeight)
	}
	return nil
}

// AddSet appends a set cloning the last set's targets. The suggestion is
// the last set's logged weight when present, else a fresh one.
func AddSet(state *models.AppState, exIdx int) error {
	if state.ActiveWorkout == nil {
		return ErrNoActiveWorkout
	}
	if exIdx < 0 || exIdx >= len(state.ActiveWorkout.Exercises) {
		return fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &state.ActiveWorkout.Exercises[exIdx]

	targetReps, targetRIR := 10, 2
	var suggested *float64
	if len(ex.Sets) > 0 {
		last := ex.Sets[len(ex.Sets)-1]
		targetReps, targetRIR = last.TargetReps, last.TargetRIR
		suggested = copyFloat(last.Weight)
	}
	if suggested == nil {
		suggested = analytics.SuggestNextWeight(state.ExerciseHistory[ex.ExerciseID], targetReps, targetRIR, state.Settings)
	}

	ex.Sets = append(ex.Sets, models.PlannedSet{
		TargetReps:      targetReps,
		TargetRIR:       targetRIR,
		Weight:          copyFloat(suggested),
		SuggestedWeight: suggested,
	})
	return nil
}

// RemoveSet drops one set. Removing the exercise's only set is a silent
// no-op: every exercise keeps at least one set. The return reports
// whether anything was removed.
func RemoveSet(state *models.AppState, exIdx, setIdx int) (bool, error) {
	if state.ActiveWorkout == nil {
		return false, ErrNoActiveWorkout
	}
	if exIdx < 0 || exIdx >= len(state.ActiveWorkout.Exercises) {
		return false, fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &state.ActiveWorkout.Exercises[exIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return false, fmt.Errorf("set index %d out of range", setIdx+1)
	}
	if len(ex.Sets) <= 1 {
		return false, nil
	}
	ex.Sets = append(ex.Sets[:setIdx], ex.Sets[setIdx+1:]...)
	return true, nil
}

// AddExercise appends a new exercise with two default sets.
func AddExercise(state *models.AppState, newEx models.Exercise, muscle models.MuscleGroup) error {
	if state.ActiveWorkout == nil {
		return ErrNoActiveWorkout
	}
	suggested := analytics.SuggestNextWeight(state.ExerciseHistory[newEx.ID], 10, 2, state.Settings)
	sets := make([]models.PlannedSet, 2)
	for i := range sets {
		sets[i] = models.PlannedSet{
			TargetReps:      10,
			TargetRIR:       2,
			Weight:          copyFloat(suggested),
			SuggestedWeight: copyFloat(suggested),
		}
	}
	state.ActiveWorkout.Exercises = append(state.ActiveWorkout.Exercises, models.PlannedExercise{
		ExerciseID: newEx.ID,
		Name:       newEx.Name,
		Muscle:     muscle,
		Sets:       sets,
	})
	return nil
}

// RemoveExercise drops one exercise. Removing the workout's only exercise
// is a silent no-op.
func RemoveExercise(state *models.AppState, exIdx int) (bool, error) {
	if state.ActiveWorkout == nil {
		return false, ErrNoActiveWorkout
	}
	if exIdx < 0 || exIdx >= len(state.ActiveWorkout.Exercises) {
		return false, fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	if len(state.ActiveWorkout.Exercises) <= 1 {
		return false, nil
	}
	state.ActiveWorkout.Exercises = append(
		state.ActiveWorkout.Exercises[:exIdx],
		state.ActiveWorkout.Exercises[exIdx+1:]...,
	)
	return true, nil
}

// Finish closes the active workout: stamps end time and duration, writes
// the completed day back into its mesocycle slot, appends it to global
// history, and advances the cursor. On the plan's final day the cursor
// stays put. Returns the completed record.
func Finish(state *models.AppState, feedback models.Feedback, now time.Time) (*models.ActiveWorkout, error) {
	if state.ActiveWorkout == nil {
		return nil, ErrNoActiveWorkout
	}

	completed := *state.ActiveWorkout
	completed.WorkoutDay = cloneDay(state.ActiveWorkout.WorkoutDay)
	end := now
	completed.EndTime = &end
	completed.DurationSeconds = int(math.Round(now.Sub(completed.StartTime).Seconds()))
	fb := feedback
	completed.Feedback = &fb
	completed.Completed = true

	if meso := state.Mesocycle; meso != nil && meso.CurrentWorkout() != nil {
		week := &meso.WeeksData[meso.CurrentWeek-1]
		week.Workouts[meso.CurrentDay-1] = cloneDay(completed.WorkoutDay)
		if meso.CurrentDay < len(week.Workouts) {
			meso.CurrentDay++
		} else if meso.CurrentWeek < meso.Weeks {
			meso.CurrentWeek++
			meso.CurrentDay = 1
		}
	}

	state.History = append(state.History, completed)
	state.ActiveWorkout = nil
	return &completed, nil
}

func setAt(state *models.AppState, exIdx, setIdx int) (*models.PlannedSet, error) {
	if state.ActiveWorkout == nil {
		return nil, ErrNoActiveWorkout
	}
	if exIdx < 0 || exIdx >= len(state.ActiveWorkout.Exercises) {
		return nil, fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &state.ActiveWorkout.Exercises[exIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return nil, fmt.Errorf("set index %d out of range", setIdx+1)
	}
	return &ex.Sets[setIdx], nil
}

// cloneDay deep-copies a workout day so the active session never aliases
// the plan stored in the mesocycle.
func cloneDay(day models.WorkoutDay) models.WorkoutDay {
	out := day
	out.Exercises = make([]models.PlannedExercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		cloned := ex
		cloned.Sets = make([]models.PlannedSet, len(ex.Sets))
		for j, set := range ex.Sets {
			s := set
			s.Weight = copyFloat(set.Weight)
			s.RIR = copyFloat(set.RIR)
			s.SuggestedWeight = copyFloat(set.SuggestedWeight)
			if set.Reps != nil {
				r := *set.Reps
				s.Reps = &r
			}
			cloned.Sets[j] = s
		}
		out.Exercises[i] = cloned
	}
	if day.Feedback != nil {
		fb := *day.Feedback
		out.Feedback = &fb
	}
	return out
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
