package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

var testNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// twoByTwoState builds a state with a 2-week mesocycle of 2 days per week,
// each day one exercise with 2 planned sets.
func twoByTwoState() *models.AppState {
	state := models.DefaultState()

	day := func(week, dayNum int) models.WorkoutDay {
		return models.WorkoutDay{
			ID:        "test_day",
			Name:      "Push",
			DayNumber: dayNum,
			Exercises: []models.PlannedExercise{{
				ExerciseID: "bench_press",
				Name:       "Barbell Bench Press",
				Muscle:     models.MuscleChest,
				Sets: []models.PlannedSet{
					{TargetReps: 10, TargetRIR: 2},
					{TargetReps: 10, TargetRIR: 2},
				},
			}},
		}
	}

	state.Mesocycle = &models.Mesocycle{
		ID:          "meso",
		TemplateKey: "test",
		Weeks:       2,
		VolumeGoal:  models.GoalMAV,
		StartDate:   testNow,
		WeeksData: []models.MesocycleWeek{
			{WeekNumber: 1, Workouts: []models.WorkoutDay{day(1, 1), day(1, 2)}},
			{WeekNumber: 2, IsDeload: true, Workouts: []models.WorkoutDay{day(2, 1), day(2, 2)}},
		},
		CurrentWeek: 1,
		CurrentDay:  1,
	}
	return state
}

func TestStartAppliesSuggestions(t *testing.T) {
	state := twoByTwoState()
	state.ExerciseHistory["bench_press"] = []models.HistoryEntry{
		{Date: testNow.AddDate(0, 0, -7), Weight: 60, Reps: 10, RIR: floatPtr(3)},
	}

	require.NoError(t, Start(state, testNow))
	require.NotNil(t, state.ActiveWorkout)
	assert.Equal(t, testNow, state.ActiveWorkout.StartTime)

	for _, set := range state.ActiveWorkout.Exercises[0].Sets {
		require.NotNil(t, set.SuggestedWeight)
		assert.Equal(t, 62.5, *set.SuggestedWeight)
		require.NotNil(t, set.Weight)
		assert.Equal(t, 62.5, *set.Weight)
	}

	// The planned day in the mesocycle is untouched.
	planned := state.Mesocycle.WeeksData[0].Workouts[0]
	assert.Nil(t, planned.Exercises[0].Sets[0].Weight)
}

func TestStartWithoutHistoryLeavesWeightNil(t *testing.T) {
	state := twoByTwoState()
	require.NoError(t, Start(state, testNow))
	assert.Nil(t, state.ActiveWorkout.Exercises[0].Sets[0].SuggestedWeight)
	assert.Nil(t, state.ActiveWorkout.Exercises[0].Sets[0].Weight)
}

func TestStartPreconditions(t *testing.T) {
	t.Run("no mesocycle", func(t *testing.T) {
		state := models.DefaultState()
		assert.ErrorIs(t, Start(state, testNow), ErrNoMesocycle)
	})

	t.Run("already active", func(t *testing.T) {
		state := twoByTwoState()
		require.NoError(t, Start(state, testNow))
		assert.ErrorIs(t, Start(state, testNow), ErrWorkoutActive)
	})
}

func TestUpdateSet(t *testing.T) {
	state := twoByTwoState()
	require.NoError(t, Start(state, testNow))

	require.NoError(t, UpdateSet(state, 0, 0, floatPtr(60), floatPtr(2), intPtr(10)))
	set := state.ActiveWorkout.Exercises[0].Sets[0]
	assert.Equal(t, 60.0, *set.Weight)
	assert.Equal(t, 10, *set.Reps)
	assert.Equal(t, 2.0, *set.RIR)

	t.Run("completed sets are immutable", func(t *testing.T) {
		_, err := CompleteSet(state, 0, 0, testNow)
		require.NoError(t, err)
		assert.ErrorIs(t, UpdateSet(state, 0, 0, floatPtr(100), nil, nil), ErrSetCompleted)
		assert.Equal(t, 60.0, *state.ActiveWorkout.Exercises[0].Sets[0].Weight)
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Error(t, UpdateSet(state, 5, 0, floatPtr(60), nil, nil))
		assert.Error(t, UpdateSet(state, 0, 9, floatPtr(60), nil, nil))
	})
}

func TestCompleteSet(t *testing.T) {
	state := twoByTwoState()
	state.Settings.RestTimerSeconds = 90
	require.NoError(t, Start(state, testNow))

	t.Run("requires weight and reps", func(t *testing.T) {
		_, err := CompleteSet(state, 0, 0, testNow)
		assert.ErrorIs(t, err, ErrMissingWeightReps)
		assert.False(t, state.ActiveWorkout.Exercises[0].Sets[0].Completed)
		assert.Empty(t, state.ExerciseHistory["bench_press"])
	})

	require.NoError(t, UpdateSet(state, 0, 0, floatPtr(60), floatPtr(2), intPtr(10)))
	rest, err := CompleteSet(state, 0, 0, testNow)
	require.NoError(t, err)
	assert.Equal(t, 90, rest)
	assert.True(t, state.ActiveWorkout.Exercises[0].Sets[0].Completed)

	history := state.ExerciseHistory["bench_press"]
	require.Len(t, history, 1)
	assert.Equal(t, models.HistoryEntry{Date: testNow, Weight: 60, Reps: 10, RIR: floatPtr(2)}, history[0])

	t.Run("double completion rejected", func(t *testing.T) {
		_, err := CompleteSet(state, 0, 0, testNow)
		assert.ErrorIs(t, err, ErrSetCompleted)
		assert.Len(t, state.ExerciseHistory["bench_press"], 1)
	})
}

func TestCompleteSetCapsHistory(t *testing.T) {
	state := twoByTwoState()
	oldest := testNow.AddDate(0, -6, 0)
	for i := 0; i < models.HistoryCap; i++ {
		state.ExerciseHistory["bench_press"] = append(state.ExerciseHistory["bench_press"],
			models.HistoryEntry{Date: oldest.AddDate(0, 0, i), Weight: 50, Reps: 10})
	}
	require.NoError(t, Start(state, testNow))
	require.NoError(t, UpdateSet(state, 0, 0, floatPtr(60), nil, intPtr(10)))

	_, err := CompleteSet(state, 0, 0, testNow)
	require.NoError(t, err)

	history := state.ExerciseHistory["bench_press"]
	require.Len(t, history, models.HistoryCap)
	// Oldest entry dropped, newest appended.
	assert.Equal(t, oldest.AddDate(0, 0, 1), history[0].Date)
	assert.Equal(t, 60.0, history[len(history)-1].Weight)
}

func TestReplaceExercise(t *testing.T) {
	state := twoByTwoState()
	state.ExerciseHistory["incline_bench_press"] = []models.HistoryEntry{
		{Date: testNow.AddDate(0, 0, -3), Weight: 40, Reps: 10, RIR: floatPtr(2)},
	}
	require.NoError(t, Start(state, testNow))

	// Complete the first set with logged numbers, leave the second pending.
	require.NoError(t, UpdateSet(state, 0, 0, floatPtr(60), nil, intPtr(10)))
	_, err := CompleteSet(state, 0, 0, testNow)
	require.NoError(t, err)

	newEx := models.Exercise{ID: "incline_bench_press", Name: "Incline Barbell Bench Press"}
	require.NoError(t, ReplaceExercise(state, 0, newEx))

	ex := state.ActiveWorkout.Exercises[0]
	assert.Equal(t, "incline_bench_press", ex.ExerciseID)
	assert.Equal(t, "Incline Barbell Bench Press", ex.Name)

	// Completed set keeps its logged values.
	assert.True(t, ex.Sets[0].Completed)
	assert.Equal(t, 60.0, *ex.Sets[0].Weight)

	// Pending set resuggested against the new exercise's history.
	require.NotNil(t, ex.Sets[1].SuggestedWeight)
	assert.Equal(t, 40.0, *ex.Sets[1].SuggestedWeight)
	assert.Equal(t, 40.0, *ex.Sets[1].Weight)
}

func TestAddSet(t *testing.T) {
	state := twoByTwoState()
	require.NoError(t, Start(state, testNow))
	require.NoError(t, UpdateSet(state, 0, 1, floatPtr(62.5), nil, nil))

	require.NoError(t, AddSet(state, 0))
	ex := state.ActiveWorkout.Exercises[0]
	require.Len(t, ex.Sets, 3)

	added := ex.Sets[2]
	assert.Equal(t, 10, added.TargetReps)
	assert.Equal(t, 2, added.TargetRIR)
	// Suggestion taken from the last set's logged weight.
	require.NotNil(t, added.SuggestedWeight)
	assert.Equal(t, 62.5, *added.SuggestedWeight)
	assert.False(t, added.Completed)
}

func TestRemoveSetKeepsAtLeastOne(t *testing.T) {
	state := twoByTwoState()
	require.NoError(t, Start(state, testNow))

	removed, err := RemoveSet(state, 0, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, state.ActiveWorkout.Exercises[0].Sets, 1)

	// Removing the only set is a no-op.
	removed, err = RemoveSet(state, 0, 0)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, state.ActiveWorkout.Exercises[0].Sets, 1)
}

func TestAddAndRemoveExercise(t *testing.T) {
	state := twoByTwoState()
	require.NoError(t, Start(state, testNow))

	newEx := models.Exercise{ID: "cable_fly", Name: "Cable Fly", PrimaryMuscle: models.MuscleChest}
	require.NoError(t, AddExercise(state, newEx, models.MuscleChest))
	require.Len(t, state.ActiveWorkout.Exercises, 2)

	added := state.ActiveWorkout.Exercises[1]
	assert.Equal(t, "cable_fly", added.ExerciseID)
	require.Len(t, added.Sets, 2)
	assert.Equal(t, 10, added.Sets[0].TargetReps)
	assert.Equal(t, 2, added.Sets[0].TargetRIR)

	removed, err := RemoveExercise(state, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, state.ActiveWorkout.Exercises, 1)

	// Removing the only exercise is a no-op.
	removed, err = RemoveExercise(state, 0)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, state.ActiveWorkout.Exercises, 1)
}

func finishDay(t *testing.T, state *models.AppState, at time.Time) *models.ActiveWorkout {
	t.Helper()
	require.NoError(t, Start(state, at))
	require.NoError(t, UpdateSet(state, 0, 0, floatPtr(60), nil, intPtr(10)))
	_, err := CompleteSet(state, 0, 0, at)
	require.NoError(t, err)
	done, err := Finish(state, models.Feedback{Pump: 3, Soreness: 2, Performance: 4}, at.Add(45*time.Minute))
	require.NoError(t, err)
	return done
}

func TestFinishAdvancesCursor(t *testing.T) {
	state := twoByTwoState()

	done := finishDay(t, state, testNow)
	assert.True(t, done.Completed)
	assert.Equal(t, 45*60, done.DurationSeconds)
	require.NotNil(t, done.Feedback)
	assert.Equal(t, 3, done.Feedback.Pump)

	// Completed day written back into its slot, cursor on day 2.
	assert.Nil(t, state.ActiveWorkout)
	assert.True(t, state.Mesocycle.WeeksData[0].Workouts[0].Completed)
	assert.Equal(t, 1, state.Mesocycle.CurrentWeek)
	assert.Equal(t, 2, state.Mesocycle.CurrentDay)
	assert.Len(t, state.History, 1)

	// Last day of week 1 rolls into week 2.
	finishDay(t, state, testNow.AddDate(0, 0, 1))
	assert.Equal(t, 2, state.Mesocycle.CurrentWeek)
	assert.Equal(t, 1, state.Mesocycle.CurrentDay)
}

func TestFinishOnFinalDayClampsCursor(t *testing.T) {
	state := twoByTwoState()
	for i := 0; i < 3; i++ {
		finishDay(t, state, testNow.AddDate(0, 0, i))
	}
	require.Equal(t, 2, state.Mesocycle.CurrentWeek)
	require.Equal(t, 2, state.Mesocycle.CurrentDay)

	before := len(state.History)
	finishDay(t, state, testNow.AddDate(0, 0, 3))

	// Cursor stays on the final day; exactly one history entry appended.
	assert.Equal(t, 2, state.Mesocycle.CurrentWeek)
	assert.Equal(t, 2, state.Mesocycle.CurrentDay)
	assert.Len(t, state.History, before+1)
	assert.True(t, state.Mesocycle.IsComplete())

	// The plan is over: starting again is refused.
	assert.ErrorIs(t, Start(state, testNow.AddDate(0, 0, 4)), ErrMesocycleComplete)
}

func TestFinishWithoutActiveWorkout(t *testing.T) {
	state := twoByTwoState()
	_, err := Finish(state, models.Feedback{}, testNow)
	assert.ErrorIs(t, err, ErrNoActiveWorkout)
}
