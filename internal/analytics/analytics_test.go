package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestEstimatedOneRepMax(t *testing.T) {
	t.Run("single rep equals weight", func(t *testing.T) {
		assert.Equal(t, 100.0, EstimatedOneRepMax(100, 1))
		assert.Equal(t, 62.5, EstimatedOneRepMax(62.5, 1))
	})

	t.Run("missing input returns zero", func(t *testing.T) {
		assert.Equal(t, 0.0, EstimatedOneRepMax(0, 10))
		assert.Equal(t, 0.0, EstimatedOneRepMax(100, 0))
		assert.Equal(t, 0.0, EstimatedOneRepMax(100, -3))
	})

	t.Run("monotonically non-decreasing in reps up to the clamp", func(t *testing.T) {
		prev := 0.0
		for reps := 1; reps <= 36; reps++ {
			e1rm := EstimatedOneRepMax(80, reps)
			assert.GreaterOrEqual(t, e1rm, prev, "reps=%d", reps)
			prev = e1rm
		}
	})

	t.Run("reps beyond 36 are clamped", func(t *testing.T) {
		assert.Equal(t, EstimatedOneRepMax(80, 36), EstimatedOneRepMax(80, 50))
	})

	t.Run("brzycki", func(t *testing.T) {
		// 60kg x 10 -> 60*36/27 = 80.
		assert.Equal(t, 80.0, EstimatedOneRepMax(60, 10))
	})
}

func TestBestPerformance(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		assert.Nil(t, BestPerformance(nil))
		assert.Nil(t, BestPerformance([]models.HistoryEntry{}))
	})

	t.Run("entries without weight or reps are skipped", func(t *testing.T) {
		assert.Nil(t, BestPerformance([]models.HistoryEntry{
			{Weight: 0, Reps: 10},
			{Weight: 100, Reps: 0},
		}))
	})

	t.Run("highest e1rm wins", func(t *testing.T) {
		best := BestPerformance([]models.HistoryEntry{
			{Weight: 60, Reps: 10},
			{Weight: 80, Reps: 5},
			{Weight: 70, Reps: 8},
		})
		require.NotNil(t, best)
		assert.Equal(t, 80.0, best.Weight)
		assert.Equal(t, 5, best.Reps)
		assert.Equal(t, 90.0, best.E1RM)
	})

	t.Run("ties keep the first seen", func(t *testing.T) {
		first := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		best := BestPerformance([]models.HistoryEntry{
			{Date: first, Weight: 100, Reps: 1},
			{Date: first.AddDate(0, 0, 7), Weight: 100, Reps: 1},
		})
		require.NotNil(t, best)
		assert.Equal(t, first, best.Date)
	})
}

func TestProgression(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, Progression(nil))
	})

	t.Run("maps every entry in order", func(t *testing.T) {
		date := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
		points := Progression([]models.HistoryEntry{
			{Date: date, Weight: 60, Reps: 10},
			{Date: date.AddDate(0, 0, 2), Weight: 62.5, Reps: 10},
		})
		require.Len(t, points, 2)
		assert.Equal(t, "Mar 9", points[0].Date)
		assert.Equal(t, 600.0, points[0].Volume)
		assert.Equal(t, 80.0, points[0].E1RM)
		assert.Equal(t, "Mar 11", points[1].Date)
	})
}

func workoutWithSets(start time.Time, sets ...models.PlannedSet) models.ActiveWorkout {
	return models.ActiveWorkout{
		WorkoutDay: models.WorkoutDay{
			Exercises: []models.PlannedExercise{{ExerciseID: "bench_press", Sets: sets}},
		},
		StartTime: start,
	}
}

func TestVolumeByDate(t *testing.T) {
	day1 := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	completed := func(w float64, r int) models.PlannedSet {
		return models.PlannedSet{Weight: floatPtr(w), Reps: intPtr(r), Completed: true}
	}

	history := []models.ActiveWorkout{
		workoutWithSets(day1, completed(60, 10), completed(60, 10)),
		workoutWithSets(day1, completed(40, 10)),
		workoutWithSets(day2,
			completed(100, 5),
			// Incomplete sets never count.
			models.PlannedSet{Weight: floatPtr(100), Reps: intPtr(5)},
		),
	}

	points := VolumeByDate(history)
	require.Len(t, points, 2)
	assert.Equal(t, VolumePoint{Date: "Apr 1", Volume: 1600}, points[0])
	assert.Equal(t, VolumePoint{Date: "Apr 2", Volume: 500}, points[1])
}

func TestTotalCompletedSets(t *testing.T) {
	assert.Equal(t, 0, TotalCompletedSets(nil))

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	history := []models.ActiveWorkout{
		workoutWithSets(start,
			models.PlannedSet{Completed: true},
			models.PlannedSet{Completed: true},
			models.PlannedSet{Completed: false},
		),
		workoutWithSets(start, models.PlannedSet{Completed: true}),
	}
	assert.Equal(t, 3, TotalCompletedSets(history))
}

func TestAverageWorkoutDurationMinutes(t *testing.T) {
	assert.Equal(t, 0, AverageWorkoutDurationMinutes(nil))

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	history := []models.ActiveWorkout{
		{WorkoutDay: models.WorkoutDay{}, StartTime: start, DurationSeconds: 3600},
		{WorkoutDay: models.WorkoutDay{}, StartTime: start, DurationSeconds: 1800},
		// Workouts without a recorded duration are ignored.
		{WorkoutDay: models.WorkoutDay{}, StartTime: start},
	}
	assert.Equal(t, 45, AverageWorkoutDurationMinutes(history))
}
