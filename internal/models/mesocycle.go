package models

import "time"

// PlannedSet is one prescribed set. Weight, Reps and RIR stay nil until
// the lifter logs them during an active workout; SuggestedWeight is filled
// in once when the workout starts.
type PlannedSet struct {
	TargetReps      int      `json:"targetReps"`
	TargetRIR       int      `json:"targetRIR"`
	Weight          *float64 `json:"weight"`
	Reps            *int     `json:"reps"`
	RIR             *float64 `json:"rir"`
	Completed       bool     `json:"completed"`
	SuggestedWeight *float64 `json:"suggestedWeight"`
}

type PlannedExercise struct {
	ExerciseID string       `json:"exerciseId"`
	Name       string       `json:"name"`
	Muscle     MuscleGroup  `json:"muscle"`
	Sets       []PlannedSet `json:"sets"`
}

// Feedback is the lifter's post-workout self-report, each axis on 1..5.
type Feedback struct {
	Pump        int `json:"pump"`
	Soreness    int `json:"soreness"`
	Performance int `json:"performance"`
}

type WorkoutDay struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	DayNumber int               `json:"dayNumber"`
	Exercises []PlannedExercise `json:"exercises"`
	Completed bool              `json:"completed"`
	Feedback  *Feedback         `json:"feedback"`
}

type MesocycleWeek struct {
	WeekNumber int          `json:"weekNumber"`
	IsDeload   bool         `json:"isDeload"`
	Workouts   []WorkoutDay `json:"workouts"`
}

// Mesocycle is a fully generated multi-week plan. Only the cursor
// (CurrentWeek, CurrentDay) mutates after generation; it advances
// monotonically and never moves backward.
type Mesocycle struct {
	ID           string          `json:"id"`
	TemplateKey  string          `json:"template"`
	TemplateName string          `json:"templateName"`
	Weeks        int             `json:"weeks"`
	VolumeGoal   VolumeGoal      `json:"volumeGoal"`
	StartDate    time.Time       `json:"startDate"`
	WeeksData    []MesocycleWeek `json:"weeksData"`
	CurrentWeek  int             `json:"currentWeek"`
	CurrentDay   int             `json:"currentDay"`
}

// CurrentWorkout returns the planned day the cursor points at, or nil if
// the cursor is somehow out of range.
func (m *Mesocycle) CurrentWorkout() *WorkoutDay {
	if m == nil || m.CurrentWeek < 1 || m.CurrentWeek > len(m.WeeksData) {
		return nil
	}
	week := &m.WeeksData[m.CurrentWeek-1]
	if m.CurrentDay < 1 || m.CurrentDay > len(week.Workouts) {
		return nil
	}
	return &week.Workouts[m.CurrentDay-1]
}

// IsComplete reports whether the cursor sits on the final day and that day
// has been completed.
func (m *Mesocycle) IsComplete() bool {
	w := m.CurrentWorkout()
	if w == nil {
		return false
	}
	return m.CurrentWeek == m.Weeks &&
		m.CurrentDay == len(m.WeeksData[m.CurrentWeek-1].Workouts) &&
		w.Completed
}

// ActiveWorkout is the live copy of one WorkoutDay being logged. On finish
// it is converted back into a completed WorkoutDay record and discarded.
type ActiveWorkout struct {
	WorkoutDay
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds int        `json:"durationSeconds,omitempty"`
}
