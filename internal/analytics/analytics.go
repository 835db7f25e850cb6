package analytics

import (
	"math"

	"github.com/hypertrophy/hypertrophy/internal/models"
	"github.com/hypertrophy/hypertrophy/internal/utils"
)

// EstimatedOneRepMax projects a single-rep max from a weight/reps pair
// using the Brzycki formula, rounded to one decimal. Reps are clamped at
// 36 so the denominator never reaches zero. Returns 0 for missing input.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if weight == 0 || reps <= 0 {
		return 0
	}
	if reps > 36 {
		reps = 36
	}
	return math.Round(weight*36/(37-float64(reps))*10) / 10
}

// BestEntry is a history entry annotated with its estimated 1RM.
type BestEntry struct {
	models.HistoryEntry
	E1RM float64 `json:"e1rm"`
}

// BestPerformance scans an exercise's history and returns the entry with
// the highest estimated 1RM, or nil when no entry has both weight and
// reps. Ties keep the first-seen maximum.
func BestPerformance(history []models.HistoryEntry) *BestEntry {
	var best *BestEntry
	var bestE1RM float64
	for _, entry := range history {
		if entry.Weight == 0 || entry.Reps == 0 {
			continue
		}
		reps := entry.Reps
		if reps > 36 {
			reps = 36
		}
		e1rm := entry.Weight * 36 / (37 - float64(reps))
		if e1rm > bestE1RM {
			bestE1RM = e1rm
			best = &BestEntry{HistoryEntry: entry}
		}
	}
	if best == nil {
		return nil
	}
	best.E1RM = math.Round(bestE1RM*10) / 10
	return best
}

// ProgressionPoint is one chart point derived from a logged set.
type ProgressionPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	E1RM   float64 `json:"e1rm"`
	Volume float64 `json:"volume"`
}

// Progression maps every history entry to a chart point, preserving the
// chronological input order.
func Progression(history []models.HistoryEntry) []ProgressionPoint {
	points := make([]ProgressionPoint, 0, len(history))
	for _, entry := range history {
		points = append(points, ProgressionPoint{
			Date:   utils.ChartDate(entry.Date),
			Weight: entry.Weight,
			Reps:   entry.Reps,
			E1RM:   EstimatedOneRepMax(entry.Weight, entry.Reps),
			Volume: entry.Weight * float64(entry.Reps),
		})
	}
	return points
}

// VolumePoint is the total completed tonnage logged on one date.
type VolumePoint struct {
	Date   string `json:"date"`
	Volume int    `json:"volume"`
}

// VolumeByDate sums weight*reps over completed sets of every workout,
// bucketed by workout start date. Dates appear in first-seen order.
func VolumeByDate(history []models.ActiveWorkout) []VolumePoint {
	byDate := make(map[string]float64)
	var order []string
	for _, workout := range history {
		date := utils.ChartDate(workout.StartTime)
		if _, seen := byDate[date]; !seen {
			order = append(order, date)
		}
		for _, ex := range workout.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed || set.Weight == nil || set.Reps == nil {
					continue
				}
				byDate[date] += *set.Weight * float64(*set.Reps)
			}
		}
	}
	points := make([]VolumePoint, 0, len(order))
	for _, date := range order {
		points = append(points, VolumePoint{Date: date, Volume: int(math.Round(byDate[date]))})
	}
	return points
}

// TotalCompletedSets counts completed sets across all logged workouts.
func TotalCompletedSets(history []models.ActiveWorkout) int {
	total := 0
	for _, workout := range history {
		for _, ex := range workout.Exercises {
			for _, set := range ex.Sets {
				if set.Completed {
					total++
				}
			}
		}
	}
	return total
}

// AverageWorkoutDurationMinutes averages DurationSeconds over workouts
// that recorded one, rounded to whole minutes.
func AverageWorkoutDurationMinutes(history []models.ActiveWorkout) int {
	total, count := 0, 0
	for _, workout := range history {
		if workout.DurationSeconds == 0 {
			continue
		}
		total += workout.DurationSeconds
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count) / 60))
}
