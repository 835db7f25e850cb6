package analytics

import "github.com/hypertrophy/hypertrophy/internal/models"

// DefaultIncrement is the weight jump used when settings carry none.
const DefaultIncrement = 2.5

// SuggestNextWeight derives the next working weight for an exercise from
// its most recent logged set. The rule compares the logged RIR against the
// target: a lifter who left noticeably more in reserve than targeted gets a
// bigger weight, one who undershot the reserve backs off. Only the last
// entry is consulted. Returns nil when there is no usable history.
func SuggestNextWeight(history []models.HistoryEntry, targetReps, targetRIR int, settings models.Settings) *float64 {
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if last.Weight == 0 {
		return nil
	}

	increment := settings.WeightIncrementKg
	if increment == 0 {
		increment = DefaultIncrement
	}

	suggested := last.Weight
	if last.RIR != nil {
		rirDiff := *last.RIR - float64(targetRIR)
		switch {
		case rirDiff >= 2:
			suggested = last.Weight + increment*2
		case rirDiff >= 1:
			suggested = last.Weight + increment
		case rirDiff <= -2:
			suggested = last.Weight - increment
		}
	}
	if suggested < 0 {
		suggested = 0
	}
	return &suggested
}
