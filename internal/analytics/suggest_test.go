package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

func TestSuggestNextWeight(t *testing.T) {
	settings := models.Settings{WeightIncrementKg: 2.5}

	entry := func(weight float64, rir *float64) []models.HistoryEntry {
		return []models.HistoryEntry{{Weight: weight, Reps: 10, RIR: rir}}
	}

	tests := []struct {
		name    string
		history []models.HistoryEntry
		want    float64
	}{
		{"rir on target keeps weight", entry(60, floatPtr(2)), 60},
		{"one rir over adds one increment", entry(60, floatPtr(3)), 62.5},
		{"two rir over adds two increments", entry(60, floatPtr(4)), 65},
		{"one rir under keeps weight", entry(60, floatPtr(1)), 60},
		{"two rir under backs off", entry(60, floatPtr(0)), 57.5},
		{"floors at zero", entry(2, floatPtr(0)), 0},
		{"missing rir keeps weight", entry(60, nil), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestNextWeight(tt.history, 10, 2, settings)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	t.Run("no history", func(t *testing.T) {
		assert.Nil(t, SuggestNextWeight(nil, 10, 2, settings))
		assert.Nil(t, SuggestNextWeight([]models.HistoryEntry{}, 10, 2, settings))
	})

	t.Run("last entry without weight", func(t *testing.T) {
		history := []models.HistoryEntry{
			{Weight: 60, Reps: 10},
			{Weight: 0, Reps: 10},
		}
		assert.Nil(t, SuggestNextWeight(history, 10, 2, settings))
	})

	t.Run("only the most recent entry counts", func(t *testing.T) {
		history := []models.HistoryEntry{
			{Weight: 100, Reps: 10, RIR: floatPtr(4)},
			{Weight: 60, Reps: 10, RIR: floatPtr(2)},
		}
		got := SuggestNextWeight(history, 10, 2, settings)
		require.NotNil(t, got)
		assert.Equal(t, 60.0, *got)
	})

	t.Run("zero-valued settings fall back to the default increment", func(t *testing.T) {
		got := SuggestNextWeight(entry(60, floatPtr(3)), 10, 2, models.Settings{})
		require.NotNil(t, got)
		assert.Equal(t, 62.5, *got)
	})
}
