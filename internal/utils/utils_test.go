package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

func TestChartDate(t *testing.T) {
	assert.Equal(t, "Mar 9", ChartDate(time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dec 31", ChartDate(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "0:45", FormatDuration(45))
	assert.Equal(t, "12:05", FormatDuration(725))
	assert.Equal(t, "1:01:05", FormatDuration(3665))
	assert.Equal(t, "0:00", FormatDuration(-10))
}

func TestFormatShortDuration(t *testing.T) {
	assert.Equal(t, "", FormatShortDuration(0))
	assert.Equal(t, "45m", FormatShortDuration(2700))
}

func TestParseTemplateFromTOML(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "template.toml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("valid template", func(t *testing.T) {
		path := write(t, `
name = "Minimal Upper Lower"

[[day]]
name = "Upper"
muscles = ["chest", "back", "shoulders"]

[[day]]
name = "Lower"
muscles = ["quads", "hamstrings", "calves"]
`)
		template, err := ParseTemplateFromTOML(path)
		require.NoError(t, err)
		assert.Equal(t, "Minimal Upper Lower", template.Name)
		assert.Equal(t, 2, template.Days)
		assert.True(t, template.IsCustom)
		require.Len(t, template.Split, 2)
		assert.Equal(t, []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleCalves},
			template.Split[1].Muscles)
	})

	t.Run("missing name", func(t *testing.T) {
		path := write(t, "[[day]]\nname = \"A\"\nmuscles = [\"chest\"]\n")
		_, err := ParseTemplateFromTOML(path)
		assert.Error(t, err)
	})

	t.Run("no days", func(t *testing.T) {
		path := write(t, "name = \"Empty\"\n")
		_, err := ParseTemplateFromTOML(path)
		assert.Error(t, err)
	})

	t.Run("unknown muscle", func(t *testing.T) {
		path := write(t, "name = \"Bad\"\n[[day]]\nname = \"A\"\nmuscles = [\"neck\"]\n")
		_, err := ParseTemplateFromTOML(path)
		assert.Error(t, err)
	})
}
