package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

var (
	settingsRestTimer    int
	settingsIncrement    float64
	settingsAutoProgress bool
	settingsName         string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, state, err := loadState()
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("rest-timer") {
			if settingsRestTimer < models.RestTimerMin || settingsRestTimer > models.RestTimerMax {
				return fmt.Errorf("Rest timer must be between %d and %d seconds", models.RestTimerMin, models.RestTimerMax)
			}
			state.Settings.RestTimerSeconds = settingsRestTimer
			changed = true
		}
		if cmd.Flags().Changed("increment") {
			if settingsIncrement < models.WeightIncrementMin || settingsIncrement > models.WeightIncrementMax {
				return fmt.Errorf("Weight increment must be between %.1f and %.1f kg", models.WeightIncrementMin, float64(models.WeightIncrementMax))
			}
			state.Settings.WeightIncrementKg = settingsIncrement
			changed = true
		}
		if cmd.Flags().Changed("auto-progress") {
			state.Settings.AutoProgress = settingsAutoProgress
			changed = true
		}
		if cmd.Flags().Changed("name") {
			state.Profile.Name = settingsName
			changed = true
		}

		if changed {
			if err := persist(st, state); err != nil {
				return err
			}
			fmt.Println("✅ Settings updated")
			return nil
		}

		printBoxedHeader("SETTINGS")
		if state.Profile.Name != "" {
			printMetric("Name", state.Profile.Name)
		}
		printMetric("Experience", state.Profile.Experience)
		printMetric("Rest timer", fmt.Sprintf("%ds", state.Settings.RestTimerSeconds))
		printMetric("Auto progress", state.Settings.AutoProgress)
		printMetric("Weight increment", fmt.Sprintf("%.1fkg", state.Settings.WeightIncrementKg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().IntVar(&settingsRestTimer, "rest-timer", 120, "Rest timer in seconds (30-300)")
	settingsCmd.Flags().Float64Var(&settingsIncrement, "increment", 2.5, "Weight increment in kg (0.5-10)")
	settingsCmd.Flags().BoolVar(&settingsAutoProgress, "auto-progress", true, "Enable progressive-overload suggestions")
	settingsCmd.Flags().StringVar(&settingsName, "name", "", "Profile name")
}
