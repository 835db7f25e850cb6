package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/analytics"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mesocycle position and overall training stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		printBoxedHeader("STATUS")

		if meso := state.Mesocycle; meso != nil {
			printMetric("Mesocycle", fmt.Sprintf("%s (%d weeks, %s goal)", meso.TemplateName, meso.Weeks, meso.VolumeGoal))
			if meso.IsComplete() {
				printMetric("Position", "complete 🎉")
			} else {
				printMetric("Position", fmt.Sprintf("week %d, day %d", meso.CurrentWeek, meso.CurrentDay))
			}
		} else {
			printMetric("Mesocycle", "none planned")
		}
		if state.ActiveWorkout != nil {
			printMetric("Active workout", state.ActiveWorkout.Name)
		}
		fmt.Println()

		printMetric("Workouts logged", len(state.History))
		printMetric("Completed sets", analytics.TotalCompletedSets(state.History))
		if avg := analytics.AverageWorkoutDurationMinutes(state.History); avg > 0 {
			printMetric("Average duration", fmt.Sprintf("%dm", avg))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
