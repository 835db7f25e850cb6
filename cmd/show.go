package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active workout, or the next planned day",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		if state.ActiveWorkout != nil {
			printBoxedHeader("ACTIVE WORKOUT")
			printWorkout(&state.ActiveWorkout.WorkoutDay)
			return nil
		}

		if state.Mesocycle == nil {
			return fmt.Errorf("No mesocycle planned. Run 'hypertrophy plan' first")
		}
		if state.Mesocycle.IsComplete() {
			fmt.Println("🎉 Mesocycle complete! Plan a new one to keep going")
			return nil
		}

		workout := state.Mesocycle.CurrentWorkout()
		if workout == nil {
			return fmt.Errorf("No workout at the current mesocycle position")
		}

		printBoxedHeader("NEXT WORKOUT")
		week := state.Mesocycle.WeeksData[state.Mesocycle.CurrentWeek-1]
		label := fmt.Sprintf("week %d, day %d", state.Mesocycle.CurrentWeek, state.Mesocycle.CurrentDay)
		if week.IsDeload {
			label += " (deload)"
		}
		printMetric("Position", label)
		printWorkout(workout)
		return nil
	},
}

func printWorkout(workout *models.WorkoutDay) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("\n%s\n", bold(workout.Name))
	for i, ex := range workout.Exercises {
		fmt.Printf("  %d. %s [%s]\n", i+1, ex.Name, ex.Muscle)
		for j, set := range ex.Sets {
			status := " "
			if set.Completed {
				status = "✓"
			}
			fmt.Printf("     %s set %d: target %d reps @ RIR %d | weight %s reps %s\n",
				status, j+1, set.TargetReps, set.TargetRIR,
				formatWeight(set.Weight), formatReps(set.Reps))
		}
	}
}

func formatReps(r *int) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *r)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
