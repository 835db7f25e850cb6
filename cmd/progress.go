package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/analytics"
	"github.com/hypertrophy/hypertrophy/internal/catalog"
)

var progressCmd = &cobra.Command{
	Use:   "progress [exercise-id]",
	Short: "Show best performance and progression for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		exercise, ok := catalog.FindExercise(state, args[0])
		if !ok {
			return fmt.Errorf("Failed to find exercise %q (see 'hypertrophy exercises')", args[0])
		}

		history := state.ExerciseHistory[exercise.ID]
		if len(history) == 0 {
			fmt.Printf("No history logged for %s yet\n", exercise.Name)
			return nil
		}

		printBoxedHeader("PROGRESS")
		printMetric("Exercise", exercise.Name)

		if best := analytics.BestPerformance(history); best != nil {
			printMetric("Best set", fmt.Sprintf("%.1fkg × %d (e1RM %.1fkg)", best.Weight, best.Reps, best.E1RM))
		}
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("%-8s %10s %6s %10s %10s", "Date", "Weight", "Reps", "e1RM", "Volume")
		fmt.Println(header)
		for _, p := range analytics.Progression(history) {
			fmt.Printf("%-8s %9.1fkg %6d %9.1fkg %9.0fkg\n", p.Date, p.Weight, p.Reps, p.E1RM, p.Volume)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
