package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/models"
	"github.com/hypertrophy/hypertrophy/internal/session"
	"github.com/hypertrophy/hypertrophy/internal/utils"
)

var (
	finishPump        int
	finishSoreness    int
	finishPerformance int
)

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the active workout and record feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, v := range []int{finishPump, finishSoreness, finishPerformance} {
			if v < 1 || v > 5 {
				return fmt.Errorf("Feedback scores must be between 1 and 5")
			}
		}

		st, state, err := loadState()
		if err != nil {
			return err
		}

		feedback := models.Feedback{
			Pump:        finishPump,
			Soreness:    finishSoreness,
			Performance: finishPerformance,
		}
		completed, err := session.Finish(state, feedback, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("Failed to finish workout: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Finished %s in %s\n", completed.Name, utils.FormatDuration(completed.DurationSeconds))
		if state.Mesocycle != nil {
			if state.Mesocycle.IsComplete() {
				fmt.Println("🎉 That was the last workout of the mesocycle!")
			} else {
				fmt.Printf("   Next up: week %d, day %d\n", state.Mesocycle.CurrentWeek, state.Mesocycle.CurrentDay)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finishCmd)
	finishCmd.Flags().IntVar(&finishPump, "pump", 3, "Pump rating 1-5")
	finishCmd.Flags().IntVar(&finishSoreness, "soreness", 3, "Soreness rating 1-5")
	finishCmd.Flags().IntVar(&finishPerformance, "performance", 3, "Performance rating 1-5")
}
