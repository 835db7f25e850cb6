package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/session"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the current planned workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, state, err := loadState()
		if err != nil {
			return err
		}

		if err := session.Start(state, time.Now().UTC()); err != nil {
			switch {
			case errors.Is(err, session.ErrNoMesocycle):
				return fmt.Errorf("No mesocycle planned. Run 'hypertrophy plan' first")
			case errors.Is(err, session.ErrMesocycleComplete):
				return fmt.Errorf("Mesocycle complete! Plan a new one to keep going")
			case errors.Is(err, session.ErrWorkoutActive):
				return fmt.Errorf("A workout is already in progress")
			}
			return fmt.Errorf("Failed to start workout: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		w := state.ActiveWorkout
		fmt.Printf("✅ Started workout: %s (week %d, day %d)\n",
			w.Name, state.Mesocycle.CurrentWeek, state.Mesocycle.CurrentDay)
		for i, ex := range w.Exercises {
			fmt.Printf("  %d. %s — %d sets × %d reps @ RIR %d (suggested %s)\n",
				i+1, ex.Name, len(ex.Sets), ex.Sets[0].TargetReps, ex.Sets[0].TargetRIR,
				formatWeight(ex.Sets[0].SuggestedWeight))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
