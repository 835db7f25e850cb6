package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/session"
)

var completeSetCmd = &cobra.Command{
	Use:   "complete-set [exercise-index] [set-index]",
	Short: "Mark a set done and record it in the exercise history",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, setIdx, err := parseIndexes(args)
		if err != nil {
			return err
		}

		st, state, err := loadState()
		if err != nil {
			return err
		}

		restSeconds, err := session.CompleteSet(state, exIdx, setIdx, time.Now().UTC())
		if err != nil {
			switch {
			case errors.Is(err, session.ErrMissingWeightReps):
				return fmt.Errorf("Log weight and reps before completing the set")
			case errors.Is(err, session.ErrSetCompleted):
				return fmt.Errorf("Set %d is already completed", setIdx+1)
			}
			return fmt.Errorf("Failed to complete set: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Completed set %d of '%s'\n", setIdx+1, state.ActiveWorkout.Exercises[exIdx].Name)
		fmt.Printf("   Rest %ds (run 'hypertrophy rest' for a countdown)\n", restSeconds)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeSetCmd)
}
